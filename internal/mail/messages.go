package mail

import (
	"fmt"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
)

// All notification bodies share the same outer HTML shell; only heading and
// paragraphs differ.
const bodyShell = `<html>
<head>
    <style>
        body {
            font-family: Arial, sans-serif;
            color: #333;
        }
        .container {
            padding: 20px;
            border: 1px solid #ccc;
            max-width: 600px;
            margin: 0 auto;
            background-color: #f9f9f9;
        }
        h1 {
            color: #4CAF50;
        }
        p {
            line-height: 1.6;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>%s</h1>
        <p>Dear <strong>%s,</strong></p>
        %s
        <p>Best regards,<br>
        <strong>%s</strong></p>
    </div>
</body>
</html>`

// statusMessage pairs the subject line and body fragment for one application
// status. Keeping both in one table means the shortlist flow and the
// formatter cannot drift apart.
type statusMessage struct {
	subjectPrefix string
	fragment      string
}

var statusMessages = map[string]statusMessage{
	domain.StatusShortlisted: {
		subjectPrefix: "Congratulations! You've been shortlisted for ",
		fragment:      "We are pleased to inform you that you have been <strong>shortlisted</strong> for the position at <strong>%s</strong>. Our team will contact you shortly to discuss the next steps.",
	},
	domain.StatusRejected: {
		subjectPrefix: "Application Update from ",
		fragment:      "We regret to inform you that your application for the position at <strong>%s</strong> has been <strong>rejected</strong>. We encourage you to apply for other opportunities in the future.",
	},
}

// Pending and any unrecognized status share the generic update wording.
var pendingMessage = statusMessage{
	subjectPrefix: "Application Status Update for ",
	fragment:      "Your application for the position at <strong>%s</strong> is currently <strong>pending</strong>. We will update you once we have more information.",
}

func messageForStatus(status string) statusMessage {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return pendingMessage
}

// WelcomeSubject greets a newly registered employer or job seeker.
func WelcomeSubject(fullName string) string {
	return "Welcome to RevHire, " + fullName + "!"
}

func WelcomeBody(fullName string) string {
	paragraphs := `<p>Thank you for registering with RevHire. We are excited to have you on board!</p>
        <p>Explore opportunities, apply for jobs, and take the next step in your career.</p>`
	return fmt.Sprintf(bodyShell, "Welcome to RevHire!", fullName, paragraphs, "The RevHire Team")
}

func ApplicationReceivedSubject(companyName string) string {
	return "Application Received for " + companyName
}

func ApplicationReceivedBody(fullName, companyName string) string {
	paragraphs := fmt.Sprintf(`<p>Thank you for applying to <strong>%s</strong>. We have received your application and will review it shortly.</p>`, companyName)
	return fmt.Sprintf(bodyShell, "Application Received!", fullName, paragraphs, "The Recruitment Team")
}

// ApplicationStatusSubject selects the subject line for a status notification.
// Shortlisted and Rejected have dedicated wording; everything else, including
// an empty status, falls back to the pending variant.
func ApplicationStatusSubject(status, companyName string) string {
	return messageForStatus(status).subjectPrefix + companyName
}

func ApplicationStatusBody(fullName, companyName, status string) string {
	fragment := fmt.Sprintf(messageForStatus(status).fragment, companyName)
	return fmt.Sprintf(bodyShell, "Application Update", fullName, "<p>"+fragment+"</p>", "The Recruitment Team")
}
