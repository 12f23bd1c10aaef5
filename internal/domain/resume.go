package domain

import "strings"

// Resume is the structured profile a job seeker attaches to applications.
// A seeker has at most one resume at a time.
type Resume struct {
	ID               int64  `json:"id" db:"id"`
	JobSeekerID      int64  `json:"job_seeker_id" db:"job_seeker_id" validate:"required"`
	Headline         string `json:"headline" db:"headline" validate:"required,max=255"`
	FirstName        string `json:"first_name" db:"first_name" validate:"required,max=100"`
	MiddleName       string `json:"middle_name" db:"middle_name" validate:"max=100"`
	LastName         string `json:"last_name" db:"last_name" validate:"required,max=100"`
	Email            string `json:"email" db:"email" validate:"required,email"`
	PhoneNumber      string `json:"phone_number" db:"phone_number" validate:"required,max=20"`
	DOB              string `json:"dob" db:"dob" validate:"omitempty,datetime=2006-01-02"`
	Languages        string `json:"languages" db:"languages"`
	LinkedinURL      string `json:"linkedin_url" db:"linkedin_url" validate:"omitempty,url"`
	PermanentAddress string `json:"permanent_address" db:"permanent_address"`
	CurrentAddress   string `json:"current_address" db:"current_address"`
	ProfilePhoto     string `json:"profile_photo" db:"profile_photo"`

	// Education history.
	Xth            string `json:"xth" db:"xth"`
	XthYear        string `json:"xth_year" db:"xth_year"`
	XII            string `json:"xii" db:"xii"`
	XIIYear        string `json:"xii_year" db:"xii_year"`
	Graduation     string `json:"graduation" db:"graduation"`
	GraduationYear string `json:"graduation_year" db:"graduation_year"`
	PG             string `json:"pg" db:"pg"`
	PGStatus       string `json:"pg_status" db:"pg_status"`

	Skills                 string `json:"skills" db:"skills"`
	ProjectTitle           string `json:"project_title" db:"project_title"`
	ProjectDescription     string `json:"project_description" db:"project_description"`
	CertificateName        string `json:"certificate_name" db:"certificate_name"`
	CertificateDescription string `json:"certificate_description" db:"certificate_description"`
}

func (r *Resume) BeforeSave() {
	r.Headline = strings.TrimSpace(r.Headline)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.MiddleName = strings.TrimSpace(r.MiddleName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)

	r.ProjectDescription = ugcSanitizer.SanitizeString(r.ProjectDescription)
	r.CertificateDescription = ugcSanitizer.SanitizeString(r.CertificateDescription)
}

func (r *Resume) Validate() error {
	return ValidateStruct(r)
}

// FullName joins the resume name parts, skipping an empty middle name.
func (r *Resume) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.FirstName, r.MiddleName, r.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
