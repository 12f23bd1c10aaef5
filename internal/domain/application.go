package domain

import "time"

// Application status lifecycle. Any value outside this set is treated as
// pending by the notification selector.
const (
	StatusPending     = "Pending"
	StatusShortlisted = "Shortlisted"
	StatusRejected    = "Rejected"
)

// Application links exactly one job seeker, one job posting, and one resume.
// All three must exist when the application is created; that is a precondition
// enforced by the lifecycle service, not a deferred consistency check.
type Application struct {
	ID           int64     `json:"id" db:"id"`
	JobSeekerID  int64     `json:"job_seeker_id" db:"job_seeker_id"`
	JobPostingID int64     `json:"job_posting_id" db:"job_posting_id"`
	ResumeID     int64     `json:"resume_id" db:"resume_id"`
	Status       string    `json:"status" db:"status"`
	AppliedAt    time.Time `json:"applied_at" db:"applied_at"`

	// Populated on list reads so the frontend can render applied jobs
	// without extra round trips. Never written back.
	JobSeeker  *JobSeeker  `json:"job_seeker,omitempty" db:"-"`
	JobPosting *JobPosting `json:"job_posting,omitempty" db:"-"`
	Resume     *Resume     `json:"resume,omitempty" db:"-"`
}

func (a *Application) BeforeSave() {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now()
	}
}
