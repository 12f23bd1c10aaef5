package domain

import (
	"strings"
	"time"
)

// Role tags are fixed per entity kind; registration overwrites whatever the
// client sent.
const (
	RoleEmployer  = "employee"
	RoleJobSeeker = "jobseeker"
)

// Employer is a recruiting account. One employer owns zero or more job
// postings.
type Employer struct {
	ID           int64     `json:"id" db:"id"`
	CompanyName  string    `json:"company_name" db:"company_name" validate:"required,max=255"`
	WebsiteURL   string    `json:"website_url" db:"website_url" validate:"omitempty,url"`
	FullName     string    `json:"full_name" db:"full_name" validate:"required,max=255"`
	Email        string    `json:"email" db:"email" validate:"required,email"`
	MobileNumber string    `json:"mobile_number" db:"mobile_number" validate:"required,max=20"`
	ProfilePhoto string    `json:"profile_photo" db:"profile_photo"`
	Designation  string    `json:"designation" db:"designation" validate:"max=255"`
	Password     string    `json:"password,omitempty" db:"password" validate:"required,min=6"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// BeforeSave normalizes fields before the row is written.
func (e *Employer) BeforeSave() {
	e.CompanyName = strings.TrimSpace(e.CompanyName)
	e.FullName = strings.TrimSpace(e.FullName)
	e.Email = strings.TrimSpace(strings.ToLower(e.Email))
	e.MobileNumber = strings.TrimSpace(e.MobileNumber)
	e.Designation = strings.TrimSpace(e.Designation)

	// Role is never user-settable.
	e.Role = RoleEmployer

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
}

func (e *Employer) Validate() error {
	return ValidateStruct(e)
}
