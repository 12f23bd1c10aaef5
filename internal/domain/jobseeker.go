package domain

import (
	"strings"
	"time"
)

// JobSeeker is a candidate account. A seeker owns at most one resume and zero
// or more applications.
type JobSeeker struct {
	ID               int64     `json:"id" db:"id"`
	FullName         string    `json:"full_name" db:"full_name" validate:"required,max=255"`
	Email            string    `json:"email" db:"email" validate:"required,email"`
	Password         string    `json:"password,omitempty" db:"password" validate:"required,min=6"`
	Phone            string    `json:"phone" db:"phone" validate:"required,max=20"`
	ProfilePhoto     string    `json:"profile_photo" db:"profile_photo"`
	WorkStatus       string    `json:"work_status" db:"work_status" validate:"required,max=100"`
	Promotions       bool      `json:"promotions" db:"promotions"`
	Role             string    `json:"role" db:"role"`
	RegistrationTime time.Time `json:"registration_time" db:"registration_time"`
}

// BeforeSave normalizes fields. The registration time is set on first persist
// and immutable thereafter.
func (j *JobSeeker) BeforeSave() {
	j.FullName = strings.TrimSpace(j.FullName)
	j.Email = strings.TrimSpace(strings.ToLower(j.Email))
	j.Phone = strings.TrimSpace(j.Phone)
	j.WorkStatus = strings.TrimSpace(j.WorkStatus)

	j.Role = RoleJobSeeker

	if j.RegistrationTime.IsZero() {
		j.RegistrationTime = time.Now()
	}
}

func (j *JobSeeker) Validate() error {
	return ValidateStruct(j)
}
