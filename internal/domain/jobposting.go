package domain

import (
	"strings"
	"time"
)

// JobPosting is an open position owned by exactly one employer.
type JobPosting struct {
	ID                       int64     `json:"id" db:"id"`
	EmployerID               int64     `json:"employer_id" db:"employer_id" validate:"required"`
	JobTitle                 string    `json:"job_title" db:"job_title" validate:"required,max=255"`
	JobDescription           string    `json:"job_description" db:"job_description" validate:"required"`
	RolesAndResponsibilities string    `json:"roles_and_responsibilities" db:"roles_and_responsibilities" validate:"required"`
	CompanyName              string    `json:"company_name" db:"company_name" validate:"required,max=255"`
	Location                 string    `json:"location" db:"location" validate:"required,max=255"`
	EmploymentType           string    `json:"employment_type" db:"employment_type" validate:"required,max=100"`
	Salary                   string    `json:"salary" db:"salary" validate:"required,max=100"`
	JobCategory              string    `json:"job_category" db:"job_category" validate:"required,max=100"`
	Skills                   string    `json:"skills" db:"skills" validate:"required"`
	Experience               string    `json:"experience" db:"experience" validate:"required,max=100"`
	Education                string    `json:"education" db:"education" validate:"required,max=255"`
	NumberOfOpenings         int       `json:"number_of_openings" db:"number_of_openings" validate:"min=1"`
	PostedDate               time.Time `json:"posted_date" db:"posted_date"`
	LastDate                 time.Time `json:"last_date" db:"last_date"`
}

// BeforeSave normalizes free-text fields and stamps the posted date at
// creation. Description fields come from a rich-text editor, so they pass
// through the UGC sanitizer instead of being trimmed only.
func (p *JobPosting) BeforeSave() {
	p.JobTitle = strings.TrimSpace(p.JobTitle)
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.Location = strings.TrimSpace(p.Location)
	p.EmploymentType = strings.TrimSpace(p.EmploymentType)
	p.JobCategory = strings.TrimSpace(p.JobCategory)
	p.Skills = strings.TrimSpace(p.Skills)
	p.Experience = strings.TrimSpace(p.Experience)
	p.Education = strings.TrimSpace(p.Education)

	p.JobDescription = ugcSanitizer.SanitizeString(p.JobDescription)
	p.RolesAndResponsibilities = ugcSanitizer.SanitizeString(p.RolesAndResponsibilities)

	if p.NumberOfOpenings == 0 {
		p.NumberOfOpenings = 1
	}
	if p.PostedDate.IsZero() {
		p.PostedDate = time.Now()
	}
}

func (p *JobPosting) Validate() error {
	return ValidateStruct(p)
}
