package domain

import "context"

// Repository contracts for the persistence gateway. Each call owns one
// database transaction; nothing here spans calls. Credential lookups return
// zero values (not errors) when no row matches, so login can distinguish
// "wrong credentials" from "data layer down".

type EmployerRepository interface {
	Save(ctx context.Context, employer *Employer) error
	GetByID(ctx context.Context, id int64) (*Employer, error)
	GetRoleByCredentials(ctx context.Context, email, password string) (string, error)
	GetIDByCredentials(ctx context.Context, email, password string) (int64, error)
	GetNameByCredentials(ctx context.Context, email, password string) (string, error)
	UpdatePassword(ctx context.Context, email, password string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id int64, employer *Employer) (*Employer, error)
}

type JobSeekerRepository interface {
	Save(ctx context.Context, seeker *JobSeeker) error
	GetByID(ctx context.Context, id int64) (*JobSeeker, error)
	GetRoleByCredentials(ctx context.Context, email, password string) (string, error)
	GetIDByCredentials(ctx context.Context, email, password string) (int64, error)
	GetNameByCredentials(ctx context.Context, email, password string) (string, error)
	UpdatePassword(ctx context.Context, email, password string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id int64, seeker *JobSeeker) (*JobSeeker, error)
}

type JobPostingRepository interface {
	Save(ctx context.Context, posting *JobPosting) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	// ListPage returns one page of postings plus the full unfiltered count.
	ListPage(ctx context.Context, offset, limit int) ([]*JobPosting, int64, error)
	ListByEmployerID(ctx context.Context, employerID int64) ([]*JobPosting, error)
	Search(ctx context.Context, jobTitle, location, experience string) ([]*JobPosting, error)
	Update(ctx context.Context, id int64, posting *JobPosting) (*JobPosting, error)
	// DeleteByID reports how many rows were removed; zero means not found.
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

type ResumeRepository interface {
	Save(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id int64) (*Resume, error)
	GetByJobSeekerID(ctx context.Context, jobSeekerID int64) (*Resume, error)
	ExistsForJobSeeker(ctx context.Context, jobSeekerID int64) (bool, error)
	Update(ctx context.Context, id int64, resume *Resume) (*Resume, error)
	ListByJobPostingID(ctx context.Context, jobPostingID int64) ([]*Resume, error)
}

type ApplicationRepository interface {
	Save(ctx context.Context, application *Application) error
	GetStatusByID(ctx context.Context, id int64) (string, error)
	Update(ctx context.Context, id int64, application *Application) (*Application, error)
	ListByJobPostingID(ctx context.Context, jobPostingID int64) ([]*Application, error)
	ListByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]*Application, error)
	CountByJobPostingID(ctx context.Context, jobPostingID int64) (int64, error)
	HasApplied(ctx context.Context, jobPostingID, jobSeekerID int64) (bool, error)
	// DeleteByJobSeekerAndID reports whether a row matching both ids existed.
	DeleteByJobSeekerAndID(ctx context.Context, jobSeekerID, applicationID int64) (bool, error)
	DeleteByJobPostingID(ctx context.Context, jobPostingID int64) (int64, error)
}
