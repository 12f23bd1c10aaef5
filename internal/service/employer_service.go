package service

import (
	"context"
	"fmt"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/mail"
)

// EmployerService covers the recruiting side: account lifecycle, posting
// management, applicant review, and the shortlist notification flow.
type EmployerService interface {
	Register(ctx context.Context, employer *domain.Employer) (*domain.Employer, error)
	Login(ctx context.Context, email, password string) (map[string]interface{}, error)
	UpdatePassword(ctx context.Context, email, password string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Employer, error)
	UpdateProfile(ctx context.Context, id int64, employer *domain.Employer) (*domain.Employer, error)

	SaveJobPosting(ctx context.Context, posting *domain.JobPosting) (*domain.JobPosting, error)
	PaginatedJobPostings(ctx context.Context, page, size int) ([]*domain.JobPosting, int64, error)
	JobPostingsByEmployer(ctx context.Context, employerID int64) ([]*domain.JobPosting, error)
	UpdateJobPosting(ctx context.Context, id int64, posting *domain.JobPosting) (*domain.JobPosting, error)
	DeleteJobPosting(ctx context.Context, id int64) error

	ApplicantCount(ctx context.Context, jobPostingID int64) (int64, error)
	ResumesByJobPosting(ctx context.Context, jobPostingID int64) ([]*domain.Resume, error)
	ApplicationsByJobPosting(ctx context.Context, jobPostingID int64) ([]*domain.Application, error)
	UpdateApplication(ctx context.Context, id int64, application *domain.Application) (*domain.Application, error)
	StatusByApplicationID(ctx context.Context, applicationID int64) (string, error)
	Shortlist(ctx context.Context, jobPostingID, jobSeekerID, applicationID int64) error
}

type employerService struct {
	employerRepo    domain.EmployerRepository
	seekerRepo      domain.JobSeekerRepository
	postingRepo     domain.JobPostingRepository
	resumeRepo      domain.ResumeRepository
	applicationRepo domain.ApplicationRepository
	mailer          mail.Mailer
}

func NewEmployerService(
	employerRepo domain.EmployerRepository,
	seekerRepo domain.JobSeekerRepository,
	postingRepo domain.JobPostingRepository,
	resumeRepo domain.ResumeRepository,
	applicationRepo domain.ApplicationRepository,
	mailer mail.Mailer,
) EmployerService {
	return &employerService{
		employerRepo:    employerRepo,
		seekerRepo:      seekerRepo,
		postingRepo:     postingRepo,
		resumeRepo:      resumeRepo,
		applicationRepo: applicationRepo,
		mailer:          mailer,
	}
}

// Register persists the employer, then sends the welcome mail. Persistence
// failure aborts before mail; mail failure surfaces even though the row is
// already durable.
func (s *employerService) Register(ctx context.Context, employer *domain.Employer) (*domain.Employer, error) {
	employer.BeforeSave()
	if err := employer.Validate(); err != nil {
		return nil, err
	}

	if err := s.employerRepo.Save(ctx, employer); err != nil {
		return nil, domain.NewBusinessError("data layer error while saving the employer", err)
	}

	subject := mail.WelcomeSubject(employer.FullName)
	body := mail.WelcomeBody(employer.FullName)
	if err := s.mailer.Send(ctx, employer.Email, subject, body); err != nil {
		return nil, domain.NewBusinessError("failed to send welcome email", err)
	}

	return employer, nil
}

func (s *employerService) Login(ctx context.Context, email, password string) (map[string]interface{}, error) {
	return loginWithCredentials(ctx, s.employerRepo, email, password)
}

func (s *employerService) UpdatePassword(ctx context.Context, email, password string) (bool, error) {
	updated, err := s.employerRepo.UpdatePassword(ctx, email, password)
	if err != nil {
		return false, domain.NewBusinessError("data layer error while updating the password", err)
	}
	return updated, nil
}

func (s *employerService) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.employerRepo.EmailExists(ctx, email)
	if err != nil {
		return false, domain.NewBusinessError("data layer error while checking the email", err)
	}
	return exists, nil
}

func (s *employerService) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	employer, err := s.employerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while fetching the employer", err)
	}
	return employer, nil
}

func (s *employerService) UpdateProfile(ctx context.Context, id int64, employer *domain.Employer) (*domain.Employer, error) {
	employer.BeforeSave()
	if err := employer.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.employerRepo.Update(ctx, id, employer)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while updating the employer", err)
	}
	return updated, nil
}

func (s *employerService) SaveJobPosting(ctx context.Context, posting *domain.JobPosting) (*domain.JobPosting, error) {
	posting.BeforeSave()
	if err := posting.Validate(); err != nil {
		return nil, err
	}

	if err := s.postingRepo.Save(ctx, posting); err != nil {
		return nil, domain.NewBusinessError("data layer error while saving the job posting", err)
	}
	return posting, nil
}

// PaginatedJobPostings returns the requested page plus the full unfiltered
// row count. Offset is (page-1)*size.
func (s *employerService) PaginatedJobPostings(ctx context.Context, page, size int) ([]*domain.JobPosting, int64, error) {
	offset := (page - 1) * size
	if offset < 0 {
		offset = 0
	}

	postings, totalCount, err := s.postingRepo.ListPage(ctx, offset, size)
	if err != nil {
		return nil, 0, domain.NewBusinessError("data layer error while retrieving job postings", err)
	}
	return postings, totalCount, nil
}

func (s *employerService) JobPostingsByEmployer(ctx context.Context, employerID int64) ([]*domain.JobPosting, error) {
	postings, err := s.postingRepo.ListByEmployerID(ctx, employerID)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while fetching the job postings", err)
	}
	return postings, nil
}

func (s *employerService) UpdateJobPosting(ctx context.Context, id int64, posting *domain.JobPosting) (*domain.JobPosting, error) {
	posting.BeforeSave()
	if err := posting.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.postingRepo.Update(ctx, id, posting)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while updating the job posting", err)
	}
	return updated, nil
}

// DeleteJobPosting removes the applications referencing the posting first,
// then the posting itself. The two deletes are separate statements; if the
// posting turns out not to exist the cleanup is not undone, and the whole
// operation fails with not-found.
func (s *employerService) DeleteJobPosting(ctx context.Context, id int64) error {
	if _, err := s.applicationRepo.DeleteByJobPostingID(ctx, id); err != nil {
		return domain.NewBusinessError("data layer error while deleting the job posting", err)
	}

	affected, err := s.postingRepo.DeleteByID(ctx, id)
	if err != nil {
		return domain.NewBusinessError("data layer error while deleting the job posting", err)
	}
	if affected == 0 {
		return domain.NewBusinessError(
			fmt.Sprintf("job posting %d not found", id),
			domain.NewDataError("delete job posting", domain.ErrNotFound),
		)
	}
	return nil
}

func (s *employerService) ApplicantCount(ctx context.Context, jobPostingID int64) (int64, error) {
	count, err := s.applicationRepo.CountByJobPostingID(ctx, jobPostingID)
	if err != nil {
		return 0, domain.NewBusinessError("data layer error while counting the applicants", err)
	}
	return count, nil
}

func (s *employerService) ResumesByJobPosting(ctx context.Context, jobPostingID int64) ([]*domain.Resume, error) {
	resumes, err := s.resumeRepo.ListByJobPostingID(ctx, jobPostingID)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while fetching the resumes", err)
	}
	return resumes, nil
}

func (s *employerService) ApplicationsByJobPosting(ctx context.Context, jobPostingID int64) ([]*domain.Application, error) {
	applications, err := s.applicationRepo.ListByJobPostingID(ctx, jobPostingID)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while fetching the applications", err)
	}
	return applications, nil
}

func (s *employerService) UpdateApplication(ctx context.Context, id int64, application *domain.Application) (*domain.Application, error) {
	updated, err := s.applicationRepo.Update(ctx, id, application)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while updating the application", err)
	}
	return updated, nil
}

func (s *employerService) StatusByApplicationID(ctx context.Context, applicationID int64) (string, error) {
	status, err := s.applicationRepo.GetStatusByID(ctx, applicationID)
	if err != nil {
		return "", domain.NewBusinessError("data layer error while fetching the application status", err)
	}
	return status, nil
}

// Shortlist reads the seeker, the posting, and the application's current
// status, then sends the status-keyed notification. It never changes the
// status itself; setting the status is a separate UpdateApplication call, and
// nothing forces the caller to make the two calls atomically.
func (s *employerService) Shortlist(ctx context.Context, jobPostingID, jobSeekerID, applicationID int64) error {
	seeker, err := s.seekerRepo.GetByID(ctx, jobSeekerID)
	if err != nil {
		return domain.NewBusinessError(fmt.Sprintf("job seeker %d not found", jobSeekerID), err)
	}

	posting, err := s.postingRepo.GetByID(ctx, jobPostingID)
	if err != nil {
		return domain.NewBusinessError(fmt.Sprintf("job posting %d not found", jobPostingID), err)
	}

	status, err := s.applicationRepo.GetStatusByID(ctx, applicationID)
	if err != nil {
		return domain.NewBusinessError(fmt.Sprintf("application %d not found", applicationID), err)
	}

	subject := mail.ApplicationStatusSubject(status, posting.CompanyName)
	body := mail.ApplicationStatusBody(seeker.FullName, posting.CompanyName, status)
	if err := s.mailer.Send(ctx, seeker.Email, subject, body); err != nil {
		return domain.NewBusinessError("failed to send application status email", err)
	}
	return nil
}
