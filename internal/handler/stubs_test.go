package handler_test

import (
	"context"
	"time"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/service"
)

// Stub services with overridable behavior per method. Unset methods return
// zero values, which is enough for handlers that only shuttle data.

func testTokens() *service.TokenService {
	return service.NewTokenService("test-secret", time.Hour)
}

type stubSeekerService struct {
	registerFn         func(ctx context.Context, seeker *domain.JobSeeker) (*domain.JobSeeker, error)
	loginFn            func(ctx context.Context, email, password string) (map[string]interface{}, error)
	updatePasswordFn   func(ctx context.Context, email, password string) (bool, error)
	resumeExistsFn     func(ctx context.Context, jobSeekerID int64) (bool, error)
	submitFn           func(ctx context.Context, jobSeekerID, jobPostingID, resumeID int64, application *domain.Application) (*domain.Application, error)
	withdrawFn         func(ctx context.Context, jobSeekerID, applicationID int64) (bool, error)
	hasAppliedFn       func(ctx context.Context, jobPostingID, jobSeekerID int64) (bool, error)
	searchFn           func(ctx context.Context, jobTitle, location, experience string) ([]*domain.JobPosting, error)
	applicationsFn     func(ctx context.Context, jobSeekerID int64) ([]*domain.Application, error)
	resumeBySeekerIDFn func(ctx context.Context, jobSeekerID int64) (*domain.Resume, error)
}

var _ service.JobSeekerService = (*stubSeekerService)(nil)

func (s *stubSeekerService) Register(ctx context.Context, seeker *domain.JobSeeker) (*domain.JobSeeker, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, seeker)
	}
	return seeker, nil
}

func (s *stubSeekerService) Login(ctx context.Context, email, password string) (map[string]interface{}, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, email, password)
	}
	return map[string]interface{}{}, nil
}

func (s *stubSeekerService) UpdatePassword(ctx context.Context, email, password string) (bool, error) {
	if s.updatePasswordFn != nil {
		return s.updatePasswordFn(ctx, email, password)
	}
	return false, nil
}

func (s *stubSeekerService) EmailExists(context.Context, string) (bool, error) { return false, nil }

func (s *stubSeekerService) GetByID(context.Context, int64) (*domain.JobSeeker, error) {
	return &domain.JobSeeker{}, nil
}

func (s *stubSeekerService) UpdateProfile(_ context.Context, _ int64, seeker *domain.JobSeeker) (*domain.JobSeeker, error) {
	return seeker, nil
}

func (s *stubSeekerService) SaveResume(_ context.Context, resume *domain.Resume) (*domain.Resume, error) {
	return resume, nil
}

func (s *stubSeekerService) ResumeExists(ctx context.Context, jobSeekerID int64) (bool, error) {
	if s.resumeExistsFn != nil {
		return s.resumeExistsFn(ctx, jobSeekerID)
	}
	return false, nil
}

func (s *stubSeekerService) ResumeByJobSeekerID(ctx context.Context, jobSeekerID int64) (*domain.Resume, error) {
	if s.resumeBySeekerIDFn != nil {
		return s.resumeBySeekerIDFn(ctx, jobSeekerID)
	}
	return &domain.Resume{}, nil
}

func (s *stubSeekerService) ResumeByID(context.Context, int64) (*domain.Resume, error) {
	return &domain.Resume{}, nil
}

func (s *stubSeekerService) UpdateResume(_ context.Context, _ int64, resume *domain.Resume) (*domain.Resume, error) {
	return resume, nil
}

func (s *stubSeekerService) SubmitApplication(ctx context.Context, jobSeekerID, jobPostingID, resumeID int64, application *domain.Application) (*domain.Application, error) {
	if s.submitFn != nil {
		return s.submitFn(ctx, jobSeekerID, jobPostingID, resumeID, application)
	}
	return application, nil
}

func (s *stubSeekerService) ApplicationsByJobSeeker(ctx context.Context, jobSeekerID int64) ([]*domain.Application, error) {
	if s.applicationsFn != nil {
		return s.applicationsFn(ctx, jobSeekerID)
	}
	return nil, nil
}

func (s *stubSeekerService) WithdrawApplication(ctx context.Context, jobSeekerID, applicationID int64) (bool, error) {
	if s.withdrawFn != nil {
		return s.withdrawFn(ctx, jobSeekerID, applicationID)
	}
	return false, nil
}

func (s *stubSeekerService) HasApplied(ctx context.Context, jobPostingID, jobSeekerID int64) (bool, error) {
	if s.hasAppliedFn != nil {
		return s.hasAppliedFn(ctx, jobPostingID, jobSeekerID)
	}
	return false, nil
}

func (s *stubSeekerService) SearchJobs(ctx context.Context, jobTitle, location, experience string) ([]*domain.JobPosting, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, jobTitle, location, experience)
	}
	return nil, nil
}

type stubEmployerService struct {
	registerFn  func(ctx context.Context, employer *domain.Employer) (*domain.Employer, error)
	loginFn     func(ctx context.Context, email, password string) (map[string]interface{}, error)
	paginatedFn func(ctx context.Context, page, size int) ([]*domain.JobPosting, int64, error)
	deleteFn    func(ctx context.Context, id int64) error
	shortlistFn func(ctx context.Context, jobPostingID, jobSeekerID, applicationID int64) error
	countFn     func(ctx context.Context, jobPostingID int64) (int64, error)
}

var _ service.EmployerService = (*stubEmployerService)(nil)

func (s *stubEmployerService) Register(ctx context.Context, employer *domain.Employer) (*domain.Employer, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, employer)
	}
	return employer, nil
}

func (s *stubEmployerService) Login(ctx context.Context, email, password string) (map[string]interface{}, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, email, password)
	}
	return map[string]interface{}{}, nil
}

func (s *stubEmployerService) UpdatePassword(context.Context, string, string) (bool, error) {
	return false, nil
}

func (s *stubEmployerService) EmailExists(context.Context, string) (bool, error) { return false, nil }

func (s *stubEmployerService) GetByID(context.Context, int64) (*domain.Employer, error) {
	return &domain.Employer{}, nil
}

func (s *stubEmployerService) UpdateProfile(_ context.Context, _ int64, employer *domain.Employer) (*domain.Employer, error) {
	return employer, nil
}

func (s *stubEmployerService) SaveJobPosting(_ context.Context, posting *domain.JobPosting) (*domain.JobPosting, error) {
	return posting, nil
}

func (s *stubEmployerService) PaginatedJobPostings(ctx context.Context, page, size int) ([]*domain.JobPosting, int64, error) {
	if s.paginatedFn != nil {
		return s.paginatedFn(ctx, page, size)
	}
	return nil, 0, nil
}

func (s *stubEmployerService) JobPostingsByEmployer(context.Context, int64) ([]*domain.JobPosting, error) {
	return nil, nil
}

func (s *stubEmployerService) UpdateJobPosting(_ context.Context, _ int64, posting *domain.JobPosting) (*domain.JobPosting, error) {
	return posting, nil
}

func (s *stubEmployerService) DeleteJobPosting(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubEmployerService) ApplicantCount(ctx context.Context, jobPostingID int64) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx, jobPostingID)
	}
	return 0, nil
}

func (s *stubEmployerService) ResumesByJobPosting(context.Context, int64) ([]*domain.Resume, error) {
	return nil, nil
}

func (s *stubEmployerService) ApplicationsByJobPosting(context.Context, int64) ([]*domain.Application, error) {
	return nil, nil
}

func (s *stubEmployerService) UpdateApplication(_ context.Context, _ int64, application *domain.Application) (*domain.Application, error) {
	return application, nil
}

func (s *stubEmployerService) StatusByApplicationID(context.Context, int64) (string, error) {
	return domain.StatusPending, nil
}

func (s *stubEmployerService) Shortlist(ctx context.Context, jobPostingID, jobSeekerID, applicationID int64) error {
	if s.shortlistFn != nil {
		return s.shortlistFn(ctx, jobPostingID, jobSeekerID, applicationID)
	}
	return nil
}
