package service

import (
	"context"
	"fmt"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/mail"
)

// JobSeekerService covers the candidate side of the board: account lifecycle,
// resume management, job search, and the application lifecycle up to
// withdrawal.
type JobSeekerService interface {
	Register(ctx context.Context, seeker *domain.JobSeeker) (*domain.JobSeeker, error)
	Login(ctx context.Context, email, password string) (map[string]interface{}, error)
	UpdatePassword(ctx context.Context, email, password string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.JobSeeker, error)
	UpdateProfile(ctx context.Context, id int64, seeker *domain.JobSeeker) (*domain.JobSeeker, error)

	SaveResume(ctx context.Context, resume *domain.Resume) (*domain.Resume, error)
	ResumeExists(ctx context.Context, jobSeekerID int64) (bool, error)
	ResumeByJobSeekerID(ctx context.Context, jobSeekerID int64) (*domain.Resume, error)
	ResumeByID(ctx context.Context, id int64) (*domain.Resume, error)
	UpdateResume(ctx context.Context, id int64, resume *domain.Resume) (*domain.Resume, error)

	SubmitApplication(ctx context.Context, jobSeekerID, jobPostingID, resumeID int64, application *domain.Application) (*domain.Application, error)
	ApplicationsByJobSeeker(ctx context.Context, jobSeekerID int64) ([]*domain.Application, error)
	WithdrawApplication(ctx context.Context, jobSeekerID, applicationID int64) (bool, error)
	HasApplied(ctx context.Context, jobPostingID, jobSeekerID int64) (bool, error)
	SearchJobs(ctx context.Context, jobTitle, location, experience string) ([]*domain.JobPosting, error)
}

type jobSeekerService struct {
	seekerRepo      domain.JobSeekerRepository
	postingRepo     domain.JobPostingRepository
	resumeRepo      domain.ResumeRepository
	applicationRepo domain.ApplicationRepository
	mailer          mail.Mailer
}

func NewJobSeekerService(
	seekerRepo domain.JobSeekerRepository,
	postingRepo domain.JobPostingRepository,
	resumeRepo domain.ResumeRepository,
	applicationRepo domain.ApplicationRepository,
	mailer mail.Mailer,
) JobSeekerService {
	return &jobSeekerService{
		seekerRepo:      seekerRepo,
		postingRepo:     postingRepo,
		resumeRepo:      resumeRepo,
		applicationRepo: applicationRepo,
		mailer:          mailer,
	}
}

// Register persists the seeker, then sends the welcome mail. A persistence
// failure aborts before any mail is attempted. A mail failure surfaces as an
// error even though the row is already durable; there is no compensating
// rollback.
func (s *jobSeekerService) Register(ctx context.Context, seeker *domain.JobSeeker) (*domain.JobSeeker, error) {
	seeker.BeforeSave()
	if err := seeker.Validate(); err != nil {
		return nil, err
	}

	if err := s.seekerRepo.Save(ctx, seeker); err != nil {
		return nil, domain.NewBusinessError("data layer error while registering job seeker", err)
	}

	subject := mail.WelcomeSubject(seeker.FullName)
	body := mail.WelcomeBody(seeker.FullName)
	if err := s.mailer.Send(ctx, seeker.Email, subject, body); err != nil {
		return nil, domain.NewBusinessError("failed to send welcome email", err)
	}

	return seeker, nil
}

func (s *jobSeekerService) Login(ctx context.Context, email, password string) (map[string]interface{}, error) {
	return loginWithCredentials(ctx, s.seekerRepo, email, password)
}

func (s *jobSeekerService) UpdatePassword(ctx context.Context, email, password string) (bool, error) {
	updated, err := s.seekerRepo.UpdatePassword(ctx, email, password)
	if err != nil {
		return false, domain.NewBusinessError("data layer error while updating the password", err)
	}
	return updated, nil
}

func (s *jobSeekerService) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.seekerRepo.EmailExists(ctx, email)
	if err != nil {
		return false, domain.NewBusinessError("data layer error while checking the email", err)
	}
	return exists, nil
}

func (s *jobSeekerService) GetByID(ctx context.Context, id int64) (*domain.JobSeeker, error) {
	seeker, err := s.seekerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while fetching the job seeker", err)
	}
	return seeker, nil
}

func (s *jobSeekerService) UpdateProfile(ctx context.Context, id int64, seeker *domain.JobSeeker) (*domain.JobSeeker, error) {
	seeker.BeforeSave()
	if err := seeker.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.seekerRepo.Update(ctx, id, seeker)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while updating the job seeker", err)
	}
	return updated, nil
}

func (s *jobSeekerService) SaveResume(ctx context.Context, resume *domain.Resume) (*domain.Resume, error) {
	resume.BeforeSave()
	if err := resume.Validate(); err != nil {
		return nil, err
	}

	if err := s.resumeRepo.Save(ctx, resume); err != nil {
		return nil, domain.NewBusinessError("data layer error while saving the resume", err)
	}
	return resume, nil
}

func (s *jobSeekerService) ResumeExists(ctx context.Context, jobSeekerID int64) (bool, error) {
	exists, err := s.resumeRepo.ExistsForJobSeeker(ctx, jobSeekerID)
	if err != nil {
		return false, domain.NewBusinessError("data layer error while checking the resume", err)
	}
	return exists, nil
}

func (s *jobSeekerService) ResumeByJobSeekerID(ctx context.Context, jobSeekerID int64) (*domain.Resume, error) {
	resume, err := s.resumeRepo.GetByJobSeekerID(ctx, jobSeekerID)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while fetching the resume", err)
	}
	return resume, nil
}

func (s *jobSeekerService) ResumeByID(ctx context.Context, id int64) (*domain.Resume, error) {
	resume, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while fetching the resume", err)
	}
	return resume, nil
}

func (s *jobSeekerService) UpdateResume(ctx context.Context, id int64, resume *domain.Resume) (*domain.Resume, error) {
	resume.BeforeSave()
	if err := resume.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.resumeRepo.Update(ctx, id, resume)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while updating the resume", err)
	}
	return updated, nil
}

// SubmitApplication enforces the existence of seeker, posting, and resume
// before anything is written. All three lookups happen before the persist
// call, the persist call happens before the notification, and a notification
// failure leaves the stored application in place.
func (s *jobSeekerService) SubmitApplication(ctx context.Context, jobSeekerID, jobPostingID, resumeID int64, application *domain.Application) (*domain.Application, error) {
	seeker, err := s.seekerRepo.GetByID(ctx, jobSeekerID)
	if err != nil {
		return nil, domain.NewBusinessError(fmt.Sprintf("job seeker %d not found", jobSeekerID), err)
	}

	posting, err := s.postingRepo.GetByID(ctx, jobPostingID)
	if err != nil {
		return nil, domain.NewBusinessError(fmt.Sprintf("job posting %d not found", jobPostingID), err)
	}

	resume, err := s.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, domain.NewBusinessError(fmt.Sprintf("resume %d not found", resumeID), err)
	}

	application.JobSeekerID = seeker.ID
	application.JobPostingID = posting.ID
	application.ResumeID = resume.ID
	application.BeforeSave()

	if err := s.applicationRepo.Save(ctx, application); err != nil {
		return nil, domain.NewBusinessError("data layer error while submitting the application", err)
	}

	subject := mail.ApplicationReceivedSubject(posting.CompanyName)
	body := mail.ApplicationReceivedBody(seeker.FullName, posting.CompanyName)
	if err := s.mailer.Send(ctx, seeker.Email, subject, body); err != nil {
		// The application is already durable at this point.
		return nil, domain.NewBusinessError("failed to send application received email", err)
	}

	return application, nil
}

func (s *jobSeekerService) ApplicationsByJobSeeker(ctx context.Context, jobSeekerID int64) ([]*domain.Application, error) {
	applications, err := s.applicationRepo.ListByJobSeekerID(ctx, jobSeekerID)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while fetching the applications", err)
	}
	return applications, nil
}

// WithdrawApplication reports whether a matching row existed and was removed.
// No notification is sent on withdrawal.
func (s *jobSeekerService) WithdrawApplication(ctx context.Context, jobSeekerID, applicationID int64) (bool, error) {
	withdrawn, err := s.applicationRepo.DeleteByJobSeekerAndID(ctx, jobSeekerID, applicationID)
	if err != nil {
		return false, domain.NewBusinessError("data layer error while withdrawing the application", err)
	}
	return withdrawn, nil
}

func (s *jobSeekerService) HasApplied(ctx context.Context, jobPostingID, jobSeekerID int64) (bool, error) {
	applied, err := s.applicationRepo.HasApplied(ctx, jobPostingID, jobSeekerID)
	if err != nil {
		return false, domain.NewBusinessError("data layer error while checking the application", err)
	}
	return applied, nil
}

func (s *jobSeekerService) SearchJobs(ctx context.Context, jobTitle, location, experience string) ([]*domain.JobPosting, error) {
	postings, err := s.postingRepo.Search(ctx, jobTitle, location, experience)
	if err != nil {
		return nil, domain.NewBusinessError("data layer error while searching job postings", err)
	}
	return postings, nil
}
