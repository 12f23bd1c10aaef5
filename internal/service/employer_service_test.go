package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/service"
)

type employerFixture struct {
	employerRepo    *fakeEmployerRepo
	seekerRepo      *fakeSeekerRepo
	postingRepo     *fakePostingRepo
	resumeRepo      *fakeResumeRepo
	applicationRepo *fakeApplicationRepo
	mailer          *fakeMailer
	svc             service.EmployerService
}

func newEmployerFixture() *employerFixture {
	f := &employerFixture{
		employerRepo:    newFakeEmployerRepo(),
		seekerRepo:      newFakeSeekerRepo(),
		postingRepo:     newFakePostingRepo(),
		resumeRepo:      newFakeResumeRepo(),
		applicationRepo: newFakeApplicationRepo(),
		mailer:          &fakeMailer{},
	}
	f.svc = service.NewEmployerService(f.employerRepo, f.seekerRepo, f.postingRepo, f.resumeRepo, f.applicationRepo, f.mailer)
	return f
}

func validEmployer() *domain.Employer {
	return &domain.Employer{
		CompanyName:  "Acme",
		FullName:     "Rita Rao",
		Email:        "rita@acme.com",
		MobileNumber: "9876543210",
		Designation:  "HR Manager",
		Password:     "secret123",
	}
}

func TestEmployerRegister(t *testing.T) {
	f := newEmployerFixture()

	registered, err := f.svc.Register(context.Background(), validEmployer())
	require.NoError(t, err)

	assert.NotZero(t, registered.ID)
	assert.Equal(t, domain.RoleEmployer, registered.Role)
	assert.False(t, registered.CreatedAt.IsZero())

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "rita@acme.com", f.mailer.sent[0].To)
	assert.Contains(t, f.mailer.sent[0].Subject, "Rita Rao")
}

func TestEmployerRegisterForcesRole(t *testing.T) {
	f := newEmployerFixture()

	employer := validEmployer()
	employer.Role = "admin"

	registered, err := f.svc.Register(context.Background(), employer)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployer, registered.Role)
}

func TestEmployerLogin(t *testing.T) {
	f := newEmployerFixture()
	_, err := f.svc.Register(context.Background(), validEmployer())
	require.NoError(t, err)

	result, err := f.svc.Login(context.Background(), "rita@acme.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployer, result["role"])
	assert.Equal(t, int64(1), result["id"])
	assert.Equal(t, "Rita Rao", result["fullName"])

	result, err = f.svc.Login(context.Background(), "rita@acme.com", "wrong")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestPaginatedJobPostings(t *testing.T) {
	f := newEmployerFixture()
	for i := 0; i < 7; i++ {
		require.NoError(t, f.postingRepo.Save(context.Background(), validPosting(1)))
	}

	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset int
		wantLen    int
	}{
		{name: "first page", page: 1, size: 3, wantOffset: 0, wantLen: 3},
		{name: "second page", page: 2, size: 3, wantOffset: 3, wantLen: 3},
		{name: "last partial page", page: 3, size: 3, wantOffset: 6, wantLen: 1},
		{name: "page beyond the data", page: 5, size: 3, wantOffset: 12, wantLen: 0},
		{name: "page zero clamps to offset zero", page: 0, size: 3, wantOffset: 0, wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postings, total, err := f.svc.PaginatedJobPostings(context.Background(), tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, f.postingRepo.lastOffset)
			assert.Equal(t, tt.size, f.postingRepo.lastLimit)
			assert.Len(t, postings, tt.wantLen)
			assert.Equal(t, int64(7), total, "total count is the unfiltered row count")
		})
	}
}

func TestDeleteJobPosting(t *testing.T) {
	f := newEmployerFixture()

	posting := validPosting(1)
	require.NoError(t, f.postingRepo.Save(context.Background(), posting))
	require.NoError(t, f.applicationRepo.Save(context.Background(), &domain.Application{
		JobSeekerID:  3,
		JobPostingID: posting.ID,
		ResumeID:     1,
	}))

	err := f.svc.DeleteJobPosting(context.Background(), posting.ID)
	require.NoError(t, err)

	assert.Empty(t, f.postingRepo.postings)
	assert.Empty(t, f.applicationRepo.applications)
	assert.Equal(t, []int64{posting.ID}, f.applicationRepo.deletedForPosting, "applications are removed before the posting")
}

func TestDeleteJobPostingNotFound(t *testing.T) {
	f := newEmployerFixture()

	err := f.svc.DeleteJobPosting(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The application cleanup ran anyway; the two deletes are independent.
	assert.Equal(t, []int64{42}, f.applicationRepo.deletedForPosting)
}

func TestShortlistNotifications(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		wantSubject string
		wantBody    string
	}{
		{
			name:        "shortlisted",
			status:      domain.StatusShortlisted,
			wantSubject: "Congratulations! You've been shortlisted for Acme",
			wantBody:    "<strong>shortlisted</strong>",
		},
		{
			name:        "rejected",
			status:      domain.StatusRejected,
			wantSubject: "Application Update from Acme",
			wantBody:    "<strong>rejected</strong>",
		},
		{
			name:        "pending",
			status:      domain.StatusPending,
			wantSubject: "Application Status Update for Acme",
			wantBody:    "<strong>pending</strong>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEmployerFixture()

			seeker := validSeeker()
			require.NoError(t, f.seekerRepo.Save(context.Background(), seeker))

			posting := validPosting(1)
			require.NoError(t, f.postingRepo.Save(context.Background(), posting))

			application := &domain.Application{
				JobSeekerID:  seeker.ID,
				JobPostingID: posting.ID,
				ResumeID:     1,
				Status:       tt.status,
			}
			require.NoError(t, f.applicationRepo.Save(context.Background(), application))

			err := f.svc.Shortlist(context.Background(), posting.ID, seeker.ID, application.ID)
			require.NoError(t, err)

			require.Len(t, f.mailer.sent, 1)
			assert.Equal(t, seeker.Email, f.mailer.sent[0].To)
			assert.Equal(t, tt.wantSubject, f.mailer.sent[0].Subject)
			assert.Contains(t, f.mailer.sent[0].Body, tt.wantBody)

			// Shortlist notifies; it never changes the stored status.
			status, err := f.svc.StatusByApplicationID(context.Background(), application.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestShortlistMissingApplication(t *testing.T) {
	f := newEmployerFixture()

	seeker := validSeeker()
	require.NoError(t, f.seekerRepo.Save(context.Background(), seeker))
	posting := validPosting(1)
	require.NoError(t, f.postingRepo.Save(context.Background(), posting))

	err := f.svc.Shortlist(context.Background(), posting.ID, seeker.ID, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.mailer.sent)
}

func TestUpdateApplicationStatus(t *testing.T) {
	f := newEmployerFixture()

	application := &domain.Application{JobSeekerID: 3, JobPostingID: 5, ResumeID: 1}
	application.BeforeSave()
	require.NoError(t, f.applicationRepo.Save(context.Background(), application))

	updated, err := f.svc.UpdateApplication(context.Background(), application.ID, &domain.Application{
		JobSeekerID:  3,
		JobPostingID: 5,
		ResumeID:     1,
		Status:       domain.StatusShortlisted,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShortlisted, updated.Status)

	status, err := f.svc.StatusByApplicationID(context.Background(), application.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShortlisted, status)
}

func TestApplicantCount(t *testing.T) {
	f := newEmployerFixture()
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, f.applicationRepo.Save(context.Background(), &domain.Application{
			JobSeekerID:  i,
			JobPostingID: 5,
			ResumeID:     i,
		}))
	}
	require.NoError(t, f.applicationRepo.Save(context.Background(), &domain.Application{
		JobSeekerID:  9,
		JobPostingID: 6,
		ResumeID:     9,
	}))

	count, err := f.svc.ApplicantCount(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestEmployerServiceWrapsDataErrors(t *testing.T) {
	f := newEmployerFixture()
	f.postingRepo.err = errors.New("connection refused")

	_, _, err := f.svc.PaginatedJobPostings(context.Background(), 1, 10)
	require.Error(t, err)

	var berr *domain.BusinessError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "data layer error while retrieving job postings", berr.Message)
}
