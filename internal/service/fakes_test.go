package service_test

import (
	"context"
	"strings"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
)

// In-memory fakes for the repository contracts. Each fake keeps rows in a
// map, hands out sequential ids on save, and can be forced to fail through
// the err field.

type fakeEmployerRepo struct {
	employers map[int64]*domain.Employer
	nextID    int64
	err       error
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{employers: map[int64]*domain.Employer{}, nextID: 1}
}

func (f *fakeEmployerRepo) Save(_ context.Context, employer *domain.Employer) error {
	if f.err != nil {
		return f.err
	}
	employer.ID = f.nextID
	f.nextID++
	copy := *employer
	f.employers[employer.ID] = &copy
	return nil
}

func (f *fakeEmployerRepo) GetByID(_ context.Context, id int64) (*domain.Employer, error) {
	if f.err != nil {
		return nil, f.err
	}
	employer, ok := f.employers[id]
	if !ok {
		return nil, domain.NewDataError("get employer by id", domain.ErrNotFound)
	}
	return employer, nil
}

func (f *fakeEmployerRepo) findByCredentials(email, password string) *domain.Employer {
	for _, e := range f.employers {
		if e.Email == email && e.Password == password {
			return e
		}
	}
	return nil
}

func (f *fakeEmployerRepo) GetRoleByCredentials(_ context.Context, email, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if e := f.findByCredentials(email, password); e != nil {
		return e.Role, nil
	}
	return "", nil
}

func (f *fakeEmployerRepo) GetIDByCredentials(_ context.Context, email, password string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if e := f.findByCredentials(email, password); e != nil {
		return e.ID, nil
	}
	return 0, nil
}

func (f *fakeEmployerRepo) GetNameByCredentials(_ context.Context, email, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if e := f.findByCredentials(email, password); e != nil {
		return e.FullName, nil
	}
	return "", nil
}

func (f *fakeEmployerRepo) UpdatePassword(_ context.Context, email, password string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, e := range f.employers {
		if e.Email == email {
			e.Password = password
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployerRepo) EmailExists(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, e := range f.employers {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployerRepo) Update(_ context.Context, id int64, employer *domain.Employer) (*domain.Employer, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.employers[id]; !ok {
		return nil, domain.NewDataError("update employer", domain.ErrNotFound)
	}
	employer.ID = id
	copy := *employer
	f.employers[id] = &copy
	return employer, nil
}

type fakeSeekerRepo struct {
	seekers map[int64]*domain.JobSeeker
	nextID  int64
	err     error
}

func newFakeSeekerRepo() *fakeSeekerRepo {
	return &fakeSeekerRepo{seekers: map[int64]*domain.JobSeeker{}, nextID: 1}
}

func (f *fakeSeekerRepo) Save(_ context.Context, seeker *domain.JobSeeker) error {
	if f.err != nil {
		return f.err
	}
	seeker.ID = f.nextID
	f.nextID++
	copy := *seeker
	f.seekers[seeker.ID] = &copy
	return nil
}

func (f *fakeSeekerRepo) GetByID(_ context.Context, id int64) (*domain.JobSeeker, error) {
	if f.err != nil {
		return nil, f.err
	}
	seeker, ok := f.seekers[id]
	if !ok {
		return nil, domain.NewDataError("get job seeker by id", domain.ErrNotFound)
	}
	return seeker, nil
}

func (f *fakeSeekerRepo) findByCredentials(email, password string) *domain.JobSeeker {
	for _, s := range f.seekers {
		if s.Email == email && s.Password == password {
			return s
		}
	}
	return nil
}

func (f *fakeSeekerRepo) GetRoleByCredentials(_ context.Context, email, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if s := f.findByCredentials(email, password); s != nil {
		return s.Role, nil
	}
	return "", nil
}

func (f *fakeSeekerRepo) GetIDByCredentials(_ context.Context, email, password string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if s := f.findByCredentials(email, password); s != nil {
		return s.ID, nil
	}
	return 0, nil
}

func (f *fakeSeekerRepo) GetNameByCredentials(_ context.Context, email, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if s := f.findByCredentials(email, password); s != nil {
		return s.FullName, nil
	}
	return "", nil
}

func (f *fakeSeekerRepo) UpdatePassword(_ context.Context, email, password string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, s := range f.seekers {
		if s.Email == email {
			s.Password = password
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSeekerRepo) EmailExists(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, s := range f.seekers {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSeekerRepo) Update(_ context.Context, id int64, seeker *domain.JobSeeker) (*domain.JobSeeker, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.seekers[id]; !ok {
		return nil, domain.NewDataError("update job seeker", domain.ErrNotFound)
	}
	seeker.ID = id
	copy := *seeker
	f.seekers[id] = &copy
	return seeker, nil
}

type fakePostingRepo struct {
	postings map[int64]*domain.JobPosting
	nextID   int64
	err      error

	// Recorded by ListPage so pagination math can be asserted.
	lastOffset int
	lastLimit  int
}

func newFakePostingRepo() *fakePostingRepo {
	return &fakePostingRepo{postings: map[int64]*domain.JobPosting{}, nextID: 1}
}

func (f *fakePostingRepo) Save(_ context.Context, posting *domain.JobPosting) error {
	if f.err != nil {
		return f.err
	}
	posting.ID = f.nextID
	f.nextID++
	copy := *posting
	f.postings[posting.ID] = &copy
	return nil
}

func (f *fakePostingRepo) GetByID(_ context.Context, id int64) (*domain.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	posting, ok := f.postings[id]
	if !ok {
		return nil, domain.NewDataError("get job posting by id", domain.ErrNotFound)
	}
	return posting, nil
}

func (f *fakePostingRepo) ListPage(_ context.Context, offset, limit int) ([]*domain.JobPosting, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.lastOffset = offset
	f.lastLimit = limit

	all := make([]*domain.JobPosting, 0, len(f.postings))
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.postings[id]; ok {
			all = append(all, p)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakePostingRepo) ListByEmployerID(_ context.Context, employerID int64) ([]*domain.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.JobPosting
	for _, p := range f.postings {
		if p.EmployerID == employerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostingRepo) Search(_ context.Context, jobTitle, location, experience string) ([]*domain.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.JobPosting
	for _, p := range f.postings {
		if strings.Contains(strings.ToLower(p.JobTitle), strings.ToLower(jobTitle)) &&
			strings.Contains(strings.ToLower(p.Location), strings.ToLower(location)) &&
			strings.Contains(strings.ToLower(p.Experience), strings.ToLower(experience)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostingRepo) Update(_ context.Context, id int64, posting *domain.JobPosting) (*domain.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.postings[id]; !ok {
		return nil, domain.NewDataError("update job posting", domain.ErrNotFound)
	}
	posting.ID = id
	copy := *posting
	f.postings[id] = &copy
	return posting, nil
}

func (f *fakePostingRepo) DeleteByID(_ context.Context, id int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.postings[id]; !ok {
		return 0, nil
	}
	delete(f.postings, id)
	return 1, nil
}

type fakeResumeRepo struct {
	resumes map[int64]*domain.Resume
	nextID  int64
	err     error
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: map[int64]*domain.Resume{}, nextID: 1}
}

func (f *fakeResumeRepo) Save(_ context.Context, resume *domain.Resume) error {
	if f.err != nil {
		return f.err
	}
	resume.ID = f.nextID
	f.nextID++
	copy := *resume
	f.resumes[resume.ID] = &copy
	return nil
}

func (f *fakeResumeRepo) GetByID(_ context.Context, id int64) (*domain.Resume, error) {
	if f.err != nil {
		return nil, f.err
	}
	resume, ok := f.resumes[id]
	if !ok {
		return nil, domain.NewDataError("get resume by id", domain.ErrNotFound)
	}
	return resume, nil
}

func (f *fakeResumeRepo) GetByJobSeekerID(_ context.Context, jobSeekerID int64) (*domain.Resume, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.resumes {
		if r.JobSeekerID == jobSeekerID {
			return r, nil
		}
	}
	return nil, domain.NewDataError("get resume by job seeker id", domain.ErrNotFound)
}

func (f *fakeResumeRepo) ExistsForJobSeeker(_ context.Context, jobSeekerID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, r := range f.resumes {
		if r.JobSeekerID == jobSeekerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeResumeRepo) Update(_ context.Context, id int64, resume *domain.Resume) (*domain.Resume, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.resumes[id]; !ok {
		return nil, domain.NewDataError("update resume", domain.ErrNotFound)
	}
	resume.ID = id
	copy := *resume
	f.resumes[id] = &copy
	return resume, nil
}

func (f *fakeResumeRepo) ListByJobPostingID(_ context.Context, _ int64) ([]*domain.Resume, error) {
	return nil, f.err
}

type fakeApplicationRepo struct {
	applications map[int64]*domain.Application
	nextID       int64
	err          error

	deletedForPosting []int64
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[int64]*domain.Application{}, nextID: 1}
}

func (f *fakeApplicationRepo) Save(_ context.Context, application *domain.Application) error {
	if f.err != nil {
		return f.err
	}
	application.ID = f.nextID
	f.nextID++
	copy := *application
	f.applications[application.ID] = &copy
	return nil
}

func (f *fakeApplicationRepo) GetStatusByID(_ context.Context, id int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	application, ok := f.applications[id]
	if !ok {
		return "", domain.NewDataError("get application status", domain.ErrNotFound)
	}
	return application.Status, nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, id int64, application *domain.Application) (*domain.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	existing, ok := f.applications[id]
	if !ok {
		return nil, domain.NewDataError("update application", domain.ErrNotFound)
	}
	existing.Status = application.Status
	application.ID = id
	return application, nil
}

func (f *fakeApplicationRepo) ListByJobPostingID(_ context.Context, jobPostingID int64) ([]*domain.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Application
	for _, a := range f.applications {
		if a.JobPostingID == jobPostingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByJobSeekerID(_ context.Context, jobSeekerID int64) ([]*domain.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Application
	for _, a := range f.applications {
		if a.JobSeekerID == jobSeekerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) CountByJobPostingID(_ context.Context, jobPostingID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, a := range f.applications {
		if a.JobPostingID == jobPostingID {
			count++
		}
	}
	return count, nil
}

func (f *fakeApplicationRepo) HasApplied(_ context.Context, jobPostingID, jobSeekerID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.applications {
		if a.JobPostingID == jobPostingID && a.JobSeekerID == jobSeekerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) DeleteByJobSeekerAndID(_ context.Context, jobSeekerID, applicationID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	a, ok := f.applications[applicationID]
	if !ok || a.JobSeekerID != jobSeekerID {
		return false, nil
	}
	delete(f.applications, applicationID)
	return true, nil
}

func (f *fakeApplicationRepo) DeleteByJobPostingID(_ context.Context, jobPostingID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deletedForPosting = append(f.deletedForPosting, jobPostingID)
	var count int64
	for id, a := range f.applications {
		if a.JobPostingID == jobPostingID {
			delete(f.applications, id)
			count++
		}
	}
	return count, nil
}

// sentMail records one delivered notification.
type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}
