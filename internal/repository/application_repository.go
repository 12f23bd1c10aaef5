package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) domain.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Save(ctx context.Context, application *domain.Application) error {
	query := `
        INSERT INTO applications (job_seeker_id, job_posting_id, resume_id, status, applied_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		application.JobSeekerID,
		application.JobPostingID,
		application.ResumeID,
		application.Status,
		application.AppliedAt,
	).Scan(&application.ID)

	if err != nil {
		log.Error().Err(err).Msg("failed to save application")
		return dataErr("save application", err)
	}
	return nil
}

func (r *applicationRepository) GetStatusByID(ctx context.Context, id int64) (string, error) {
	var status string
	query := `SELECT status FROM applications WHERE id = $1`

	if err := r.db.QueryRowContext(ctx, query, id).Scan(&status); err != nil {
		return "", dataErr("get application status", err)
	}
	return status, nil
}

func (r *applicationRepository) Update(ctx context.Context, id int64, application *domain.Application) (*domain.Application, error) {
	query := `UPDATE applications SET status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, application.Status, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update application")
		return nil, dataErr("update application", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, dataErr("update application", err)
	}
	if affected == 0 {
		return nil, dataErr("update application", domain.ErrNotFound)
	}

	application.ID = id
	return application, nil
}

func (r *applicationRepository) ListByJobPostingID(ctx context.Context, jobPostingID int64) ([]*domain.Application, error) {
	query := `
        SELECT id, job_seeker_id, job_posting_id, resume_id, status, applied_at
        FROM applications
        WHERE job_posting_id = $1
        ORDER BY applied_at DESC`
	return r.list(ctx, "list applications by job posting", query, jobPostingID)
}

// ListByJobSeekerID also joins the posting so the applied-jobs page can show
// title and company without a second round trip.
func (r *applicationRepository) ListByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]*domain.Application, error) {
	query := `
        SELECT a.id, a.job_seeker_id, a.job_posting_id, a.resume_id, a.status, a.applied_at,
               p.id, p.employer_id, p.job_title, p.job_description, p.roles_and_responsibilities, p.company_name, p.location, p.employment_type, p.salary, p.job_category, p.skills, p.experience, p.education, p.number_of_openings, p.posted_date, p.last_date
        FROM applications a
        JOIN job_postings p ON p.id = a.job_posting_id
        WHERE a.job_seeker_id = $1
        ORDER BY a.applied_at DESC`

	rows, err := r.db.QueryContext(ctx, query, jobSeekerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list applications by job seeker")
		return nil, dataErr("list applications by job seeker", err)
	}
	defer rows.Close()

	var applications []*domain.Application
	for rows.Next() {
		a := &domain.Application{}
		p := &domain.JobPosting{}

		err := rows.Scan(
			&a.ID, &a.JobSeekerID, &a.JobPostingID, &a.ResumeID, &a.Status, &a.AppliedAt,
			&p.ID, &p.EmployerID, &p.JobTitle, &p.JobDescription, &p.RolesAndResponsibilities,
			&p.CompanyName, &p.Location, &p.EmploymentType, &p.Salary, &p.JobCategory,
			&p.Skills, &p.Experience, &p.Education, &p.NumberOfOpenings, &p.PostedDate, &p.LastDate,
		)
		if err != nil {
			return nil, dataErr("list applications by job seeker", err)
		}

		a.JobPosting = p
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("list applications by job seeker", err)
	}
	return applications, nil
}

func (r *applicationRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to " + op)
		return nil, dataErr(op, err)
	}
	defer rows.Close()

	var applications []*domain.Application
	for rows.Next() {
		a := &domain.Application{}
		if err := rows.Scan(&a.ID, &a.JobSeekerID, &a.JobPostingID, &a.ResumeID, &a.Status, &a.AppliedAt); err != nil {
			return nil, dataErr(op, err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr(op, err)
	}
	return applications, nil
}

func (r *applicationRepository) CountByJobPostingID(ctx context.Context, jobPostingID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(DISTINCT job_seeker_id) FROM applications WHERE job_posting_id = $1`

	if err := r.db.QueryRowContext(ctx, query, jobPostingID).Scan(&count); err != nil {
		return 0, dataErr("count applicants", err)
	}
	return count, nil
}

func (r *applicationRepository) HasApplied(ctx context.Context, jobPostingID, jobSeekerID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_posting_id = $1 AND job_seeker_id = $2)`

	if err := r.db.QueryRowContext(ctx, query, jobPostingID, jobSeekerID).Scan(&exists); err != nil {
		return false, dataErr("check application existence", err)
	}
	return exists, nil
}

func (r *applicationRepository) DeleteByJobSeekerAndID(ctx context.Context, jobSeekerID, applicationID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM applications WHERE job_seeker_id = $1 AND id = $2`, jobSeekerID, applicationID)
	if err != nil {
		log.Error().Err(err).Int64("application_id", applicationID).Msg("failed to withdraw application")
		return false, dataErr("withdraw application", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, dataErr("withdraw application", err)
	}
	return affected > 0, nil
}

func (r *applicationRepository) DeleteByJobPostingID(ctx context.Context, jobPostingID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM applications WHERE job_posting_id = $1`, jobPostingID)
	if err != nil {
		log.Error().Err(err).Int64("job_posting_id", jobPostingID).Msg("failed to delete applications for posting")
		return 0, dataErr("delete applications by job posting", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, dataErr("delete applications by job posting", err)
	}
	return affected, nil
}
