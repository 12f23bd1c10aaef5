package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
)

const resumeColumns = `id, job_seeker_id, headline, first_name, middle_name, last_name, email, phone_number, dob, languages, linkedin_url, permanent_address, current_address, profile_photo, xth, xth_year, xii, xii_year, graduation, graduation_year, pg, pg_status, skills, project_title, project_description, certificate_name, certificate_description`

type resumeRepository struct {
	db *sql.DB
}

func NewResumeRepository(db *sql.DB) domain.ResumeRepository {
	return &resumeRepository{db: db}
}

func scanResume(row interface{ Scan(...any) error }) (*domain.Resume, error) {
	r := &domain.Resume{}
	err := row.Scan(
		&r.ID, &r.JobSeekerID, &r.Headline, &r.FirstName, &r.MiddleName, &r.LastName,
		&r.Email, &r.PhoneNumber, &r.DOB, &r.Languages, &r.LinkedinURL,
		&r.PermanentAddress, &r.CurrentAddress, &r.ProfilePhoto,
		&r.Xth, &r.XthYear, &r.XII, &r.XIIYear, &r.Graduation, &r.GraduationYear,
		&r.PG, &r.PGStatus, &r.Skills, &r.ProjectTitle, &r.ProjectDescription,
		&r.CertificateName, &r.CertificateDescription,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *resumeRepository) Save(ctx context.Context, resume *domain.Resume) error {
	query := `
        INSERT INTO resumes (job_seeker_id, headline, first_name, middle_name, last_name, email, phone_number, dob, languages, linkedin_url, permanent_address, current_address, profile_photo, xth, xth_year, xii, xii_year, graduation, graduation_year, pg, pg_status, skills, project_title, project_description, certificate_name, certificate_description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
        RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		resume.JobSeekerID, resume.Headline, resume.FirstName, resume.MiddleName, resume.LastName,
		resume.Email, resume.PhoneNumber, resume.DOB, resume.Languages, resume.LinkedinURL,
		resume.PermanentAddress, resume.CurrentAddress, resume.ProfilePhoto,
		resume.Xth, resume.XthYear, resume.XII, resume.XIIYear, resume.Graduation, resume.GraduationYear,
		resume.PG, resume.PGStatus, resume.Skills, resume.ProjectTitle, resume.ProjectDescription,
		resume.CertificateName, resume.CertificateDescription,
	).Scan(&resume.ID)

	if err != nil {
		log.Error().Err(err).Msg("failed to save resume")
		return dataErr("save resume", err)
	}
	return nil
}

func (r *resumeRepository) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`

	resume, err := scanResume(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, dataErr("get resume by id", err)
	}
	return resume, nil
}

func (r *resumeRepository) GetByJobSeekerID(ctx context.Context, jobSeekerID int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE job_seeker_id = $1`

	resume, err := scanResume(r.db.QueryRowContext(ctx, query, jobSeekerID))
	if err != nil {
		return nil, dataErr("get resume by job seeker id", err)
	}
	return resume, nil
}

func (r *resumeRepository) ExistsForJobSeeker(ctx context.Context, jobSeekerID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM resumes WHERE job_seeker_id = $1)`

	if err := r.db.QueryRowContext(ctx, query, jobSeekerID).Scan(&exists); err != nil {
		return false, dataErr("check resume existence", err)
	}
	return exists, nil
}

func (r *resumeRepository) Update(ctx context.Context, id int64, resume *domain.Resume) (*domain.Resume, error) {
	query := `
        UPDATE resumes
        SET headline = $1, first_name = $2, middle_name = $3, last_name = $4,
            email = $5, phone_number = $6, dob = $7, languages = $8, linkedin_url = $9,
            permanent_address = $10, current_address = $11, profile_photo = $12,
            xth = $13, xth_year = $14, xii = $15, xii_year = $16,
            graduation = $17, graduation_year = $18, pg = $19, pg_status = $20,
            skills = $21, project_title = $22, project_description = $23,
            certificate_name = $24, certificate_description = $25
        WHERE id = $26`

	result, err := r.db.ExecContext(ctx, query,
		resume.Headline, resume.FirstName, resume.MiddleName, resume.LastName,
		resume.Email, resume.PhoneNumber, resume.DOB, resume.Languages, resume.LinkedinURL,
		resume.PermanentAddress, resume.CurrentAddress, resume.ProfilePhoto,
		resume.Xth, resume.XthYear, resume.XII, resume.XIIYear,
		resume.Graduation, resume.GraduationYear, resume.PG, resume.PGStatus,
		resume.Skills, resume.ProjectTitle, resume.ProjectDescription,
		resume.CertificateName, resume.CertificateDescription,
		id,
	)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update resume")
		return nil, dataErr("update resume", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, dataErr("update resume", err)
	}
	if affected == 0 {
		return nil, dataErr("update resume", domain.ErrNotFound)
	}

	resume.ID = id
	return resume, nil
}

func (r *resumeRepository) ListByJobPostingID(ctx context.Context, jobPostingID int64) ([]*domain.Resume, error) {
	query := `
        SELECT r.id, r.job_seeker_id, r.headline, r.first_name, r.middle_name, r.last_name, r.email, r.phone_number, r.dob, r.languages, r.linkedin_url, r.permanent_address, r.current_address, r.profile_photo, r.xth, r.xth_year, r.xii, r.xii_year, r.graduation, r.graduation_year, r.pg, r.pg_status, r.skills, r.project_title, r.project_description, r.certificate_name, r.certificate_description
        FROM resumes r
        JOIN applications a ON a.resume_id = r.id
        WHERE a.job_posting_id = $1
        ORDER BY a.applied_at DESC`

	rows, err := r.db.QueryContext(ctx, query, jobPostingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list resumes by job posting")
		return nil, dataErr("list resumes by job posting", err)
	}
	defer rows.Close()

	var resumes []*domain.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, dataErr("list resumes by job posting", err)
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("list resumes by job posting", err)
	}
	return resumes, nil
}
