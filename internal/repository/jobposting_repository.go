package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
	"github.com/Aravind0145/Job-Seeker-Backend/pkg/database"
)

const jobPostingColumns = `id, employer_id, job_title, job_description, roles_and_responsibilities, company_name, location, employment_type, salary, job_category, skills, experience, education, number_of_openings, posted_date, last_date`

type jobPostingRepository struct {
	db *sql.DB
}

func NewJobPostingRepository(db *sql.DB) domain.JobPostingRepository {
	return &jobPostingRepository{db: db}
}

func scanJobPosting(row interface{ Scan(...any) error }) (*domain.JobPosting, error) {
	p := &domain.JobPosting{}
	err := row.Scan(
		&p.ID, &p.EmployerID, &p.JobTitle, &p.JobDescription, &p.RolesAndResponsibilities,
		&p.CompanyName, &p.Location, &p.EmploymentType, &p.Salary, &p.JobCategory,
		&p.Skills, &p.Experience, &p.Education, &p.NumberOfOpenings, &p.PostedDate, &p.LastDate,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *jobPostingRepository) Save(ctx context.Context, posting *domain.JobPosting) error {
	query := `
        INSERT INTO job_postings (employer_id, job_title, job_description, roles_and_responsibilities, company_name, location, employment_type, salary, job_category, skills, experience, education, number_of_openings, posted_date, last_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		posting.EmployerID,
		posting.JobTitle,
		posting.JobDescription,
		posting.RolesAndResponsibilities,
		posting.CompanyName,
		posting.Location,
		posting.EmploymentType,
		posting.Salary,
		posting.JobCategory,
		posting.Skills,
		posting.Experience,
		posting.Education,
		posting.NumberOfOpenings,
		posting.PostedDate,
		posting.LastDate,
	).Scan(&posting.ID)

	if err != nil {
		log.Error().Err(err).Msg("failed to save job posting")
		return dataErr("save job posting", err)
	}
	return nil
}

func (r *jobPostingRepository) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE id = $1`

	posting, err := scanJobPosting(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, dataErr("get job posting by id", err)
	}
	return posting, nil
}

// ListPage returns one page of postings newest first plus the full unfiltered
// count, both read inside a single transaction so the count matches the page.
func (r *jobPostingRepository) ListPage(ctx context.Context, offset, limit int) ([]*domain.JobPosting, int64, error) {
	var (
		postings   []*domain.JobPosting
		totalCount int64
	)

	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_postings`).Scan(&totalCount); err != nil {
			return err
		}

		query := `SELECT ` + jobPostingColumns + ` FROM job_postings ORDER BY posted_date DESC, id DESC OFFSET $1 LIMIT $2`
		rows, err := tx.QueryContext(ctx, query, offset, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanJobPosting(rows)
			if err != nil {
				return err
			}
			postings = append(postings, p)
		}
		return rows.Err()
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list job postings page")
		return nil, 0, dataErr("list job postings page", err)
	}
	return postings, totalCount, nil
}

func (r *jobPostingRepository) ListByEmployerID(ctx context.Context, employerID int64) ([]*domain.JobPosting, error) {
	query := `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE employer_id = $1 ORDER BY posted_date DESC`
	return r.list(ctx, "list job postings by employer", query, employerID)
}

func (r *jobPostingRepository) Search(ctx context.Context, jobTitle, location, experience string) ([]*domain.JobPosting, error) {
	query := `
        SELECT ` + jobPostingColumns + `
        FROM job_postings
        WHERE job_title ILIKE '%' || $1 || '%'
          AND location ILIKE '%' || $2 || '%'
          AND experience ILIKE '%' || $3 || '%'
        ORDER BY posted_date DESC`
	return r.list(ctx, "search job postings", query, jobTitle, location, experience)
}

func (r *jobPostingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.JobPosting, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to " + op)
		return nil, dataErr(op, err)
	}
	defer rows.Close()

	var postings []*domain.JobPosting
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, dataErr(op, err)
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr(op, err)
	}
	return postings, nil
}

func (r *jobPostingRepository) Update(ctx context.Context, id int64, posting *domain.JobPosting) (*domain.JobPosting, error) {
	query := `
        UPDATE job_postings
        SET job_title = $1,
            job_description = $2,
            roles_and_responsibilities = $3,
            company_name = $4,
            location = $5,
            employment_type = $6,
            salary = $7,
            job_category = $8,
            skills = $9,
            experience = $10,
            education = $11,
            number_of_openings = $12,
            last_date = $13
        WHERE id = $14`

	result, err := r.db.ExecContext(ctx, query,
		posting.JobTitle,
		posting.JobDescription,
		posting.RolesAndResponsibilities,
		posting.CompanyName,
		posting.Location,
		posting.EmploymentType,
		posting.Salary,
		posting.JobCategory,
		posting.Skills,
		posting.Experience,
		posting.Education,
		posting.NumberOfOpenings,
		posting.LastDate,
		id,
	)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update job posting")
		return nil, dataErr("update job posting", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, dataErr("update job posting", err)
	}
	if affected == 0 {
		return nil, dataErr("update job posting", domain.ErrNotFound)
	}

	posting.ID = id
	return posting, nil
}

func (r *jobPostingRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete job posting")
		return 0, dataErr("delete job posting", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, dataErr("delete job posting", err)
	}
	return affected, nil
}
