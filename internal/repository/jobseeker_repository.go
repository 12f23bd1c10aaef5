package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
)

type jobSeekerRepository struct {
	db *sql.DB
}

func NewJobSeekerRepository(db *sql.DB) domain.JobSeekerRepository {
	return &jobSeekerRepository{db: db}
}

func (r *jobSeekerRepository) Save(ctx context.Context, seeker *domain.JobSeeker) error {
	query := `
        INSERT INTO job_seekers (full_name, email, password, phone, profile_photo, work_status, promotions, role, registration_time)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		seeker.FullName,
		seeker.Email,
		seeker.Password,
		seeker.Phone,
		seeker.ProfilePhoto,
		seeker.WorkStatus,
		seeker.Promotions,
		seeker.Role,
		seeker.RegistrationTime,
	).Scan(&seeker.ID)

	if err != nil {
		log.Error().Err(err).Msg("failed to save job seeker")
		return dataErr("save job seeker", err)
	}
	return nil
}

func (r *jobSeekerRepository) GetByID(ctx context.Context, id int64) (*domain.JobSeeker, error) {
	seeker := &domain.JobSeeker{}

	query := `
        SELECT id, full_name, email, password, phone, profile_photo, work_status, promotions, role, registration_time
        FROM job_seekers WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&seeker.ID, &seeker.FullName, &seeker.Email, &seeker.Password, &seeker.Phone,
		&seeker.ProfilePhoto, &seeker.WorkStatus, &seeker.Promotions, &seeker.Role,
		&seeker.RegistrationTime,
	)
	if err != nil {
		return nil, dataErr("get job seeker by id", err)
	}
	return seeker, nil
}

func (r *jobSeekerRepository) GetRoleByCredentials(ctx context.Context, email, password string) (string, error) {
	return r.stringByCredentials(ctx, "role", email, password)
}

func (r *jobSeekerRepository) GetNameByCredentials(ctx context.Context, email, password string) (string, error) {
	return r.stringByCredentials(ctx, "full_name", email, password)
}

func (r *jobSeekerRepository) GetIDByCredentials(ctx context.Context, email, password string) (int64, error) {
	var id int64
	query := `SELECT id FROM job_seekers WHERE email = $1 AND password = $2`

	err := r.db.QueryRowContext(ctx, query, email, password).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, dataErr("get job seeker id by credentials", err)
	}
	return id, nil
}

func (r *jobSeekerRepository) stringByCredentials(ctx context.Context, column, email, password string) (string, error) {
	var value string
	query := `SELECT ` + column + ` FROM job_seekers WHERE email = $1 AND password = $2`

	err := r.db.QueryRowContext(ctx, query, email, password).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", dataErr("get job seeker "+column+" by credentials", err)
	}
	return value, nil
}

func (r *jobSeekerRepository) UpdatePassword(ctx context.Context, email, password string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE job_seekers SET password = $1 WHERE email = $2`, password, email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to update job seeker password")
		return false, dataErr("update job seeker password", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, dataErr("update job seeker password", err)
	}
	return affected > 0, nil
}

func (r *jobSeekerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM job_seekers WHERE email = $1)`

	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, dataErr("check job seeker email", err)
	}
	return exists, nil
}

func (r *jobSeekerRepository) Update(ctx context.Context, id int64, seeker *domain.JobSeeker) (*domain.JobSeeker, error) {
	// Full-field overwrite; registration_time stays untouched.
	query := `
        UPDATE job_seekers
        SET full_name = $1,
            email = $2,
            password = $3,
            phone = $4,
            profile_photo = $5,
            work_status = $6,
            promotions = $7
        WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		seeker.FullName,
		seeker.Email,
		seeker.Password,
		seeker.Phone,
		seeker.ProfilePhoto,
		seeker.WorkStatus,
		seeker.Promotions,
		id,
	)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update job seeker")
		return nil, dataErr("update job seeker", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, dataErr("update job seeker", err)
	}
	if affected == 0 {
		return nil, dataErr("update job seeker", domain.ErrNotFound)
	}

	seeker.ID = id
	return seeker, nil
}
