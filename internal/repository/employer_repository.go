package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
)

// dataErr translates driver failures into the domain error taxonomy so the
// services above never see database/sql internals.
func dataErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.ErrNotFound
	}
	return domain.NewDataError(op, err)
}

type employerRepository struct {
	db *sql.DB
}

func NewEmployerRepository(db *sql.DB) domain.EmployerRepository {
	return &employerRepository{db: db}
}

func (r *employerRepository) Save(ctx context.Context, employer *domain.Employer) error {
	query := `
        INSERT INTO employers (company_name, website_url, full_name, email, mobile_number, profile_photo, designation, password, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		employer.CompanyName,
		employer.WebsiteURL,
		employer.FullName,
		employer.Email,
		employer.MobileNumber,
		employer.ProfilePhoto,
		employer.Designation,
		employer.Password,
		employer.Role,
		employer.CreatedAt,
	).Scan(&employer.ID)

	if err != nil {
		log.Error().Err(err).Msg("failed to save employer")
		return dataErr("save employer", err)
	}
	return nil
}

func (r *employerRepository) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	employer := &domain.Employer{}

	query := `
        SELECT id, company_name, website_url, full_name, email, mobile_number, profile_photo, designation, password, role, created_at
        FROM employers WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&employer.ID, &employer.CompanyName, &employer.WebsiteURL, &employer.FullName,
		&employer.Email, &employer.MobileNumber, &employer.ProfilePhoto, &employer.Designation,
		&employer.Password, &employer.Role, &employer.CreatedAt,
	)
	if err != nil {
		return nil, dataErr("get employer by id", err)
	}
	return employer, nil
}

func (r *employerRepository) GetRoleByCredentials(ctx context.Context, email, password string) (string, error) {
	return r.stringByCredentials(ctx, "role", email, password)
}

func (r *employerRepository) GetNameByCredentials(ctx context.Context, email, password string) (string, error) {
	return r.stringByCredentials(ctx, "full_name", email, password)
}

func (r *employerRepository) GetIDByCredentials(ctx context.Context, email, password string) (int64, error) {
	var id int64
	query := `SELECT id FROM employers WHERE email = $1 AND password = $2`

	err := r.db.QueryRowContext(ctx, query, email, password).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		// Absent credentials are not an error; login treats zero as no match.
		return 0, nil
	}
	if err != nil {
		return 0, dataErr("get employer id by credentials", err)
	}
	return id, nil
}

func (r *employerRepository) stringByCredentials(ctx context.Context, column, email, password string) (string, error) {
	var value string
	query := `SELECT ` + column + ` FROM employers WHERE email = $1 AND password = $2`

	err := r.db.QueryRowContext(ctx, query, email, password).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", dataErr("get employer "+column+" by credentials", err)
	}
	return value, nil
}

func (r *employerRepository) UpdatePassword(ctx context.Context, email, password string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE employers SET password = $1 WHERE email = $2`, password, email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to update employer password")
		return false, dataErr("update employer password", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, dataErr("update employer password", err)
	}
	return affected > 0, nil
}

func (r *employerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM employers WHERE email = $1)`

	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, dataErr("check employer email", err)
	}
	return exists, nil
}

func (r *employerRepository) Update(ctx context.Context, id int64, employer *domain.Employer) (*domain.Employer, error) {
	query := `
        UPDATE employers
        SET company_name = $1,
            website_url = $2,
            full_name = $3,
            email = $4,
            mobile_number = $5,
            profile_photo = $6,
            designation = $7,
            password = $8
        WHERE id = $9`

	result, err := r.db.ExecContext(ctx, query,
		employer.CompanyName,
		employer.WebsiteURL,
		employer.FullName,
		employer.Email,
		employer.MobileNumber,
		employer.ProfilePhoto,
		employer.Designation,
		employer.Password,
		id,
	)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update employer")
		return nil, dataErr("update employer", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, dataErr("update employer", err)
	}
	if affected == 0 {
		return nil, dataErr("update employer", domain.ErrNotFound)
	}

	employer.ID = id
	return employer, nil
}
