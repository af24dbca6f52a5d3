package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medtrack/patient-service/internal/domain/entity"
	"github.com/medtrack/patient-service/internal/domain/repository"
)

const uniqueViolation = "23505"

type PatientRepository struct {
	pool *pgxpool.Pool
}

func NewPatientRepository(pool *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{pool: pool}
}

func (r *PatientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, address, email, date_of_birth, registered_date, photo_url, created_at, updated_at
		FROM patients
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Patient
	for rows.Next() {
		p := &entity.Patient{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.Email, &p.DateOfBirth,
			&p.RegisteredDate, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*entity.Patient, error) {
	p := &entity.Patient{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, address, email, date_of_birth, registered_date, photo_url, created_at, updated_at
		FROM patients
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Email, &p.DateOfBirth,
		&p.RegisteredDate, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PatientRepository) Create(ctx context.Context, p *entity.Patient) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO patients (name, address, email, date_of_birth, registered_date, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Address, p.Email, p.DateOfBirth, p.RegisteredDate, p.PhotoURL)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *PatientRepository) Update(ctx context.Context, p *entity.Patient) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE patients
		SET name = $1, address = $2, email = $3, date_of_birth = $4, photo_url = $5, updated_at = $6
		WHERE id = $7
	`, p.Name, p.Address, p.Email, p.DateOfBirth, p.PhotoURL, p.UpdatedAt, p.ID)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete is a no-op when the id is absent.
func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	return err
}

func (r *PatientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM patients WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *PatientRepository) ExistsByEmailExceptID(ctx context.Context, email, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM patients WHERE email = $1 AND id <> $2)
	`, email, id).Scan(&exists)
	return exists, err
}

// mapUniqueViolation converts a Postgres unique-constraint error into
// repository.ErrDuplicateEmail so concurrent creates racing past the
// application-level check still surface as a conflict.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicateEmail
	}
	return err
}

var _ repository.PatientRepository = (*PatientRepository)(nil)
