package repository

import (
	"context"

	"github.com/medtrack/patient-service/internal/domain/entity"
)

// PatientRepository defines the interface for patient-related database operations.
// Delete is a silent no-op when the id is absent; all other absence cases
// surface ErrNotFound.
type PatientRepository interface {
	List(ctx context.Context) ([]*entity.Patient, error)
	GetByID(ctx context.Context, id string) (*entity.Patient, error)
	Create(ctx context.Context, p *entity.Patient) error
	Update(ctx context.Context, p *entity.Patient) error
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailExceptID(ctx context.Context, email, id string) (bool, error)
}
