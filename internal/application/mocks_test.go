package application

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/medtrack/patient-service/internal/domain/entity"
	"github.com/medtrack/patient-service/internal/domain/repository"
)

var _ repository.PatientRepository = (*MockPatientRepository)(nil)

// MockPatientRepository is a function-field mock for repository.PatientRepository.
type MockPatientRepository struct {
	ListFunc                  func(ctx context.Context) ([]*entity.Patient, error)
	GetByIDFunc               func(ctx context.Context, id string) (*entity.Patient, error)
	CreateFunc                func(ctx context.Context, p *entity.Patient) error
	UpdateFunc                func(ctx context.Context, p *entity.Patient) error
	DeleteFunc                func(ctx context.Context, id string) error
	ExistsByEmailFunc         func(ctx context.Context, email string) (bool, error)
	ExistsByEmailExceptIDFunc func(ctx context.Context, email, id string) (bool, error)

	CreateCallCount int32
	DeleteCallCount int32
}

func (m *MockPatientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id string) (*entity.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) Create(ctx context.Context, p *entity.Patient) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockPatientRepository) Update(ctx context.Context, p *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockPatientRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPatientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockPatientRepository) ExistsByEmailExceptID(ctx context.Context, email, id string) (bool, error) {
	if m.ExistsByEmailExceptIDFunc != nil {
		return m.ExistsByEmailExceptIDFunc(ctx, email, id)
	}
	return false, nil
}

var _ BillingClient = (*MockBillingClient)(nil)

// MockBillingClient is a function-field mock for the billing collaborator.
type MockBillingClient struct {
	CreateBillingAccountFunc func(ctx context.Context, patientID, name, email string) error
	CallCount                int32
}

func (m *MockBillingClient) CreateBillingAccount(ctx context.Context, patientID, name, email string) error {
	atomic.AddInt32(&m.CallCount, 1)
	if m.CreateBillingAccountFunc != nil {
		return m.CreateBillingAccountFunc(ctx, patientID, name, email)
	}
	return nil
}

var _ EventPublisher = (*MockEventPublisher)(nil)

// MockEventPublisher captures published jobs instead of touching RabbitMQ.
type MockEventPublisher struct {
	PublishJSONFunc func(ctx context.Context, body any) error
	Published       []any
}

func (m *MockEventPublisher) PublishJSON(ctx context.Context, body any) error {
	m.Published = append(m.Published, body)
	if m.PublishJSONFunc != nil {
		return m.PublishJSONFunc(ctx, body)
	}
	return nil
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

// MockUserRepository is a function-field mock for repository.UserRepository.
type MockUserRepository struct {
	CreateFunc     func(ctx context.Context, u *entity.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*entity.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.New("GetByEmailFunc not implemented in mock")
}
