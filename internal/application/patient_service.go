package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/medtrack/patient-service/internal/domain/entity"
	repo "github.com/medtrack/patient-service/internal/domain/repository"
	"github.com/medtrack/patient-service/pkg/helpers"
	"github.com/medtrack/patient-service/pkg/mailer"
)

// BillingClient notifies the billing collaborator when a patient is created.
// The call blocks the create path; a failure is terminal for the create call.
type BillingClient interface {
	CreateBillingAccount(ctx context.Context, patientID, name, email string) error
}

// EventPublisher enqueues JSON jobs onto the message queue. *helpers.RabbitPublisher
// satisfies it.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type PatientService struct {
	Repo            repo.PatientRepository
	Billing         BillingClient
	Events          EventPublisher
	Logger          *logrus.Logger
	GCS             *storage.Client
	GCSBucket       string
	ES              *elasticsearch.Client
	ESPatientsIndex string
	MailEnabled     bool
}

func NewPatientService(r repo.PatientRepository, billing BillingClient, events EventPublisher, logger *logrus.Logger, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esPatientsIndex string, mailEnabled bool) *PatientService {
	return &PatientService{
		Repo:            r,
		Billing:         billing,
		Events:          events,
		Logger:          logger,
		GCS:             gcs,
		GCSBucket:       gcsBucket,
		ES:              es,
		ESPatientsIndex: esPatientsIndex,
		MailEnabled:     mailEnabled,
	}
}

// List returns all patients. No ordering guarantee.
func (s *PatientService) List(ctx context.Context) ([]PatientResponse, error) {
	patients, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, ToPatientResponse(p))
	}
	return out, nil
}

// Create validates email uniqueness, persists the patient and notifies billing.
// Billing failure leaves the record persisted and is returned as *BillingError.
func (s *PatientService) Create(ctx context.Context, req PatientRequest) (PatientResponse, error) {
	exists, err := s.Repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return PatientResponse{}, err
	}
	if exists {
		return PatientResponse{}, &DuplicateEmailError{Email: req.Email}
	}

	p, err := ToPatientEntity(req)
	if err != nil {
		return PatientResponse{}, err
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return PatientResponse{}, &DuplicateEmailError{Email: req.Email}
		}
		return PatientResponse{}, err
	}

	if err := s.Billing.CreateBillingAccount(ctx, p.ID, p.Name, p.Email); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("patient_id", p.ID).Error("billing account creation failed")
		}
		return PatientResponse{}, &BillingError{PatientID: p.ID, Err: err}
	}

	s.enqueueWelcomeEmail(ctx, p)
	_ = s.indexPatient(ctx, p)

	return ToPatientResponse(p), nil
}

// Update overwrites the mutable fields of an existing patient. RegisteredDate
// is never touched.
func (s *PatientService) Update(ctx context.Context, id string, req PatientRequest) (PatientResponse, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return PatientResponse{}, ErrPatientNotFound
		}
		return PatientResponse{}, err
	}

	taken, err := s.Repo.ExistsByEmailExceptID(ctx, req.Email, id)
	if err != nil {
		return PatientResponse{}, err
	}
	if taken {
		return PatientResponse{}, &DuplicateEmailError{Email: req.Email}
	}

	dob, err := ParsePastDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return PatientResponse{}, err
	}

	p.Name = req.Name
	p.Address = req.Address
	p.Email = req.Email
	p.DateOfBirth = dob

	if err := s.Repo.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			return PatientResponse{}, &DuplicateEmailError{Email: req.Email}
		case errors.Is(err, repo.ErrNotFound):
			return PatientResponse{}, ErrPatientNotFound
		}
		return PatientResponse{}, err
	}

	_ = s.indexPatient(ctx, p)
	return ToPatientResponse(p), nil
}

// Delete removes a patient. Deleting an absent id is a silent no-op.
func (s *PatientService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.deletePatientDoc(ctx, id)
	return nil
}

// UploadPhoto stores a patient photo in GCS and records its public URL.
func (s *PatientService) UploadPhoto(ctx context.Context, id string, r io.Reader, filename, contentType string) (string, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrPatientNotFound
		}
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("photos", id, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}

	p.PhotoURL = url
	if err := s.Repo.Update(ctx, p); err != nil {
		return "", err
	}
	_ = s.indexPatient(ctx, p)
	return url, nil
}

// Search performs a multi_match query over patient name and email.
func (s *PatientService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPatientsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESPatientsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *PatientService) enqueueWelcomeEmail(ctx context.Context, p *entity.Patient) {
	if s.Events == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       p.Email,
		Template: mailer.PatientWelcome,
		Data: map[string]any{
			"Name":           p.Name,
			"RegisteredDate": p.RegisteredDate.Format(DateLayout),
		},
	}
	if err := s.Events.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("patient_id", p.ID).Warn("failed to enqueue welcome email")
	}
}

func (s *PatientService) indexPatient(ctx context.Context, p *entity.Patient) error {
	if s.ES == nil || s.ESPatientsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":              p.ID,
		"name":            p.Name,
		"email":           p.Email,
		"address":         p.Address,
		"date_of_birth":   p.DateOfBirth.Format(DateLayout),
		"registered_date": p.RegisteredDate.Format(DateLayout),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPatientsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("patient_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("patient_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *PatientService) deletePatientDoc(ctx context.Context, id string) {
	if s.ES == nil || s.ESPatientsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPatientsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("patient_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
