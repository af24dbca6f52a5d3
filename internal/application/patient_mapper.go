package application

import (
	"time"

	"github.com/medtrack/patient-service/internal/domain/entity"
)

// DateLayout is the ISO-8601 calendar date layout used for all request and
// response date fields.
const DateLayout = "2006-01-02"

// PatientRequest is the untrusted inbound shape. Dates travel as ISO-8601
// strings. RegisteredDate is required on create only; the create handler
// enforces that explicitly via ValidateForCreate.
type PatientRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Address        string `json:"address"`
	Email          string `json:"email" binding:"required,email"`
	DateOfBirth    string `json:"dateOfBirth" binding:"required,isodate"`
	RegisteredDate string `json:"registeredDate" binding:"omitempty,isodate"`
}

// ValidateForCreate enumerates the constraints that apply only when creating a
// patient, on top of the field-level binding rules shared with update.
func (r PatientRequest) ValidateForCreate() map[string]string {
	if r.RegisteredDate == "" {
		return map[string]string{"registeredDate": "is required"}
	}
	return nil
}

// PatientResponse is the outbound shape: identifier and dates stringified,
// full read projection.
type PatientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

// ToPatientResponse maps a persisted patient to its wire shape. Total and pure.
func ToPatientResponse(p *entity.Patient) PatientResponse {
	return PatientResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth.Format(DateLayout),
		PhotoURL:    p.PhotoURL,
	}
}

// ToPatientEntity maps a request shape to a new entity. Fails with
// *InvalidDateError when a date field does not parse.
func ToPatientEntity(req PatientRequest) (*entity.Patient, error) {
	dob, err := ParsePastDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	reg, err := ParseDate("registeredDate", req.RegisteredDate)
	if err != nil {
		return nil, err
	}
	return &entity.Patient{
		Name:           req.Name,
		Address:        req.Address,
		Email:          req.Email,
		DateOfBirth:    dob,
		RegisteredDate: reg,
	}, nil
}

// ParseDate parses an ISO-8601 calendar date, reporting the offending field on
// failure.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &InvalidDateError{Field: field, Value: value, Err: err}
	}
	return t, nil
}

// ParsePastDate parses an ISO-8601 calendar date and additionally rejects dates
// after today. A date equal to today is accepted.
func ParsePastDate(field, value string) (time.Time, error) {
	t, err := ParseDate(field, value)
	if err != nil {
		return time.Time{}, err
	}
	if t.After(time.Now()) {
		return time.Time{}, &FutureDateError{Field: field, Value: value}
	}
	return t, nil
}
