package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medtrack/patient-service/internal/domain/entity"
)

func TestToPatientEntity(t *testing.T) {
	req := PatientRequest{
		Name:           "Ann Lee",
		Address:        "12 Elm St",
		Email:          "ann@example.com",
		DateOfBirth:    "1990-04-15",
		RegisteredDate: "2026-01-10",
	}
	p, err := ToPatientEntity(req)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC), p.DateOfBirth)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), p.RegisteredDate)
	assert.Empty(t, p.ID, "identifier is assigned by the store")
}

func TestToPatientEntity_BadDateReportsField(t *testing.T) {
	req := PatientRequest{
		Name:           "Ann Lee",
		Email:          "ann@example.com",
		DateOfBirth:    "1990-04-15",
		RegisteredDate: "not-a-date",
	}
	_, err := ToPatientEntity(req)
	var inv *InvalidDateError
	assert.ErrorAs(t, err, &inv)
	assert.Equal(t, "registeredDate", inv.Field)
	assert.Equal(t, "not-a-date", inv.Value)
}

func TestToPatientEntity_FutureBirthDateRejected(t *testing.T) {
	req := PatientRequest{
		Name:           "Ann Lee",
		Email:          "ann@example.com",
		DateOfBirth:    time.Now().AddDate(1, 0, 0).Format(DateLayout),
		RegisteredDate: "2026-01-10",
	}
	_, err := ToPatientEntity(req)
	var fut *FutureDateError
	assert.ErrorAs(t, err, &fut)
	assert.Equal(t, "dateOfBirth", fut.Field)
}

func TestParsePastDate_TodayAccepted(t *testing.T) {
	today := time.Now().Format(DateLayout)
	_, err := ParsePastDate("dateOfBirth", today)
	assert.NoError(t, err)
}

func TestToPatientResponse(t *testing.T) {
	p := &entity.Patient{
		ID:             "9f3c2e74-1a64-4c36-9a83-1a7a26c5d101",
		Name:           "Ann Lee",
		Address:        "12 Elm St",
		Email:          "ann@example.com",
		DateOfBirth:    time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC),
		RegisteredDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	res := ToPatientResponse(p)
	assert.Equal(t, p.ID, res.ID)
	assert.Equal(t, "1990-04-15", res.DateOfBirth)
	assert.Empty(t, res.PhotoURL)
}

func TestValidateForCreate_RequiresRegisteredDate(t *testing.T) {
	req := PatientRequest{Name: "Ann", Email: "ann@example.com", DateOfBirth: "1990-04-15"}
	details := req.ValidateForCreate()
	assert.Equal(t, map[string]string{"registeredDate": "is required"}, details)

	req.RegisteredDate = "2026-01-10"
	assert.Nil(t, req.ValidateForCreate())
}

func TestParseDate_RejectsDateTime(t *testing.T) {
	_, err := ParseDate("dateOfBirth", "1990-04-15T10:00:00Z")
	var inv *InvalidDateError
	assert.ErrorAs(t, err, &inv)
}
