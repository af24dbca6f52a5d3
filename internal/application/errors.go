package application

import (
	"errors"
	"fmt"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// DuplicateEmailError signals that a create or update would leave two patients
// with the same email. Client-caused and non-retryable.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return "a patient with email " + e.Email + " already exists"
}

// InvalidDateError signals a request date field that is not a valid ISO-8601
// calendar date.
type InvalidDateError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("field %s: %q is not a valid date", e.Field, e.Value)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// FutureDateError signals a request date field that must lie in the past but
// does not.
type FutureDateError struct {
	Field string
	Value string
}

func (e *FutureDateError) Error() string {
	return fmt.Sprintf("field %s: %q must be in the past", e.Field, e.Value)
}

// BillingError signals that the billing collaborator rejected or failed the
// account-creation call. The patient record remains persisted; there is no
// compensating delete.
type BillingError struct {
	PatientID string
	Err       error
}

func (e *BillingError) Error() string {
	return "billing account creation failed for patient " + e.PatientID
}

func (e *BillingError) Unwrap() error { return e.Err }
