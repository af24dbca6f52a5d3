package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateBillingAccount_Success(t *testing.T) {
	var got createAccountRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/billing-accounts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", time.Second)
	err := c.CreateBillingAccount(context.Background(), "pid-1", "Ann Lee", "ann@example.com")
	assert.NoError(t, err)
	assert.Equal(t, createAccountRequest{PatientID: "pid-1", Name: "Ann Lee", Email: "ann@example.com"}, got)
}

func TestCreateBillingAccount_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "account limit reached", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	err := c.CreateBillingAccount(context.Background(), "pid-1", "Ann Lee", "ann@example.com")
	var se *StatusError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
	assert.Contains(t, se.Body, "account limit reached")
}

func TestCreateBillingAccount_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, "", 500*time.Millisecond)
	err := c.CreateBillingAccount(context.Background(), "pid-1", "Ann Lee", "ann@example.com")
	assert.Error(t, err)
}
