package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/medtrack/patient-service/internal/application"
	"github.com/medtrack/patient-service/pkg/response"
	"github.com/medtrack/patient-service/pkg/validation"
)

type PatientHandler struct {
	Svc    *application.PatientService
	Logger *logrus.Logger
}

func NewPatientHandler(svc *application.PatientService, logger *logrus.Logger) *PatientHandler {
	return &PatientHandler{Svc: svc, Logger: logger}
}

func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, patients, "patients", nil)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req application.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if details := req.ValidateForCreate(); details != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", details)
		return
	}
	res, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "patient created", nil)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	var req application.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "patient updated", nil)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PatientHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

func (h *PatientHandler) UploadPhoto(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "photo file is required", nil)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadPhoto(c.Request.Context(), id, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"photo_url": url}, "photo uploaded", nil)
}

func patientID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid patient id", map[string]string{"id": "must be a valid UUID"})
		return "", false
	}
	return id, true
}

// writeError is the single exhaustive mapping from service error kinds to
// HTTP statuses.
func (h *PatientHandler) writeError(c *gin.Context, err error) {
	var dup *application.DuplicateEmailError
	var inv *application.InvalidDateError
	var fut *application.FutureDateError
	var bill *application.BillingError

	switch {
	case errors.Is(err, application.ErrPatientNotFound):
		response.Error[any](c, http.StatusNotFound, "patient not found", nil)
	case errors.As(err, &dup):
		response.Error[any](c, http.StatusConflict, "email already exists", map[string]string{"email": dup.Email})
	case errors.As(err, &inv):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{inv.Field: "must be a valid ISO-8601 date"})
	case errors.As(err, &fut):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{fut.Field: "must be in the past"})
	case errors.As(err, &bill):
		response.Error[any](c, http.StatusBadGateway, "billing account creation failed", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("patient operation failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
