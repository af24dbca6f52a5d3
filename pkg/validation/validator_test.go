package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// gin configures the validator with the "binding" struct tag
type sample struct {
	Email string `json:"email" binding:"required,email"`
	Date  string `json:"date" binding:"required,isodate"`
}

func TestToDetails_UsesJSONFieldNames(t *testing.T) {
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)

	err := v.Struct(sample{Email: "nope", Date: "2026-13-99"})
	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.NotEmpty(t, details["date"])
}

func TestToDetails_ValidInput(t *testing.T) {
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)

	err := v.Struct(sample{Email: "ann@example.com", Date: "2026-01-10"})
	assert.NoError(t, err)
	assert.Nil(t, ToDetails(err))
}
