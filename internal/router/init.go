package router

import (
	"github.com/redis/go-redis/v9"

	handlers "github.com/medtrack/patient-service/internal/interface/http"
	"github.com/medtrack/patient-service/internal/router/modules"
	"github.com/medtrack/patient-service/pkg/helpers"
)

// Deps carries the explicitly constructed collaborators each module needs.
// All construction happens in cmd/main.go; nothing is resolved at runtime.
type Deps struct {
	Patient      *handlers.PatientHandler
	Auth         *handlers.AuthHandler
	Redis        *redis.Client
	JWT          *helpers.JWTManager
	DebugEnabled bool
}

// InitModules registers all application modules with the router registry.
func InitModules(r *Registry, deps Deps) {
	r.Add(modules.NewPatientModule(deps.Patient, deps.Redis))
	r.Add(modules.NewAuthModule(deps.Auth, deps.Redis, deps.JWT))
	if deps.DebugEnabled {
		r.Add(modules.NewDebugModule(deps.Redis))
	}
}
