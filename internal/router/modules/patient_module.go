package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/medtrack/patient-service/internal/interface/http"
	"github.com/medtrack/patient-service/internal/interface/middleware"
)

// PatientModule wires patient HTTP handlers into routes under /api/patients.
// Routes:
//   GET    /api/patients
//   POST   /api/patients
//   PUT    /api/patients/:id
//   DELETE /api/patients/:id
//   GET    /api/patients/search
//   PUT    /api/patients/:id/photo
type PatientModule struct {
	Handler *handlers.PatientHandler
	Redis   *redis.Client
}

func NewPatientModule(h *handlers.PatientHandler, rdb *redis.Client) *PatientModule {
	return &PatientModule{Handler: h, Redis: rdb}
}

func (m *PatientModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	writeLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	patients := rg.Group("/patients")
	{
		patients.GET("", readLimiter, m.Handler.List)
		patients.GET("/search", readLimiter, m.Handler.Search)
		patients.POST("", writeLimiter, m.Handler.Create)
		patients.PUT("/:id", writeLimiter, m.Handler.Update)
		patients.DELETE("/:id", writeLimiter, m.Handler.Delete)
		patients.PUT("/:id/photo", writeLimiter, m.Handler.UploadPhoto)
	}
}
