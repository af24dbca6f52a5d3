package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/medtrack/patient-service/internal/interface/http"
	"github.com/medtrack/patient-service/internal/interface/middleware"
	"github.com/medtrack/patient-service/pkg/helpers"
)

// AuthModule wires login/refresh/logout routes.
// Public: POST /api/auth/login, POST /api/auth/refresh
// Protected: POST /api/auth/logout
type AuthModule struct {
	Handler *handlers.AuthHandler
	Redis   *redis.Client
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIP(), nil)     // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIP(), nil)   // 60 req/min per IP

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Redis, m.JWT))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
	}
}
