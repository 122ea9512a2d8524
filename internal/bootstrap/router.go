package bootstrap

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpapi "github.com/schoolforge/sitebuilder-backend/internal/api/http"
	"github.com/schoolforge/sitebuilder-backend/internal/api/http/middleware"
	authhttp "github.com/schoolforge/sitebuilder-backend/internal/auth/http"
	authmw "github.com/schoolforge/sitebuilder-backend/internal/auth/middleware"
	componenthttp "github.com/schoolforge/sitebuilder-backend/internal/components/http"
	confighttp "github.com/schoolforge/sitebuilder-backend/internal/configurations/http"
	projecthttp "github.com/schoolforge/sitebuilder-backend/internal/projects/http"
)

// AuthService is everything the router needs from the auth service.
type AuthService interface {
	authhttp.Service
	authmw.Verifier
}

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Log         zerolog.Logger

	// TrustedProxies are the peers allowed to set X-Forwarded-For. Empty
	// trusts none, so ClientIP is always the socket address.
	TrustedProxies []string
	// MaxBodyBytes caps request bodies. Zero or less disables the cap.
	MaxBodyBytes int64

	DB    *sql.DB
	Redis *redis.Client

	Auth           AuthService
	Projects       projecthttp.Service
	Configurations confighttp.Service
	Components     componenthttp.Service

	// AuthLimiter throttles signup and login per client IP. Nil disables it.
	AuthLimiter *middleware.IPRateLimiter
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		dep.Log.Warn().Err(err).Msg("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	if len(dep.CORSOrigins) > 0 {
		r.Use(middleware.CORS(dep.CORSOrigins))
	}
	r.Use(middleware.BodyLimit(dep.MaxBodyBytes))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	requireAuth := authmw.BearerAuthMiddleware(dep.Auth)

	authHandler := authhttp.New(dep.Auth)
	authGroup := r.Group("/auth")
	public := authGroup.Group("")
	if dep.AuthLimiter != nil {
		public.Use(dep.AuthLimiter.Middleware())
	}
	authHandler.Register(public)
	authHandler.RegisterProtected(authGroup.Group("", requireAuth))

	projectsGroup := r.Group("/projects", requireAuth)
	projecthttp.New(dep.Projects).Register(projectsGroup)
	confighttp.New(dep.Configurations).Register(projectsGroup.Group("/:id"))

	componenthttp.New(dep.Components).Register(r.Group("/components"))

	return r
}
