package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "resumedeck-backend/internal/auth"
	"resumedeck-backend/internal/letters"
	"resumedeck-backend/internal/links"
	"resumedeck-backend/internal/resumes"
	"resumedeck-backend/internal/shared/config"
	"resumedeck-backend/internal/shared/server/middleware"
	"resumedeck-backend/internal/shared/server/respond"
	"resumedeck-backend/internal/users"
	"resumedeck-backend/internal/versions"
)

// RouterDeps carries the handlers the router wires up. Construction of
// services and repositories happens in bootstrap; the router only attaches
// middleware and routes.
type RouterDeps struct {
	Config         config.Config
	GoogleAuth     *googleauth.GoogleService
	UserHandler    *users.Handler
	ResumeHandler  *resumes.Handler
	VersionHandler *versions.Handler
	LetterHandler  *letters.Handler
	LinkHandler    *links.Handler
	PublicHandler  *links.PublicHandler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	// Public resume pages: no auth required, but a logged-in owner is
	// recognized when a token is present.
	public := r.Group("/")
	public.Use(middleware.OptionalAuth())
	if deps.PublicHandler != nil {
		deps.PublicHandler.RegisterRoutes(public)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.Auth())
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.VersionHandler != nil {
		deps.VersionHandler.RegisterRoutes(api)
	}
	if deps.LetterHandler != nil {
		deps.LetterHandler.RegisterRoutes(api)
	}
	if deps.LinkHandler != nil {
		deps.LinkHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
