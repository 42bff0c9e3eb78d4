package v1

import (
	"contact-relay/internal/delivery/http/middleware"
	"contact-relay/internal/domain"
	"contact-relay/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC   domain.ContactUsecase
	CORSEnabled bool
}

// NewRouter builds the public engine. POST / is the only route; every other
// method on / is a 405 and every other path a 404, all with empty bodies.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.CORSEnabled {
		r.Use(middleware.CORSMiddleware())
	}
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("route not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		_ = c.Error(apperror.MethodNotAllowed("method not allowed"))
	})

	NewContactHandler(r, deps.ContactUC)

	return r
}
