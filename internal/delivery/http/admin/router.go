package admin

import (
	"net/http"

	_ "contact-relay/docs" // registers the swagger spec
	"contact-relay/internal/delivery/http/middleware"
	"contact-relay/internal/delivery/http/response"
	"contact-relay/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the operations engine served on its own port, so the
// public listener keeps answering 404 for everything but /.
func NewRouter(healthUC usecase.HealthUsecase) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", healthUC.Check(c.Request.Context()))
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
