package rest

import (
	"net/http"

	"github.com/dfryer1193/gallery/api"
	"github.com/dfryer1193/gallery/internal/middleware"
	"github.com/gin-gonic/gin"
)

const serviceName = "gallery"

// NewRouter builds the gin engine with the gallery routes and middleware.
func NewRouter(images *ImageHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	router.Use(middleware.CORS())

	NewApi(router, images)
	return router
}

func NewApi(router *gin.Engine, images *ImageHandler) {
	galleryApi := router.Group("api")
	{
		galleryApi.GET("/images", images.ListImages)
		galleryApi.GET("/image/:size/:filename", images.GetImage)
		galleryApi.GET("/variants", images.ListVariants)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Service: serviceName})
	})
}
