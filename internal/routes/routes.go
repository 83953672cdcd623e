package routes

import (
	"net/http"

	"aitech_backend/internal/handlers"
	"aitech_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты. Пути отдаются с корня,
// без версионного префикса - на них завязан существующий фронтенд.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	guard *middleware.Guard,
) {
	// Liveness
	ginRouter.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "AItech is Running")
	})

	root := ginRouter.Group("")
	{
		appHandlers.UserHandler.RegisterRoutes(root, guard)
		appHandlers.WorkInfoHandler.RegisterRoutes(root, guard)
		appHandlers.ContentHandler.RegisterRoutes(root)
		appHandlers.PaymentHandler.RegisterRoutes(root)
	}
}
