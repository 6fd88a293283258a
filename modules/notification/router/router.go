package router

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/notification/controller"
)

// NotificationRouter handles notification and stream routes
type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

func NewNotificationRouter(notificationController *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{
		NotificationController: notificationController,
	}
}

// Setup registers notification routes
func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	privateRoutes.GET("/notifications", r.NotificationController.List)
	privateRoutes.POST("/notifications/:id/read", r.NotificationController.MarkRead)
	privateRoutes.GET("/projects/:id/stream", r.NotificationController.Stream)
}
