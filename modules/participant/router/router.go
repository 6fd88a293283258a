package router

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/participant/controller"
)

// ParticipantRouter handles participant routes
type ParticipantRouter struct {
	ParticipantController *controller.ParticipantController
}

func NewParticipantRouter(participantController *controller.ParticipantController) *ParticipantRouter {
	return &ParticipantRouter{
		ParticipantController: participantController,
	}
}

// Setup registers participant routes
func (r *ParticipantRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public")
	publicRoutes.GET("/projects/:slug", r.ParticipantController.PublicProject)
	publicRoutes.POST("/projects/:slug/join", r.ParticipantController.Join)

	privateRoutes := v1.Group("/private")
	projectRoutes := privateRoutes.Group("/projects", mw.AuthMiddleware())
	projectRoutes.POST("/:id/participants", r.ParticipantController.Invite)
	projectRoutes.GET("/:id/participants", r.ParticipantController.ListParticipants)
}
