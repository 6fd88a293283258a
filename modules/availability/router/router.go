package router

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/availability/controller"
)

// AvailabilityRouter handles slot and timeline routes
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

// Setup registers availability routes
func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	projectRoutes := privateRoutes.Group("/projects", mw.AuthMiddleware())

	projectRoutes.GET("/:id/slots", r.AvailabilityController.GetSlots)
	projectRoutes.PUT("/:id/slots", r.AvailabilityController.ReplaceSlots)
	projectRoutes.GET("/:id/timeline", r.AvailabilityController.GetTimeline)
	projectRoutes.GET("/:id/timeline.ics", r.AvailabilityController.GetTimelineICS)
	projectRoutes.GET("/:id/aggregate", r.AvailabilityController.GetAggregate)
}
