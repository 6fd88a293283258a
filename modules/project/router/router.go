package router

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/project/controller"
)

// ProjectRouter handles project routes
type ProjectRouter struct {
	ProjectController *controller.ProjectController
}

func NewProjectRouter(projectController *controller.ProjectController) *ProjectRouter {
	return &ProjectRouter{
		ProjectController: projectController,
	}
}

// Setup registers project routes
func (r *ProjectRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	projectRoutes := privateRoutes.Group("/projects", mw.AuthMiddleware(), mw.RequireOrganizer())

	projectRoutes.POST("", r.ProjectController.Create)
	projectRoutes.GET("", r.ProjectController.List)
	projectRoutes.GET("/:id", r.ProjectController.Get)
	projectRoutes.PUT("/:id", r.ProjectController.Update)
	projectRoutes.DELETE("/:id", r.ProjectController.Delete)
}
