package project

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/project/controller"
	"github.com/soheiltpr/calfind/modules/project/repository"
	"github.com/soheiltpr/calfind/modules/project/router"
	"github.com/soheiltpr/calfind/modules/project/service"
)

// Init initializes the project module and registers routes. The repository
// is returned because other modules resolve projects through it.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *repository.ProjectRepository {
	repo := repository.NewProjectRepository(db)
	svc := service.NewProjectService(repo)
	ctrl := controller.NewProjectController(svc)
	rtr := router.NewProjectRouter(ctrl)

	rtr.Setup(e, mw)

	return repo
}
