package participant

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/participant/controller"
	"github.com/soheiltpr/calfind/modules/participant/repository"
	"github.com/soheiltpr/calfind/modules/participant/router"
	"github.com/soheiltpr/calfind/modules/participant/service"
	projectrepo "github.com/soheiltpr/calfind/modules/project/repository"
)

// Init initializes the participant module and registers routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, projects *projectrepo.ProjectRepository) *repository.ParticipantRepository {
	repo := repository.NewParticipantRepository(db)
	svc := service.NewParticipantService(repo, projects)
	ctrl := controller.NewParticipantController(svc)
	rtr := router.NewParticipantRouter(ctrl)

	rtr.Setup(e, mw)

	return repo
}
