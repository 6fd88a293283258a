package availability

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/availability/controller"
	"github.com/soheiltpr/calfind/modules/availability/repository"
	"github.com/soheiltpr/calfind/modules/availability/router"
	"github.com/soheiltpr/calfind/modules/availability/service"
	participantrepo "github.com/soheiltpr/calfind/modules/participant/repository"
	projectrepo "github.com/soheiltpr/calfind/modules/project/repository"
)

// Init initializes the availability module and registers routes
func Init(
	e *echo.Echo,
	db database.Database,
	mw *middleware.Middleware,
	projects *projectrepo.ProjectRepository,
	participants *participantrepo.ParticipantRepository,
	c cache.ICache,
) {
	repo := repository.NewSlotRepository(db)
	svc := service.NewAvailabilityService(repo, projects, participants, c)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
}
