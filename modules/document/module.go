package document

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/core/storage"
	"github.com/soheiltpr/calfind/modules/document/controller"
	"github.com/soheiltpr/calfind/modules/document/repository"
	"github.com/soheiltpr/calfind/modules/document/router"
	"github.com/soheiltpr/calfind/modules/document/service"
	notifservice "github.com/soheiltpr/calfind/modules/notification/service"
	participantrepo "github.com/soheiltpr/calfind/modules/participant/repository"
	projectrepo "github.com/soheiltpr/calfind/modules/project/repository"
)

// Init initializes the document module and registers routes. The returned
// service runs the scheduled purge of declined documents.
func Init(
	e *echo.Echo,
	db database.Database,
	mw *middleware.Middleware,
	projects *projectrepo.ProjectRepository,
	participants *participantrepo.ParticipantRepository,
	store storage.IStorage,
	c cache.ICache,
	notifications *notifservice.NotificationService,
	enqueuer *notifservice.TaskEnqueuer,
) service.DocumentServiceInterface {
	repo := repository.NewDocumentRepository(db)
	svc := service.NewDocumentService(repo, projects, participants, store, c, notifications, enqueuer)
	ctrl := controller.NewDocumentController(svc)
	rtr := router.NewDocumentRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
