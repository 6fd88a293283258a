package notification

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/notification/controller"
	"github.com/soheiltpr/calfind/modules/notification/repository"
	"github.com/soheiltpr/calfind/modules/notification/router"
	"github.com/soheiltpr/calfind/modules/notification/service"
	projectrepo "github.com/soheiltpr/calfind/modules/project/repository"
)

// Init initializes the notification module and registers routes. The
// returned service is shared with modules that emit notifications.
func Init(
	e *echo.Echo,
	db database.Database,
	mw *middleware.Middleware,
	projects *projectrepo.ProjectRepository,
	c cache.ICache,
) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo, projects, c)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
