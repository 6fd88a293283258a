package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/auth/controller"
	"github.com/soheiltpr/calfind/modules/auth/repository"
	"github.com/soheiltpr/calfind/modules/auth/router"
	"github.com/soheiltpr/calfind/modules/auth/service"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, c cache.ICache) {
	repo := repository.NewOrganizerRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
}
