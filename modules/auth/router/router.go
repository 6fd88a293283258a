package router

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/auth/controller"
)

// AuthRouter handles organizer auth routes
type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		AuthController: authController,
	}
}

// Setup registers auth routes
func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.POST("/organizers/register", r.AuthController.Register)
	v1.POST("/organizers/login", r.AuthController.Login)

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.POST("/organizers/logout", r.AuthController.Logout)
}
