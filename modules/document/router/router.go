package router

import (
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/modules/document/controller"
)

// DocumentRouter handles document routes
type DocumentRouter struct {
	DocumentController *controller.DocumentController
}

func NewDocumentRouter(documentController *controller.DocumentController) *DocumentRouter {
	return &DocumentRouter{
		DocumentController: documentController,
	}
}

// Setup registers document routes
func (r *DocumentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	privateRoutes.POST("/projects/:id/documents", r.DocumentController.Upload)
	privateRoutes.GET("/projects/:id/documents", r.DocumentController.List)

	docRoutes := privateRoutes.Group("/documents")
	docRoutes.GET("/:id/url", r.DocumentController.GetURL)
	docRoutes.POST("/:id/sign", r.DocumentController.Sign)
	docRoutes.POST("/:id/decline", r.DocumentController.Decline)
	docRoutes.POST("/:id/notes", r.DocumentController.CreateNote)
	docRoutes.GET("/:id/notes", r.DocumentController.GetNotes)
}
