package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/controller"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/utils"
	"github.com/soheiltpr/calfind/modules/document/dto"
	"github.com/soheiltpr/calfind/modules/document/entity"
	"github.com/soheiltpr/calfind/modules/document/service"
)

// DocumentController handles document upload and signature HTTP requests
type DocumentController struct {
	controller.BaseController
	DocumentService service.DocumentServiceInterface
}

func NewDocumentController(svc service.DocumentServiceInterface) *DocumentController {
	return &DocumentController{
		BaseController:  controller.NewBaseController(),
		DocumentService: svc,
	}
}

func (c *DocumentController) callerFromContext(ctx echo.Context) (service.Caller, bool) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return service.Caller{}, false
	}
	return service.Caller{
		ID:        claims.UserID,
		Role:      claims.Role,
		ProjectID: claims.ProjectID,
	}, true
}

// Upload handles POST /private/projects/:id/documents
// @Summary Upload a document
// @Description Store a PDF or image and open its signature workflow
// @Tags Document
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID"
// @Param title formData string false "Document title"
// @Param file formData file true "PDF or image"
// @Success 200 {object} dto.DocumentResponse
// @Router /private/projects/{id}/documents [post]
func (c *DocumentController) Upload(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "File is required")
	}

	result, appErr := c.DocumentService.Upload(ctx.Request().Context(), projectID, caller, ctx.FormValue("title"), file)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Document uploaded successfully")
}

// List handles GET /private/projects/:id/documents
// @Summary List project documents
// @Tags Document
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} dto.DocumentResponse
// @Router /private/projects/{id}/documents [get]
func (c *DocumentController) List(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	result, appErr := c.DocumentService.List(ctx.Request().Context(), projectID, caller)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetURL handles GET /private/documents/:id/url
// @Summary Signed download URL
// @Description Presigned object-store URL, valid for a few minutes
// @Tags Document
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentURLResponse
// @Router /private/documents/{id}/url [get]
func (c *DocumentController) GetURL(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	documentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid document ID")
	}

	result, appErr := c.DocumentService.GetURL(ctx.Request().Context(), documentID, caller)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Sign handles POST /private/documents/:id/sign
// @Summary Sign a document
// @Tags Document
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Router /private/documents/{id}/sign [post]
func (c *DocumentController) Sign(ctx echo.Context) error {
	return c.decide(ctx, entity.SignatureActionSigned, "Document signed")
}

// Decline handles POST /private/documents/:id/decline
// @Summary Decline a document
// @Tags Document
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Router /private/documents/{id}/decline [post]
func (c *DocumentController) Decline(ctx echo.Context) error {
	return c.decide(ctx, entity.SignatureActionDeclined, "Document declined")
}

func (c *DocumentController) decide(ctx echo.Context, action entity.SignatureAction, message string) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	documentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid document ID")
	}

	result, appErr := c.DocumentService.Decide(ctx.Request().Context(), documentID, caller, action)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, message)
}

// CreateNote handles POST /private/documents/:id/notes
// @Summary Add a note
// @Description Append a note or a reply to the document's thread
// @Tags Document
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body dto.CreateNoteRequest true "Note"
// @Success 200 {array} dto.NoteResponse
// @Router /private/documents/{id}/notes [post]
func (c *DocumentController) CreateNote(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	documentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid document ID")
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.DocumentService.CreateNote(ctx.Request().Context(), documentID, caller, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Note added")
}

// GetNotes handles GET /private/documents/:id/notes
// @Summary Document note thread
// @Description Top-level notes with replies nested one level deep
// @Tags Document
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {array} dto.NoteResponse
// @Router /private/documents/{id}/notes [get]
func (c *DocumentController) GetNotes(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	documentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid document ID")
	}

	result, appErr := c.DocumentService.GetNotes(ctx.Request().Context(), documentID, caller)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
