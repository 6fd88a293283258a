package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/controller"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/utils"
	"github.com/soheiltpr/calfind/modules/project/dto"
	"github.com/soheiltpr/calfind/modules/project/service"
)

// ProjectController handles project HTTP requests
type ProjectController struct {
	controller.BaseController
	ProjectService service.ProjectServiceInterface
}

func NewProjectController(svc service.ProjectServiceInterface) *ProjectController {
	return &ProjectController{
		BaseController: controller.NewBaseController(),
		ProjectService: svc,
	}
}

func organizerIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims.Role != constants.RoleOrganizer {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// Create handles POST /private/projects
// @Summary Create project
// @Description Create a new availability project with its allowed window
// @Tags Project
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project details"
// @Success 200 {object} dto.ProjectResponse
// @Router /private/projects [post]
func (c *ProjectController) Create(ctx echo.Context) error {
	organizerID, ok := organizerIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Organizer token required")
	}

	var req dto.CreateProjectRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.Title == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Title is required")
	}

	result, appErr := c.ProjectService.Create(ctx.Request().Context(), organizerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Project created successfully")
}

// Get handles GET /private/projects/:id
// @Summary Get project
// @Tags Project
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Router /private/projects/{id} [get]
func (c *ProjectController) Get(ctx echo.Context) error {
	organizerID, ok := organizerIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Organizer token required")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	result, appErr := c.ProjectService.GetByID(ctx.Request().Context(), projectID, organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// List handles GET /private/projects
// @Summary List my projects
// @Tags Project
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Router /private/projects [get]
func (c *ProjectController) List(ctx echo.Context) error {
	organizerID, ok := organizerIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Organizer token required")
	}

	result, appErr := c.ProjectService.GetMyProjects(ctx.Request().Context(), organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Update handles PUT /private/projects/:id
// @Summary Update project
// @Tags Project
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Router /private/projects/{id} [put]
func (c *ProjectController) Update(ctx echo.Context) error {
	organizerID, ok := organizerIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Organizer token required")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	var req dto.UpdateProjectRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ProjectService.Update(ctx.Request().Context(), projectID, organizerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Project updated successfully")
}

// Delete handles DELETE /private/projects/:id
// @Summary Delete project
// @Tags Project
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/projects/{id} [delete]
func (c *ProjectController) Delete(ctx echo.Context) error {
	organizerID, ok := organizerIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Organizer token required")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	if appErr := c.ProjectService.Delete(ctx.Request().Context(), projectID, organizerID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Project deleted successfully")
}
