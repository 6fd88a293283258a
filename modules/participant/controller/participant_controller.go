package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/controller"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/utils"
	"github.com/soheiltpr/calfind/modules/participant/dto"
	"github.com/soheiltpr/calfind/modules/participant/service"
)

// ParticipantController handles participant HTTP requests
type ParticipantController struct {
	controller.BaseController
	ParticipantService service.ParticipantServiceInterface
}

func NewParticipantController(svc service.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		BaseController: controller.NewBaseController(),
		ParticipantService: svc,
	}
}

// Invite handles POST /private/projects/:id/participants
// @Summary Invite participants
// @Description Pre-create named participants for a project
// @Tags Participant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.InviteParticipantsRequest true "Participant names"
// @Success 200 {array} dto.ParticipantResponse
// @Router /private/projects/{id}/participants [post]
func (c *ParticipantController) Invite(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims.Role != constants.RoleOrganizer {
		return c.Unauthorized(errors.ErrUnauthorized, "Organizer token required")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	var req dto.InviteParticipantsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if len(req.Names) == 0 {
		return c.BadRequest(errors.ErrInvalidInput, "At least one name is required")
	}

	result, appErr := c.ParticipantService.Invite(ctx.Request().Context(), projectID, claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Participants invited successfully")
}

// ListParticipants handles GET /private/projects/:id/participants
// @Summary List participants
// @Tags Participant
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} dto.ParticipantResponse
// @Router /private/projects/{id}/participants [get]
func (c *ParticipantController) ListParticipants(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	caller := service.Caller{
		ID:        claims.UserID,
		Role:      claims.Role,
		ProjectID: claims.ProjectID,
	}
	result, appErr := c.ParticipantService.ListByProject(ctx.Request().Context(), projectID, caller)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// PublicProject handles GET /public/projects/:slug
// @Summary Public project view
// @Description Share-link view: the window and participant names, no slots
// @Tags Participant
// @Produce json
// @Param slug path string true "Share slug"
// @Success 200 {object} dto.PublicProjectResponse
// @Router /public/projects/{slug} [get]
func (c *ParticipantController) PublicProject(ctx echo.Context) error {
	result, appErr := c.ParticipantService.GetPublicProject(ctx.Request().Context(), ctx.Param("slug"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Join handles POST /public/projects/:slug/join
// @Summary Join a project
// @Description Authenticate by name+password; unknown names are created
// @Tags Participant
// @Accept json
// @Produce json
// @Param slug path string true "Share slug"
// @Param request body dto.JoinRequest true "Name and password"
// @Success 200 {object} dto.JoinResponse
// @Router /public/projects/{slug}/join [post]
func (c *ParticipantController) Join(ctx echo.Context) error {
	var req dto.JoinRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ParticipantService.Join(ctx.Request().Context(), ctx.Param("slug"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Joined successfully")
}
