package controller

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/controller"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/utils"
	"github.com/soheiltpr/calfind/modules/availability/dto"
	"github.com/soheiltpr/calfind/modules/availability/service"
)

// AvailabilityController handles slot and timeline HTTP requests
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

func (c *AvailabilityController) callerFromContext(ctx echo.Context) (service.Caller, bool) {
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

// GetSlots handles GET /private/projects/:id/slots
// @Summary List raw slots
// @Description All raw availability slots grouped per participant
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} dto.ParticipantSlotsResponse
// @Router /private/projects/{id}/slots [get]
func (c *AvailabilityController) GetSlots(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	result, appErr := c.AvailabilityService.GetSlots(ctx.Request().Context(), projectID, caller)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ReplaceSlots handles PUT /private/projects/:id/slots
// @Summary Replace my slots
// @Description Replace the calling participant's entire slot set
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.ReplaceSlotsRequest true "New slot set"
// @Success 200 {array} entity.Slot
// @Router /private/projects/{id}/slots [put]
func (c *AvailabilityController) ReplaceSlots(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	var req dto.ReplaceSlotsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AvailabilityService.ReplaceSlots(ctx.Request().Context(), projectID, caller, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Slots saved successfully")
}

// GetTimeline handles GET /private/projects/:id/timeline
// @Summary Aggregated timeline
// @Description Per-date disjoint segments with the participants available in each
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.TimelineResponse
// @Router /private/projects/{id}/timeline [get]
func (c *AvailabilityController) GetTimeline(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	result, appErr := c.AvailabilityService.GetTimeline(ctx.Request().Context(), projectID, caller)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetTimelineICS handles GET /private/projects/:id/timeline.ics
// @Summary Timeline as iCalendar
// @Tags Availability
// @Security BearerAuth
// @Produce text/calendar
// @Param id path string true "Project ID"
// @Success 200 {string} string
// @Router /private/projects/{id}/timeline.ics [get]
func (c *AvailabilityController) GetTimelineICS(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	ics, appErr := c.AvailabilityService.GetTimelineICS(ctx.Request().Context(), projectID, caller)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="timeline.ics"`)
	return ctx.Blob(http.StatusOK, "text/calendar", []byte(ics))
}

// GetAggregate handles GET /private/projects/:id/aggregate
// @Summary Deduplicated slot buckets
// @Description One entry per distinct (date, start, end) triple with its participants
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.AggregateResponse
// @Router /private/projects/{id}/aggregate [get]
func (c *AvailabilityController) GetAggregate(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	result, appErr := c.AvailabilityService.GetAggregate(ctx.Request().Context(), projectID, caller)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
