package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/controller"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/utils"
	"github.com/soheiltpr/calfind/modules/notification/service"
)

const streamKeepalive = 25 * time.Second

// NotificationController handles notification and live-stream requests
type NotificationController struct {
	controller.BaseController
	NotificationService *service.NotificationService
}

func NewNotificationController(svc *service.NotificationService) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: svc,
	}
}

func (c *NotificationController) callerFromContext(ctx echo.Context) (service.Caller, bool) {
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

// List handles GET /private/notifications
// @Summary My notifications
// @Description Most recent notifications for the calling participant
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {array} entity.Notification
// @Router /private/notifications [get]
func (c *NotificationController) List(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}
	if caller.Role != constants.RoleParticipant {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrForbidden, "Only participants receive notifications", nil))
	}

	result, appErr := c.NotificationService.List(ctx.Request().Context(), caller.ID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// MarkRead handles POST /private/notifications/:id/read
// @Summary Mark a notification read
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} nil
// @Router /private/notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid notification ID")
	}

	if appErr := c.NotificationService.MarkRead(ctx.Request().Context(), id, caller.ID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Notification marked read")
}

// Stream handles GET /private/projects/:id/stream
// @Summary Project change stream
// @Description Server-sent events fired whenever slots or documents change
// @Tags Notification
// @Security BearerAuth
// @Produce text/event-stream
// @Param id path string true "Project ID"
// @Success 200 {string} string
// @Router /private/projects/{id}/stream [get]
func (c *NotificationController) Stream(ctx echo.Context) error {
	caller, ok := c.callerFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid project ID")
	}

	sub, appErr := c.NotificationService.Subscribe(ctx.Request().Context(), projectID, caller)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	defer sub.Close()

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	events := sub.Channel()
	keepalive := time.NewTicker(streamKeepalive)
	defer keepalive.Stop()

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case msg, open := <-events:
			if !open {
				return nil
			}
			fmt.Fprintf(resp, "data: %s\n\n", msg.Payload)
			resp.Flush()
		case <-keepalive.C:
			// Comment line keeps proxies from closing an idle stream.
			fmt.Fprint(resp, ": keepalive\n\n")
			resp.Flush()
		}
	}
}
