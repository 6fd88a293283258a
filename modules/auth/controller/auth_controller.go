package controller

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/controller"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/modules/auth/dto"
	"github.com/soheiltpr/calfind/modules/auth/service"
)

// AuthController handles organizer auth HTTP requests
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

// Register handles POST /organizers/register
// @Summary Register organizer
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Name and password"
// @Success 200 {object} dto.AuthResponse
// @Router /organizers/register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Organizer registered successfully")
}

// Login handles POST /organizers/login
// @Summary Login organizer
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Name and password"
// @Success 200 {object} dto.AuthResponse
// @Router /organizers/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Logged in successfully")
}

// Logout handles POST /private/organizers/logout
// @Summary Logout organizer
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} controller.SuccessResponse
// @Router /private/organizers/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	header := ctx.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return c.Unauthorized(errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
	}

	if appErr := c.AuthService.Logout(ctx.Request().Context(), parts[1]); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Logged out successfully")
}
