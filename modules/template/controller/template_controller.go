package controller

import (
	"strconv"

	"bump-planner/core/controller"
	"bump-planner/core/errors"
	"bump-planner/core/middleware"
	"bump-planner/modules/template/dto"
	"bump-planner/modules/template/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TemplateController struct {
	service service.TemplateServiceInterface
	controller.BaseController
}

func NewTemplateController(service service.TemplateServiceInterface) *TemplateController {
	return &TemplateController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetTemplates lists the catalog, optionally filtered by pregnancy week
// @Summary List event templates
// @Tags Template
// @Security BearerAuth
// @Produce json
// @Param week query int false "Pregnancy week filter"
// @Success 200 {object} controller.SuccessResponse
// @Router /templates [get]
func (c *TemplateController) GetTemplates(ctx echo.Context) error {
	var week *int
	if raw := ctx.QueryParam("week"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid week parameter")
		}
		week = &v
	}

	result := c.service.GetTemplates(week)
	return c.SuccessResponse(ctx, result, "Templates retrieved")
}

// Instantiate creates a calendar event from a template
// @Summary Instantiate template
// @Tags Template
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.InstantiateRequest true "Template, date and overrides"
// @Success 201 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /templates/instantiate [post]
func (c *TemplateController) Instantiate(ctx echo.Context) error {
	userID, ok := ctx.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.InstantiateRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.service.Instantiate(ctx.Request().Context(), userID.String(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Event created from template")
}

// Register adds a custom template to the catalog
// @Summary Register custom template
// @Tags Template
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterTemplateRequest true "Template definition"
// @Success 201 {object} controller.SuccessResponse
// @Failure 400 {object} errors.AppError
// @Router /templates [post]
func (c *TemplateController) Register(ctx echo.Context) error {
	req := new(dto.RegisterTemplateRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.service.Register(req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Template registered")
}
