package controller

import (
	"strconv"
	"time"

	"bump-planner/core/controller"
	"bump-planner/core/errors"
	"bump-planner/modules/view/service"

	"github.com/labstack/echo/v4"
)

type ViewController struct {
	service service.ViewServiceInterface
	controller.BaseController
}

func NewViewController(service service.ViewServiceInterface) *ViewController {
	return &ViewController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetMonthView returns the month display grid
// @Summary Month view
// @Tags View
// @Security BearerAuth
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.MonthViewData
// @Router /views/month [get]
func (c *ViewController) GetMonthView(ctx echo.Context) error {
	year, err := strconv.Atoi(ctx.QueryParam("year"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid or missing year parameter")
	}
	month, err := strconv.Atoi(ctx.QueryParam("month"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid or missing month parameter")
	}

	view, appErr := c.service.MonthView(ctx.Request().Context(), year, time.Month(month))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, view, "Month view retrieved")
}

// GetWeekView returns the week containing the given date
// @Summary Week view
// @Tags View
// @Security BearerAuth
// @Produce json
// @Param date query string false "Any date within the week (YYYY-MM-DD, default today)"
// @Success 200 {object} dto.WeekViewData
// @Router /views/week [get]
func (c *ViewController) GetWeekView(ctx echo.Context) error {
	date := time.Now()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid date parameter")
		}
		date = parsed
	}

	view, appErr := c.service.WeekView(ctx.Request().Context(), date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, view, "Week view retrieved")
}

// GetAgendaView returns the upcoming events grouped by day
// @Summary Agenda view
// @Tags View
// @Security BearerAuth
// @Produce json
// @Param days query int false "Days ahead (default 7)"
// @Success 200 {object} dto.AgendaView
// @Router /views/agenda [get]
func (c *ViewController) GetAgendaView(ctx echo.Context) error {
	days := 0
	if raw := ctx.QueryParam("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid days parameter")
		}
		days = v
	}

	view, appErr := c.service.AgendaView(ctx.Request().Context(), days)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, view, "Agenda view retrieved")
}
