package controller

import (
	"bump-planner/core/controller"
	"bump-planner/core/errors"
	"bump-planner/modules/sync/service"

	"github.com/labstack/echo/v4"
)

type SyncController struct {
	service service.SyncServiceInterface
	controller.BaseController
}

func NewSyncController(service service.SyncServiceInterface) *SyncController {
	return &SyncController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// RunSync re-runs the idempotent source import pass
// @Summary Re-run source sync
// @Tags Sync
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SyncReport
// @Router /sync/run [post]
func (c *SyncController) RunSync(ctx echo.Context) error {
	report := c.service.SyncSources(ctx.Request().Context())
	return c.SuccessResponse(ctx, report, "Sync completed")
}

// RunReminders generates today's time-anchored reminder events
// @Summary Generate daily reminders
// @Tags Sync
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ReminderReport
// @Router /sync/reminders [post]
func (c *SyncController) RunReminders(ctx echo.Context) error {
	report, appErr := c.service.GenerateDailyReminders(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, report, "Reminders generated")
}

// GetCurrentWeek returns the gestational week derived from the pregnancy anchor
// @Summary Current pregnancy week
// @Tags Sync
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Router /sync/week [get]
func (c *SyncController) GetCurrentWeek(ctx echo.Context) error {
	week := c.service.CurrentWeek()
	if week == 0 {
		return c.NotFound(errors.ErrNotFound, "Pregnancy start date not configured")
	}
	return c.SuccessResponse(ctx, map[string]int{"week": week}, "Current week retrieved")
}
