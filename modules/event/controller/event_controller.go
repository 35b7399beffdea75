package controller

import (
	"strconv"
	"strings"
	"time"

	"bump-planner/core/controller"
	"bump-planner/core/errors"
	"bump-planner/core/middleware"
	"bump-planner/core/params"
	"bump-planner/modules/event/dto"
	"bump-planner/modules/event/entity"
	"bump-planner/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	service service.EventServiceInterface
	controller.BaseController
}

func NewEventController(service service.EventServiceInterface) *EventController {
	return &EventController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// CreateEvent creates a user-authored calendar event
// @Summary Create calendar event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} controller.SuccessResponse
// @Failure 400 {object} errors.AppError
// @Router /events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.CreateEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.service.CreateEvent(ctx.Request().Context(), userID.String(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Event created")
}

// GetEvent returns a single event
// @Summary Get calendar event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	result, appErr := c.service.GetEvent(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event retrieved")
}

// GetEvents returns events intersecting the requested window
// @Summary List events in a date range
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param start query string true "Window start (RFC3339)"
// @Param end query string true "Window end (RFC3339)"
// @Param type query string false "Comma-separated type allow-list"
// @Param category query string false "Comma-separated category allow-list"
// @Param status query string false "Comma-separated status allow-list"
// @Success 200 {object} controller.SuccessResponse
// @Router /events [get]
func (c *EventController) GetEvents(ctx echo.Context) error {
	start, err := time.Parse(time.RFC3339, ctx.QueryParam("start"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid or missing start parameter")
	}
	end, err := time.Parse(time.RFC3339, ctx.QueryParam("end"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid or missing end parameter")
	}

	filter := filterFromQuery(ctx)
	result, appErr := c.service.GetEvents(ctx.Request().Context(), start, end, filter)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Events retrieved")
}

// UpdateEvent applies a partial update
// @Summary Update calendar event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	req := new(dto.UpdateEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.service.UpdateEvent(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event updated")
}

// DeleteEvent removes an event
// @Summary Delete calendar event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	if appErr := c.service.DeleteEvent(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Event deleted")
}

// SearchEvents free-text search over title, description and notes
// @Summary Search events
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param q query string true "Search text"
// @Param start query string false "Optional window start (RFC3339)"
// @Param end query string false "Optional window end (RFC3339)"
// @Success 200 {object} controller.SuccessResponse
// @Router /events/search [get]
func (c *EventController) SearchEvents(ctx echo.Context) error {
	var start, end *time.Time
	if raw := ctx.QueryParam("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid start parameter")
		}
		start = &t
	}
	if raw := ctx.QueryParam("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid end parameter")
		}
		end = &t
	}

	result, appErr := c.service.SearchEvents(ctx.Request().Context(), ctx.QueryParam("q"), start, end)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	qp := params.NewQueryParams(ctx)
	if len(result) > qp.Limit {
		result = result[:qp.Limit]
	}
	return c.SuccessResponse(ctx, result, "Search results")
}

// GetUpcomingEvents returns the agenda feed
// @Summary Upcoming events
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param days query int false "Days ahead (default 7)"
// @Param limit query int false "Max events (default 10)"
// @Success 200 {object} controller.SuccessResponse
// @Router /events/upcoming [get]
func (c *EventController) GetUpcomingEvents(ctx echo.Context) error {
	days := intQueryParam(ctx, "days")
	limit := intQueryParam(ctx, "limit")

	events, appErr := c.service.GetUpcomingEvents(ctx.Request().Context(), days, limit)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.ToEventResponses(events), "Upcoming events retrieved")
}

// GetTodaySummary returns today's event counts
// @Summary Today summary
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.TodaySummary
// @Router /events/today/summary [get]
func (c *EventController) GetTodaySummary(ctx echo.Context) error {
	summary, appErr := c.service.GetTodaySummary(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, summary, "Today summary retrieved")
}

// ===================== Helpers =====================

func userIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	raw := ctx.Get(middleware.ContextKeyUserID)
	id, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "No authenticated user", nil)
	}
	return id, nil
}

func filterFromQuery(ctx echo.Context) *dto.EventFilter {
	filter := &dto.EventFilter{}
	for _, raw := range splitParam(ctx.QueryParam("type")) {
		filter.Types = append(filter.Types, entity.EventType(raw))
	}
	for _, raw := range splitParam(ctx.QueryParam("category")) {
		filter.Categories = append(filter.Categories, entity.EventCategory(raw))
	}
	for _, raw := range splitParam(ctx.QueryParam("status")) {
		filter.Statuses = append(filter.Statuses, entity.EventStatus(raw))
	}
	if len(filter.Types) == 0 && len(filter.Categories) == 0 && len(filter.Statuses) == 0 {
		return nil
	}
	return filter
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func intQueryParam(ctx echo.Context, name string) int {
	v, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
