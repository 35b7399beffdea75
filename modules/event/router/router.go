package router

import (
	"bump-planner/core/middleware"
	"bump-planner/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	events := v1.Group("/events", mw.AuthMiddleware())
	events.POST("", r.controller.CreateEvent)
	events.GET("", r.controller.GetEvents)
	events.GET("/search", r.controller.SearchEvents)
	events.GET("/upcoming", r.controller.GetUpcomingEvents)
	events.GET("/today/summary", r.controller.GetTodaySummary)
	events.GET("/:id", r.controller.GetEvent)
	events.PUT("/:id", r.controller.UpdateEvent)
	events.DELETE("/:id", r.controller.DeleteEvent)
}
