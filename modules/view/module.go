package view

import (
	"bump-planner/core/middleware"
	eventService "bump-planner/modules/event/service"
	"bump-planner/modules/view/controller"
	"bump-planner/modules/view/router"
	"bump-planner/modules/view/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the view module and registers routes.
func Init(e *echo.Echo, events *eventService.EventService, mw *middleware.Middleware) *service.ViewService {
	svc := service.NewViewService(events)
	ctrl := controller.NewViewController(svc)
	router.NewViewRouter(ctrl).Setup(e, mw)

	return svc
}
