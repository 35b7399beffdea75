package template

import (
	"bump-planner/core/middleware"
	eventRepository "bump-planner/modules/event/repository"
	"bump-planner/modules/template/controller"
	"bump-planner/modules/template/router"
	"bump-planner/modules/template/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the template module and registers routes.
func Init(e *echo.Echo, events *eventRepository.EventRepository, mw *middleware.Middleware) *service.TemplateService {
	svc := service.NewTemplateService(events)
	ctrl := controller.NewTemplateController(svc)
	router.NewTemplateRouter(ctrl).Setup(e, mw)

	return svc
}
