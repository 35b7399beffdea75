package event

import (
	"bump-planner/core/middleware"
	"bump-planner/modules/event/controller"
	"bump-planner/modules/event/repository"
	"bump-planner/modules/event/router"
	"bump-planner/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes. The repository and
// service are returned so the sync, template and view modules can share them.
func Init(e *echo.Echo, repo *repository.EventRepository, mw *middleware.Middleware) *service.EventService {
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)
	router.NewEventRouter(ctrl).Setup(e, mw)

	return svc
}
