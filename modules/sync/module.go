package sync

import (
	"bump-planner/core/config"
	"bump-planner/core/middleware"
	eventRepository "bump-planner/modules/event/repository"
	"bump-planner/modules/sync/controller"
	"bump-planner/modules/sync/router"
	"bump-planner/modules/sync/service"
	"bump-planner/modules/sync/source"

	"github.com/labstack/echo/v4"
)

// Init initializes the sync module and registers routes. The task source is
// only wired when a collaborator URL is configured.
func Init(e *echo.Echo, cfg *config.Config, events *eventRepository.EventRepository, mw *middleware.Middleware) *service.SyncService {
	var tasks source.TaskSource
	if cfg.Sync.TasksURL != "" {
		tasks = source.NewHTTPTaskSource(cfg.Sync.TasksURL)
	}

	svc := service.NewSyncService(events, tasks, source.NewStandardCheckupSchedule(), cfg.Pregnancy.StartDate)
	ctrl := controller.NewSyncController(svc)
	router.NewSyncRouter(ctrl).Setup(e, mw)

	return svc
}
