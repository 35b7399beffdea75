package router

import (
	"bump-planner/core/middleware"
	"bump-planner/modules/sync/controller"

	"github.com/labstack/echo/v4"
)

type SyncRouter struct {
	controller *controller.SyncController
}

func NewSyncRouter(controller *controller.SyncController) *SyncRouter {
	return &SyncRouter{controller: controller}
}

func (r *SyncRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	sync := v1.Group("/sync", mw.AuthMiddleware())
	sync.POST("/run", r.controller.RunSync)
	sync.POST("/reminders", r.controller.RunReminders)
	sync.GET("/week", r.controller.GetCurrentWeek)
}
