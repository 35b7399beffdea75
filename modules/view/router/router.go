package router

import (
	"bump-planner/core/middleware"
	"bump-planner/modules/view/controller"

	"github.com/labstack/echo/v4"
)

type ViewRouter struct {
	controller *controller.ViewController
}

func NewViewRouter(controller *controller.ViewController) *ViewRouter {
	return &ViewRouter{controller: controller}
}

func (r *ViewRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	views := v1.Group("/views", mw.AuthMiddleware())
	views.GET("/month", r.controller.GetMonthView)
	views.GET("/week", r.controller.GetWeekView)
	views.GET("/agenda", r.controller.GetAgendaView)
}
