package router

import (
	"bump-planner/core/middleware"
	"bump-planner/modules/template/controller"

	"github.com/labstack/echo/v4"
)

type TemplateRouter struct {
	controller *controller.TemplateController
}

func NewTemplateRouter(controller *controller.TemplateController) *TemplateRouter {
	return &TemplateRouter{controller: controller}
}

func (r *TemplateRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	templates := v1.Group("/templates", mw.AuthMiddleware())
	templates.GET("", r.controller.GetTemplates)
	templates.POST("", r.controller.Register)
	templates.POST("/instantiate", r.controller.Instantiate)
}
