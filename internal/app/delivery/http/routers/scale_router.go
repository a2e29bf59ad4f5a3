package routers

import (
	"psychology-assessment-client/internal/app/delivery/http/controllers"
	"psychology-assessment-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachScaleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scaleController *controllers.ScaleController) {
	router.Use(middlewares.RequireCredential)
	router.Get("/", scaleController.ListScales)
	router.Get("/{scale_code}/questions", scaleController.ListQuestions)
}
