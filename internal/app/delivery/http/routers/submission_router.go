package routers

import (
	"psychology-assessment-client/internal/app/delivery/http/controllers"
	"psychology-assessment-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSubmissionRoutes(router chi.Router, middlewares *middlewares.Middlewares, submissionController *controllers.SubmissionController) {
	router.With(middlewares.RequireCredential).Get("/", submissionController.ListSubmissions)
}
