package routers

import (
	"psychology-assessment-client/internal/app/delivery/http/controllers"
	"psychology-assessment-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	router.Route("/draft", func(r chi.Router) {
		r.Get("/", assessmentController.GetDraft)
		r.Put("/basic-info", assessmentController.UpdateBasicInfo)
		r.Put("/scale", assessmentController.SelectScale)
		r.Put("/answers/{ordinal}", assessmentController.SetAnswer)
		r.Put("/attachment", assessmentController.SetAttachment)
		r.Delete("/attachment", assessmentController.DeleteAttachment)
	})

	router.With(middlewares.RequireCredential).Post("/submit", assessmentController.Submit)
	router.Get("/status", assessmentController.Status)
	router.Get("/report", assessmentController.Report)
	router.Post("/reset", assessmentController.Reset)
}
