package routers

import (
	"net/http"
	"psychology-assessment-client/internal/app/config"
	"psychology-assessment-client/internal/app/delivery/http/controllers"
	"psychology-assessment-client/internal/app/delivery/http/middlewares"
	"psychology-assessment-client/internal/pkg/utils"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	metricsHandler http.Handler,
	authController *controllers.AuthController,
	scaleController *controllers.ScaleController,
	assessmentController *controllers.AssessmentController,
	submissionController *controllers.SubmissionController,
) {
	corsOptions := cors.Options{
		AllowOriginFunc:  originAllowed(utils.SplitCSV(internalConfig.App.AllowedOrigins)),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	if metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	endpointPrefix := "/" + strings.Trim(internalConfig.App.EndpointPrefix, "/")
	versionPrefix := "/" + strings.Trim(internalConfig.App.Version, "/")

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/scales", func(r chi.Router) {
				attachScaleRoutes(r, middlewares, scaleController)
			})

			r.Route("/assessment", func(r chi.Router) {
				attachAssessmentRoutes(r, middlewares, assessmentController)
			})

			r.Route("/submissions", func(r chi.Router) {
				attachSubmissionRoutes(r, middlewares, submissionController)
			})
		})
	})
}

// originAllowed matches origins exactly. "*" is never honoured because
// responses carry the gateway's credential.
func originAllowed(origins []string) func(r *http.Request, origin string) bool {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		allowed[strings.ToLower(strings.TrimSuffix(origin, "/"))] = struct{}{}
	}
	return func(r *http.Request, origin string) bool {
		_, ok := allowed[strings.ToLower(origin)]
		return ok
	}
}
