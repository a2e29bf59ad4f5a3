package routers

import (
	"psychology-assessment-client/internal/app/delivery/http/controllers"
	"psychology-assessment-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/register", authController.Register)
	router.Post("/logout", authController.Logout)
	router.Get("/me", authController.Me)
}
