package routers

import (
	"medbook-service/internal/app/delivery/http/controllers"
	"medbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	userController *controllers.UserController,
	patientProfileController *controllers.PatientProfileController,
) {
	router.Use(middlewares.Authenticate)

	router.Get("/profile", userController.GetUserProfileBySession)
	router.Put("/profile", userController.UpdateUserBySession)
	router.Post("/upload-avatar", userController.UploadAvatar)

	router.Route("/patient-profiles", func(r chi.Router) {
		r.Get("/", patientProfileController.FindAll)
		r.Post("/", patientProfileController.Create)
		r.Get("/{id}", patientProfileController.FindByID)
		r.Put("/{id}", patientProfileController.Update)
		r.Delete("/{id}", patientProfileController.Delete)
	})
}
