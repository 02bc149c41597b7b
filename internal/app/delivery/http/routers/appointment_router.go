package routers

import (
	"medbook-service/internal/app/delivery/http/controllers"
	"medbook-service/internal/app/delivery/http/middlewares"
	"medbook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Get("/booking/doctor-availability", appointmentController.GetDoctorAvailability)
	router.Post("/booking/create", appointmentController.CreateBooking)

	router.Get("/", appointmentController.FindAll)
	router.Get("/{id}", appointmentController.FindByID)
	router.Put("/{id}", appointmentController.Update)
	router.Put("/{id}/cancel", appointmentController.Cancel)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor, constvars.RoleAdmin)).Put("/{id}/complete", appointmentController.Complete)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{id}", appointmentController.Delete)
}
