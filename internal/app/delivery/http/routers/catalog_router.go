package routers

import (
	"medbook-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// Catalog reads are public so the booking screens work before login.
func attachCatalogRoutes(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get("/clinics", catalogController.FindAllClinics)
	router.Get("/doctors", catalogController.FindAllDoctors)
	router.Get("/doctors/{id}", catalogController.FindDoctorByID)
	router.Get("/services", catalogController.FindAllServices)
	router.Get("/doctor-services/{id}", catalogController.FindDoctorServiceByID)
}
