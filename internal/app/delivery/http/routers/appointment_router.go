package routers

import (
	"pilates-vision-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/{appointment_id}", appointmentController.FindByID)
	router.Put("/{appointment_id}", appointmentController.UpdateAppointment)
	router.Delete("/{appointment_id}", appointmentController.DeleteAppointment)
}
