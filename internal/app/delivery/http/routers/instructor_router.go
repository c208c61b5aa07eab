package routers

import (
	"pilates-vision-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachInstructorRoutes(router chi.Router, instructorController *controllers.InstructorController) {
	router.Get("/", instructorController.FindAll)
	router.Post("/", instructorController.CreateInstructor)
	router.Get("/{instructor_id}", instructorController.FindByID)
	router.Put("/{instructor_id}", instructorController.UpdateInstructor)
	router.Delete("/{instructor_id}", instructorController.DeleteInstructor)
}
