package routers

import (
	"pilates-vision-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachStudentRoutes(router chi.Router, studentController *controllers.StudentController) {
	router.Get("/", studentController.FindAll)
	router.Post("/", studentController.CreateStudent)
	router.Get("/{student_id}", studentController.FindByID)
	router.Put("/{student_id}", studentController.UpdateStudent)
	router.Delete("/{student_id}", studentController.DeleteStudent)
}
