package routers

import (
	"pilates-vision-service/internal/app/config"
	"pilates-vision-service/internal/app/delivery/http/controllers"
	"pilates-vision-service/internal/app/delivery/http/middlewares"
	"pilates-vision-service/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Student     *controllers.StudentController
	Instructor  *controllers.InstructorController
	Appointment *controllers.AppointmentController
	Assessment  *controllers.AssessmentController
	Analysis    *controllers.AnalysisController
	Health      *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	handlers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.BodyLimit)

	prefix := endpointPrefix(internalConfig.App.EndpointPrefix)
	middlewares.Quiet(strings.TrimSuffix(prefix, "/") + "/health")

	router.Route(prefix, func(r chi.Router) {
		r.Get("/health", handlers.Health.Health)

		r.Route("/students", func(r chi.Router) {
			attachStudentRoutes(r, handlers.Student)
		})

		r.Route("/instructors", func(r chi.Router) {
			attachInstructorRoutes(r, handlers.Instructor)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, handlers.Appointment)
		})

		r.Post("/assessments", handlers.Assessment.CreateAssessment)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AnalysisRateLimit())
			attachAnalysisRoutes(r, handlers.Analysis)
		})
	})
}

func endpointPrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return "/"
	}
	return "/" + prefix
}

func allowedOrigins(csv string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(csv, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
