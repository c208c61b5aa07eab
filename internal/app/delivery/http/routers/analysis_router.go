package routers

import (
	"pilates-vision-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAnalysisRoutes(router chi.Router, analysisController *controllers.AnalysisController) {
	router.Post("/analyze", analysisController.AnalyzePosture)
	router.Post("/generate_plan", analysisController.GenerateWorkoutPlan)
}
