package workout_plans

import (
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/responses"
	"strings"
)

// NormalizeExercises keeps the first five exercises with distinct
// (case-insensitive) names, filling missing sets and reps. It reports false
// when fewer than five distinct exercises are available.
func NormalizeExercises(raw []responses.WorkoutExercise) ([]models.WorkoutExercise, bool) {
	normalized := make([]models.WorkoutExercise, 0, constvars.WorkoutPlanExerciseCount)
	seen := make(map[string]bool, len(raw))

	for _, item := range raw {
		name := strings.TrimSpace(item.ExerciseName)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		exercise := models.WorkoutExercise{
			ExerciseName:   name,
			Sets:           strings.TrimSpace(item.Sets),
			Reps:           strings.TrimSpace(item.Reps),
			ClinicalReason: strings.TrimSpace(item.ClinicalReason),
		}
		if exercise.Sets == "" {
			exercise.Sets = constvars.WorkoutPlanDefaultSets
		}
		if exercise.Reps == "" {
			exercise.Reps = constvars.WorkoutPlanDefaultReps
		}
		normalized = append(normalized, exercise)

		if len(normalized) == constvars.WorkoutPlanExerciseCount {
			break
		}
	}

	return normalized, len(normalized) == constvars.WorkoutPlanExerciseCount
}

// clinicalContext prefers the stored clinical analysis and falls back to a
// summary of the detected deviations.
func clinicalContext(student *models.Student) string {
	analysis := strings.TrimSpace(student.LatestClinicalAnalysis)
	if analysis != "" {
		return analysis
	}
	if len(student.LatestDetectedDeviations) == 0 {
		return constvars.ClinicalAnalysisDeviationsPrefix + constvars.ClinicalAnalysisNoRecentAnalysis
	}
	return constvars.ClinicalAnalysisDeviationsPrefix + strings.Join(student.LatestDetectedDeviations, ", ")
}
