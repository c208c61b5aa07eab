package responses

type WorkoutExercise struct {
	ExerciseName   string `json:"exercise_name"`
	Sets           string `json:"sets"`
	Reps           string `json:"reps"`
	ClinicalReason string `json:"clinical_reason"`
}

type WorkoutPlan struct {
	WorkoutPlan []WorkoutExercise `json:"workout_plan"`
}
