package requests

type GenerateWorkoutPlan struct {
	StudentID string `json:"student_id" validate:"required"`
	Language  string `json:"language" validate:"omitempty,oneof=pt en"`
}

// StudentProfile is the context handed to the remote planner.
type StudentProfile struct {
	StudentID                string   `json:"student_id"`
	Name                     string   `json:"name"`
	Age                      int      `json:"age"`
	Goal                     string   `json:"goal"`
	MedicalNotes             string   `json:"medical_notes"`
	Phone                    string   `json:"phone"`
	TaxIDCPF                 string   `json:"tax_id_cpf"`
	LatestDetectedDeviations []string `json:"latest_detected_deviations"`
	LatestClinicalAnalysis   string   `json:"latest_clinical_analysis"`
}

type WorkoutPlannerInput struct {
	StudentProfile   StudentProfile `json:"student_profile"`
	ClinicalAnalysis string         `json:"clinical_analysis"`
	Language         string         `json:"language"`
}
