package responses

type Student struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	TaxIDCPF                 string `json:"tax_id_cpf"`
	DateOfBirth              string `json:"date_of_birth"`
	Phone                    string `json:"phone"`
	MedicalNotes             string `json:"medical_notes"`
	Goals                    string `json:"goals"`
	LatestDetectedDeviations string `json:"latest_detected_deviations"`
	LatestClinicalAnalysis   string `json:"latest_clinical_analysis"`
	LatestWorkoutPlan        string `json:"latest_workout_plan"`
}
