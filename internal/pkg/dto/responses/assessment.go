package responses

type Assessment struct {
	ID            string `json:"id"`
	StudentID     string `json:"student_id"`
	ImageURL      string `json:"image_url"`
	PosturalNotes string `json:"postural_notes"`
	CreatedAt     string `json:"created_at"`
}

// PostureAnalysis is the analyzer result enriched with the assessment it was stored under.
type PostureAnalysis struct {
	Status             string                 `json:"status"`
	DetectedDeviations []string               `json:"detected_deviations"`
	ClinicalAnalysis   string                 `json:"clinical_analysis"`
	Angles             map[string]interface{} `json:"angles,omitempty"`
	Landmarks2D        interface{}            `json:"landmarks_2d,omitempty"`
	Landmarks3D        interface{}            `json:"landmarks_3d,omitempty"`
	AssessmentID       string                 `json:"assessment_id,omitempty"`
	ImageURL           string                 `json:"image_url,omitempty"`
}
