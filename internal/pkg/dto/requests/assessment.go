package requests

type CreateAssessment struct {
	StudentID     string `json:"student_id" validate:"required"`
	ImageURL      string `json:"image_url" validate:"required"`
	PosturalNotes string `json:"postural_notes"`
}

// AnalyzePosture is assembled from the multipart upload.
type AnalyzePosture struct {
	StudentID   string `validate:"required"`
	Language    string `validate:"required,oneof=pt en"`
	FileName    string
	ContentType string
	Image       []byte
}
