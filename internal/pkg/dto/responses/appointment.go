package responses

// Appointment timestamps are naive local wall-clock strings.
type Appointment struct {
	ID           string `json:"id"`
	StudentID    string `json:"student_id"`
	InstructorID string `json:"instructor_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	CreatedAt    string `json:"created_at"`
}
