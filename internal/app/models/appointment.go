package models

import (
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/slots"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	StudentID    primitive.ObjectID `bson:"studentId"`
	InstructorID primitive.ObjectID `bson:"instructorId"`
	StartTime    time.Time          `bson:"startTime"`
	EndTime      time.Time          `bson:"endTime"`
	Status       string             `bson:"status"`
	Notes        string             `bson:"notes"`
	TimeModel    `bson:",inline"`
}

// Overlaps reports whether the half-open ranges [start, end) intersect.
func (a Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

func (a Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:           a.ID.Hex(),
		StudentID:    a.StudentID.Hex(),
		InstructorID: a.InstructorID.Hex(),
		StartTime:    slots.FormatTimestamp(a.StartTime),
		EndTime:      slots.FormatTimestamp(a.EndTime),
		Status:       a.Status,
		Notes:        a.Notes,
		CreatedAt:    slots.FormatTimestamp(a.CreatedAt),
	}
}
