package models

import (
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/slots"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assessment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	StudentID     primitive.ObjectID `bson:"studentId"`
	ImageURL      string             `bson:"imageUrl"`
	PosturalNotes string             `bson:"posturalNotes"`
	TimeModel     `bson:",inline"`
}

func (a Assessment) ConvertIntoResponse() responses.Assessment {
	return responses.Assessment{
		ID:            a.ID.Hex(),
		StudentID:     a.StudentID.Hex(),
		ImageURL:      a.ImageURL,
		PosturalNotes: a.PosturalNotes,
		CreatedAt:     slots.FormatTimestamp(a.CreatedAt),
	}
}
