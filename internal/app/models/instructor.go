package models

import (
	"pilates-vision-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Instructor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	Email     string             `bson:"email"`
	Specialty string             `bson:"specialty"`
	Notes     string             `bson:"notes"`
	TimeModel `bson:",inline"`
}

func (i Instructor) ConvertIntoResponse() responses.Instructor {
	return responses.Instructor{
		ID:        i.ID.Hex(),
		Name:      i.Name,
		Phone:     i.Phone,
		Email:     i.Email,
		Specialty: i.Specialty,
		Notes:     i.Notes,
	}
}
