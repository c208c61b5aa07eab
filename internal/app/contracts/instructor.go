package contracts

import (
	"context"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
)

type InstructorUsecase interface {
	Create(ctx context.Context, request *requests.CreateInstructor) (*responses.Instructor, error)
	FindAll(ctx context.Context) ([]responses.Instructor, error)
	FindByID(ctx context.Context, instructorID string) (*responses.Instructor, error)
	Update(ctx context.Context, instructorID string, request *requests.UpdateInstructor) (*responses.Instructor, error)
	Delete(ctx context.Context, instructorID string) error
}

type InstructorRepository interface {
	Create(ctx context.Context, instructor *models.Instructor) (string, error)
	FindAll(ctx context.Context) ([]models.Instructor, error)
	FindByID(ctx context.Context, instructorID string) (*models.Instructor, error)
	FindByEmail(ctx context.Context, email string) (*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, instructorID string) error
}
