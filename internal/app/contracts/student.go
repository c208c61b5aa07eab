package contracts

import (
	"context"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
)

type StudentUsecase interface {
	Create(ctx context.Context, request *requests.CreateStudent) (*responses.Student, error)
	FindAll(ctx context.Context, search string) ([]responses.Student, error)
	FindByID(ctx context.Context, studentID string) (*responses.Student, error)
	Update(ctx context.Context, studentID string, request *requests.UpdateStudent) (*responses.Student, error)
	Delete(ctx context.Context, studentID string) error
}

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) (string, error)
	FindAll(ctx context.Context, search string) ([]models.Student, error)
	FindByID(ctx context.Context, studentID string) (*models.Student, error)
	FindByTaxID(ctx context.Context, taxID string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	UpdateLatestAnalysis(ctx context.Context, studentID string, deviations []string, clinicalAnalysis string) error
	UpdateLatestWorkoutPlan(ctx context.Context, studentID string, plan []models.WorkoutExercise) error
	Delete(ctx context.Context, studentID string) error
}
