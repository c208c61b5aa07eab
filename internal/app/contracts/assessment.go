package contracts

import (
	"context"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	Create(ctx context.Context, request *requests.CreateAssessment) (*responses.Assessment, error)
}

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *models.Assessment) (string, error)
	CountByStudentID(ctx context.Context, studentID string) (int64, error)
}
