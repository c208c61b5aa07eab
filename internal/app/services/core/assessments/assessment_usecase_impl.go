package assessments

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type assessmentUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	StudentRepository    contracts.StudentRepository
	Log                  *zap.Logger
}

func NewAssessmentUsecase(
	assessmentRepository contracts.AssessmentRepository,
	studentRepository contracts.StudentRepository,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	return &assessmentUsecase{
		AssessmentRepository: assessmentRepository,
		StudentRepository:    studentRepository,
		Log:                  logger,
	}
}

func (uc *assessmentUsecase) Create(ctx context.Context, request *requests.CreateAssessment) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, request.StudentID),
	)

	student, err := uc.StudentRepository.FindByID(ctx, request.StudentID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Create error calling StudentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if student == nil {
		return nil, exceptions.ErrStudentNotFound(nil)
	}

	assessment := &models.Assessment{
		StudentID:     student.ID,
		ImageURL:      request.ImageURL,
		PosturalNotes: request.PosturalNotes,
	}
	assessment.SetCreatedAtUpdatedAt()

	assessmentID, err := uc.AssessmentRepository.Create(ctx, assessment)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Create error calling AssessmentRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	assessment.ID, _ = primitive.ObjectIDFromHex(assessmentID)

	response := assessment.ConvertIntoResponse()
	uc.Log.Info("assessmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, response.ID),
	)
	return &response, nil
}
