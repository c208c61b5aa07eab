package analysis

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type analysisUsecase struct {
	StudentRepository    contracts.StudentRepository
	AssessmentRepository contracts.AssessmentRepository
	ImageStore           contracts.ImageStore
	PostureAnalyzer      contracts.PostureAnalyzer
	Log                  *zap.Logger
}

func NewAnalysisUsecase(
	studentRepository contracts.StudentRepository,
	assessmentRepository contracts.AssessmentRepository,
	imageStore contracts.ImageStore,
	postureAnalyzer contracts.PostureAnalyzer,
	logger *zap.Logger,
) contracts.AnalysisUsecase {
	return &analysisUsecase{
		StudentRepository:    studentRepository,
		AssessmentRepository: assessmentRepository,
		ImageStore:           imageStore,
		PostureAnalyzer:      postureAnalyzer,
		Log:                  logger,
	}
}

// AnalyzePosture sends the uploaded image to the remote analyzer, keeps the
// image as a new assessment and records the result as the student's latest
// analysis.
func (uc *analysisUsecase) AnalyzePosture(ctx context.Context, request *requests.AnalyzePosture) (*responses.PostureAnalysis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if request.Language == "" {
		request.Language = constvars.LanguageEnglish
	}
	uc.Log.Info("analysisUsecase.AnalyzePosture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, request.StudentID),
		zap.String(constvars.LoggingLanguageKey, request.Language),
	)

	if !utils.IsSupportedLanguage(request.Language) {
		return nil, exceptions.ErrInvalidLanguage(nil)
	}
	if !strings.HasPrefix(request.ContentType, "image/") {
		return nil, exceptions.ErrImageValidation(nil)
	}

	student, err := uc.StudentRepository.FindByID(ctx, request.StudentID)
	if err != nil {
		uc.Log.Error("analysisUsecase.AnalyzePosture error calling StudentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if student == nil {
		return nil, exceptions.ErrStudentNotFound(nil)
	}

	if len(request.Image) == 0 {
		return nil, exceptions.ErrEmptyImage(nil)
	}

	result, err := uc.PostureAnalyzer.Analyze(ctx, request)
	if err != nil {
		uc.Log.Error("analysisUsecase.AnalyzePosture error calling PostureAnalyzer.Analyze",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if result.DetectedDeviations == nil {
		result.DetectedDeviations = []string{}
	}

	imageURL, err := uc.ImageStore.SavePostureImage(ctx, contracts.PostureImage{
		StudentID:   request.StudentID,
		FileName:    request.FileName,
		ContentType: request.ContentType,
		Data:        request.Image,
	})
	if err != nil {
		uc.Log.Error("analysisUsecase.AnalyzePosture error calling ImageStore.SavePostureImage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStudentIDKey, request.StudentID),
			zap.Error(err),
		)
		return nil, err
	}

	assessment := &models.Assessment{
		StudentID:     student.ID,
		ImageURL:      imageURL,
		PosturalNotes: result.ClinicalAnalysis,
	}
	assessment.SetCreatedAtUpdatedAt()
	assessmentID, err := uc.AssessmentRepository.Create(ctx, assessment)
	if err != nil {
		uc.Log.Error("analysisUsecase.AnalyzePosture error calling AssessmentRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.StudentRepository.UpdateLatestAnalysis(ctx, student.ID.Hex(), result.DetectedDeviations, result.ClinicalAnalysis)
	if err != nil {
		uc.Log.Error("analysisUsecase.AnalyzePosture error calling StudentRepository.UpdateLatestAnalysis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result.AssessmentID = assessmentID
	result.ImageURL = imageURL

	uc.Log.Info("analysisUsecase.AnalyzePosture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingDeviationCountKey, len(result.DetectedDeviations)),
	)
	return result, nil
}
