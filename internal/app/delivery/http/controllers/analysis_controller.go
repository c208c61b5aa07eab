package controllers

import (
	"io"
	"net/http"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

// multipartMemory is how much of an upload is buffered in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

type AnalysisController struct {
	Log                *zap.Logger
	AnalysisUsecase    contracts.AnalysisUsecase
	WorkoutPlanUsecase contracts.WorkoutPlanUsecase
	Timeout            time.Duration
}

func NewAnalysisController(
	logger *zap.Logger,
	analysisUsecase contracts.AnalysisUsecase,
	workoutPlanUsecase contracts.WorkoutPlanUsecase,
	timeout time.Duration,
) *AnalysisController {
	return &AnalysisController{
		Log:                logger,
		AnalysisUsecase:    analysisUsecase,
		WorkoutPlanUsecase: workoutPlanUsecase,
		Timeout:            timeout,
	}
}

// AnalyzePosture accepts multipart fields image, student_id and language.
func (ctrl *AnalysisController) AnalyzePosture(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	ctrl.Log.Info("AnalysisController.AnalyzePosture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := r.ParseMultipartForm(multipartMemory)
	if err != nil {
		ctrl.Log.Error("AnalysisController.AnalyzePosture Failed to parse multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(constvars.FormFieldImage)
	if err != nil {
		ctrl.Log.Error("AnalysisController.AnalyzePosture image field missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotReadUploadedFile(err))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotReadUploadedFile(err))
		return
	}

	request := &requests.AnalyzePosture{
		StudentID:   strings.TrimSpace(r.FormValue(constvars.FormFieldStudentID)),
		Language:    strings.ToLower(strings.TrimSpace(r.FormValue(constvars.FormFieldLanguage))),
		FileName:    header.Filename,
		ContentType: header.Header.Get(constvars.HeaderContentType),
		Image:       image,
	}
	if request.Language == "" {
		request.Language = constvars.LanguageEnglish
	}
	if !validate(ctrl.Log, w, "AnalysisController.AnalyzePosture", requestID, request) {
		return
	}

	response, err := ctrl.AnalysisUsecase.AnalyzePosture(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AnalysisController.AnalyzePosture", requestID, err)
		return
	}

	ctrl.Log.Info("AnalysisController.AnalyzePosture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, response.AssessmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyzePostureSuccessMessage, response)
}

func (ctrl *AnalysisController) GenerateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	ctrl.Log.Info("AnalysisController.GenerateWorkoutPlan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.GenerateWorkoutPlan)
	if !decodeJSON(ctrl.Log, w, r, "AnalysisController.GenerateWorkoutPlan", requestID, request) {
		return
	}
	request.StudentID = strings.TrimSpace(request.StudentID)
	request.Language = strings.ToLower(strings.TrimSpace(request.Language))
	if !validate(ctrl.Log, w, "AnalysisController.GenerateWorkoutPlan", requestID, request) {
		return
	}

	response, err := ctrl.WorkoutPlanUsecase.Generate(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AnalysisController.GenerateWorkoutPlan", requestID, err)
		return
	}

	ctrl.Log.Info("AnalysisController.GenerateWorkoutPlan succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingExerciseCountKey, len(response.WorkoutPlan)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateWorkoutPlanSuccessMessage, response)
}
