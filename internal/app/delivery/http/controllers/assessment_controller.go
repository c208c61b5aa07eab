package controllers

import (
	"net/http"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
	Timeout           time.Duration
}

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase, timeout time.Duration) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
		Timeout:           timeout,
	}
}

func (ctrl *AssessmentController) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	ctrl.Log.Info("AssessmentController.CreateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAssessment)
	if !decodeJSON(ctrl.Log, w, r, "AssessmentController.CreateAssessment", requestID, request) {
		return
	}
	request.StudentID = strings.TrimSpace(request.StudentID)
	request.ImageURL = strings.TrimSpace(request.ImageURL)
	if !validate(ctrl.Log, w, "AssessmentController.CreateAssessment", requestID, request) {
		return
	}

	response, err := ctrl.AssessmentUsecase.Create(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AssessmentController.CreateAssessment", requestID, err)
		return
	}

	ctrl.Log.Info("AssessmentController.CreateAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAssessmentSuccessMessage, response)
}
