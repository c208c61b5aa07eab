package controllers

import (
	"net/http"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InstructorController struct {
	Log               *zap.Logger
	InstructorUsecase contracts.InstructorUsecase
	Timeout           time.Duration
}

func NewInstructorController(logger *zap.Logger, instructorUsecase contracts.InstructorUsecase, timeout time.Duration) *InstructorController {
	return &InstructorController{
		Log:               logger,
		InstructorUsecase: instructorUsecase,
		Timeout:           timeout,
	}
}

func (ctrl *InstructorController) CreateInstructor(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	ctrl.Log.Info("InstructorController.CreateInstructor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateInstructor)
	if !decodeJSON(ctrl.Log, w, r, "InstructorController.CreateInstructor", requestID, request) {
		return
	}
	utils.SanitizeCreateInstructorRequest(request)
	if !validate(ctrl.Log, w, "InstructorController.CreateInstructor", requestID, request) {
		return
	}

	response, err := ctrl.InstructorUsecase.Create(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "InstructorController.CreateInstructor", requestID, err)
		return
	}

	ctrl.Log.Info("InstructorController.CreateInstructor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstructorIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateInstructorSuccessMessage, response)
}

func (ctrl *InstructorController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	ctrl.Log.Info("InstructorController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response, err := ctrl.InstructorUsecase.FindAll(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "InstructorController.FindAll", requestID, err)
		return
	}

	ctrl.Log.Info("InstructorController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInstructorCountKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInstructorsSuccessMessage, response)
}

func (ctrl *InstructorController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	instructorID := chi.URLParam(r, constvars.URLParamInstructorID)
	ctrl.Log.Info("InstructorController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstructorIDKey, instructorID),
	)

	response, err := ctrl.InstructorUsecase.FindByID(ctx, instructorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "InstructorController.FindByID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInstructorSuccessMessage, response)
}

func (ctrl *InstructorController) UpdateInstructor(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	instructorID := chi.URLParam(r, constvars.URLParamInstructorID)
	ctrl.Log.Info("InstructorController.UpdateInstructor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstructorIDKey, instructorID),
	)

	request := new(requests.UpdateInstructor)
	if !decodeJSON(ctrl.Log, w, r, "InstructorController.UpdateInstructor", requestID, request) {
		return
	}
	utils.SanitizeUpdateInstructorRequest(request)
	if !validate(ctrl.Log, w, "InstructorController.UpdateInstructor", requestID, request) {
		return
	}

	response, err := ctrl.InstructorUsecase.Update(ctx, instructorID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "InstructorController.UpdateInstructor", requestID, err)
		return
	}

	ctrl.Log.Info("InstructorController.UpdateInstructor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateInstructorSuccessMessage, response)
}

func (ctrl *InstructorController) DeleteInstructor(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	instructorID := chi.URLParam(r, constvars.URLParamInstructorID)
	ctrl.Log.Info("InstructorController.DeleteInstructor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstructorIDKey, instructorID),
	)

	err := ctrl.InstructorUsecase.Delete(ctx, instructorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "InstructorController.DeleteInstructor", requestID, err)
		return
	}

	ctrl.Log.Info("InstructorController.DeleteInstructor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	w.WriteHeader(constvars.StatusNoContent)
}
