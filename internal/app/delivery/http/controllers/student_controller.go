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

type StudentController struct {
	Log            *zap.Logger
	StudentUsecase contracts.StudentUsecase
	Timeout        time.Duration
}

func NewStudentController(logger *zap.Logger, studentUsecase contracts.StudentUsecase, timeout time.Duration) *StudentController {
	return &StudentController{
		Log:            logger,
		StudentUsecase: studentUsecase,
		Timeout:        timeout,
	}
}

func (ctrl *StudentController) CreateStudent(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	ctrl.Log.Info("StudentController.CreateStudent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateStudent)
	if !decodeJSON(ctrl.Log, w, r, "StudentController.CreateStudent", requestID, request) {
		return
	}
	utils.SanitizeCreateStudentRequest(request)
	if !validate(ctrl.Log, w, "StudentController.CreateStudent", requestID, request) {
		return
	}

	response, err := ctrl.StudentUsecase.Create(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "StudentController.CreateStudent", requestID, err)
		return
	}

	ctrl.Log.Info("StudentController.CreateStudent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateStudentSuccessMessage, response)
}

func (ctrl *StudentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	search := r.URL.Query().Get(constvars.URLQueryParamSearch)
	ctrl.Log.Info("StudentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, search),
	)

	response, err := ctrl.StudentUsecase.FindAll(ctx, search)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "StudentController.FindAll", requestID, err)
		return
	}

	ctrl.Log.Info("StudentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStudentCountKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStudentsSuccessMessage, response)
}

func (ctrl *StudentController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	studentID := chi.URLParam(r, constvars.URLParamStudentID)
	ctrl.Log.Info("StudentController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	response, err := ctrl.StudentUsecase.FindByID(ctx, studentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "StudentController.FindByID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStudentSuccessMessage, response)
}

func (ctrl *StudentController) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	studentID := chi.URLParam(r, constvars.URLParamStudentID)
	ctrl.Log.Info("StudentController.UpdateStudent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	request := new(requests.UpdateStudent)
	if !decodeJSON(ctrl.Log, w, r, "StudentController.UpdateStudent", requestID, request) {
		return
	}
	utils.SanitizeUpdateStudentRequest(request)
	if !validate(ctrl.Log, w, "StudentController.UpdateStudent", requestID, request) {
		return
	}

	response, err := ctrl.StudentUsecase.Update(ctx, studentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "StudentController.UpdateStudent", requestID, err)
		return
	}

	ctrl.Log.Info("StudentController.UpdateStudent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateStudentSuccessMessage, response)
}

func (ctrl *StudentController) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	studentID := chi.URLParam(r, constvars.URLParamStudentID)
	ctrl.Log.Info("StudentController.DeleteStudent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	err := ctrl.StudentUsecase.Delete(ctx, studentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "StudentController.DeleteStudent", requestID, err)
		return
	}

	ctrl.Log.Info("StudentController.DeleteStudent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	w.WriteHeader(constvars.StatusNoContent)
}
