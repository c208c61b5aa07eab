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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	Timeout            time.Duration
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, timeout time.Duration) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		Timeout:            timeout,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAppointment)
	if !decodeJSON(ctrl.Log, w, r, "AppointmentController.CreateAppointment", requestID, request) {
		return
	}
	utils.SanitizeCreateAppointmentRequest(request)
	if !validate(ctrl.Log, w, "AppointmentController.CreateAppointment", requestID, request) {
		return
	}

	response, err := ctrl.AppointmentUsecase.Create(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.CreateAppointment", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

// FindAll lists appointments, optionally only those on ?date=YYYY-MM-DD.
func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	date := r.URL.Query().Get(constvars.URLQueryParamDate)
	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	response, err := ctrl.AppointmentUsecase.FindAll(ctx, date)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.FindAll", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, response)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("AppointmentController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	response, err := ctrl.AppointmentUsecase.FindByID(ctx, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.FindByID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("AppointmentController.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	request := new(requests.UpdateAppointment)
	if !decodeJSON(ctrl.Log, w, r, "AppointmentController.UpdateAppointment", requestID, request) {
		return
	}
	utils.SanitizeUpdateAppointmentRequest(request)
	if !validate(ctrl.Log, w, "AppointmentController.UpdateAppointment", requestID, request) {
		return
	}

	response, err := ctrl.AppointmentUsecase.Update(ctx, appointmentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.UpdateAppointment", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ctx, cancel := requestScope(r, ctrl.Timeout)
	defer cancel()
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("AppointmentController.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := ctrl.AppointmentUsecase.Delete(ctx, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.DeleteAppointment", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.DeleteAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	w.WriteHeader(constvars.StatusNoContent)
}
