package controllers

import (
	"context"
	"errors"
	"net/http"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// requestScope returns the request id and a context bounded by timeout that
// keeps the request values.
func requestScope(r *http.Request, timeout time.Duration) (string, context.Context, context.CancelFunc) {
	requestID := utils.GetRequestID(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	return requestID, ctx, cancel
}

// decodeJSON binds the body into request, logging under name on failure.
func decodeJSON(log *zap.Logger, w http.ResponseWriter, r *http.Request, name, requestID string, request interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		log.Error(name+" Failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	return true
}

func validate(log *zap.Logger, w http.ResponseWriter, name, requestID string, request interface{}) bool {
	err := utils.ValidateStruct(request)
	if err != nil {
		log.Error(name+" Validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, name, requestID string, err error) {
	log.Error(name+" usecase error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) && errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
