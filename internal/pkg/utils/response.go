package utils

import (
	"errors"
	"net/http"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BuildErrorResponse writes err as an error envelope. The client message is
// duplicated under "detail" for consumers that only read that field. Client
// errors log at warn, everything else at error.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	envelope := responses.ErrorDTO{
		StatusCode: constvars.StatusInternalServerError,
		Message:    constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		envelope.StatusCode = customErr.StatusCode
		envelope.Message = customErr.ClientMessage
		if !isProduction() {
			location := customErr.Location
			envelope.DevMessage = customErr.DevMessage
			envelope.Location = &location
		}
	}
	envelope.Detail = envelope.Message

	logAt := log.Error
	if envelope.StatusCode < constvars.StatusInternalServerError {
		logAt = log.Warn
	}
	if customErr != nil {
		logAt(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, envelope.StatusCode),
			zap.Stringer(constvars.LoggingErrorLocationKey, customErr.Location),
		)
	} else {
		logAt(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, envelope.StatusCode))
	}

	writeJSON(w, envelope.StatusCode, envelope)
}

func isProduction() bool {
	return GetEnvString("APP_ENV", constvars.AppEnvDevelopment) == constvars.AppEnvProduction
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	// the status is already sent, an encode failure can only truncate the body
	_ = json.NewEncoder(w).Encode(body)
}
