package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler turns a handler panic into a 500 envelope. An aborted
// handler is re-panicked so net/http drops the connection.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}

			err, ok := recovered.(error)
			if !ok {
				err = errors.New(fmt.Sprint(recovered))
			}
			m.Log.Error("Recovered from handler panic",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
				zap.Stack("stack"),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
		}()
		next.ServeHTTP(w, r)
	})
}
