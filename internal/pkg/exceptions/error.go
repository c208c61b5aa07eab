package exceptions

import (
	"fmt"
	"path/filepath"
	"pilates-vision-service/internal/pkg/constvars"
	"runtime"
	"strings"
)

// CustomError is the error every usecase and controller returns. ClientMessage
// is safe to show to API callers; DevMessage and Location only reach logs and
// non-production envelopes.
type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d %s", l.File, l.Line, l.FunctionName)
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s)", e.DevMessage, e.Location)
}

// Unwrap exposes the underlying failure to errors.Is and errors.As.
func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError is called from the named constructors in types.go, so
// the recorded location is the constructor's caller.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = devMessage + ": " + err.Error()
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      callerLocation(3),
		cause:         err,
	}
}

// callerLocation keeps the last directory of the file and the package
// qualified function name.
func callerLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: constvars.ResponseUnknown, FunctionName: constvars.ResponseUnknown}
	}

	function := constvars.ResponseUnknown
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if slash := strings.LastIndex(function, "/"); slash >= 0 {
			function = function[slash+1:]
		}
	}
	return Location{
		File:         filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file)),
		Line:         line,
		FunctionName: function,
	}
}
