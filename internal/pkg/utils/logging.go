package utils

import (
	"context"
	"pilates-vision-service/internal/pkg/constvars"
)

// GetRequestID returns the id RequestIDMiddleware stored on ctx, or "".
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
