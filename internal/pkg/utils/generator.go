package utils

import (
	"fmt"
	"path/filepath"
	"pilates-vision-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateAssessmentObjectName builds a unique bucket key for an uploaded
// posture image, keeping the original extension.
func GenerateAssessmentObjectName(studentID, fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf(constvars.MinioAssessmentObjectFormat, studentID, uuid.NewString(), extension)
}
