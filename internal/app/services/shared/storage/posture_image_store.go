package storage

import (
	"bytes"
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type postureImageStore struct {
	client     *minio.Client
	bucketName string
	Log        *zap.Logger
}

// NewPostureImageStore archives posture photos under
// assessments/<student id>/ in bucketName.
func NewPostureImageStore(client *minio.Client, bucketName string, logger *zap.Logger) contracts.ImageStore {
	return &postureImageStore{
		client:     client,
		bucketName: bucketName,
		Log:        logger,
	}
}

func (s *postureImageStore) SavePostureImage(ctx context.Context, image contracts.PostureImage) (string, error) {
	objectName := utils.GenerateAssessmentObjectName(image.StudentID, image.FileName)

	info, err := s.client.PutObject(ctx, s.bucketName, objectName,
		bytes.NewReader(image.Data), int64(len(image.Data)),
		minio.PutObjectOptions{
			ContentType:  image.ContentType,
			UserMetadata: map[string]string{"student-id": image.StudentID, "original-name": image.FileName},
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, s.bucketName)
	}

	s.Log.Debug("postureImageStore.SavePostureImage stored object",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingBucketNameKey, info.Bucket),
		zap.String(constvars.LoggingObjectNameKey, info.Key),
		zap.Int64("size", info.Size),
	)
	return s.bucketName + "/" + objectName, nil
}
