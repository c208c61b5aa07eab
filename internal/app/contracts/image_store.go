package contracts

import "context"

// PostureImage is an uploaded photo about to be archived with its assessment.
type PostureImage struct {
	StudentID   string
	FileName    string
	ContentType string
	Data        []byte
}

type ImageStore interface {
	// SavePostureImage returns the archived location as bucket/object.
	SavePostureImage(ctx context.Context, image PostureImage) (string, error)
}
