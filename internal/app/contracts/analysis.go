package contracts

import (
	"context"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
)

type AnalysisUsecase interface {
	AnalyzePosture(ctx context.Context, request *requests.AnalyzePosture) (*responses.PostureAnalysis, error)
}

// PostureAnalyzer is the remote landmark and deviation detector. Its
// internals are opaque to the studio.
type PostureAnalyzer interface {
	Analyze(ctx context.Context, request *requests.AnalyzePosture) (*responses.PostureAnalysis, error)
}
