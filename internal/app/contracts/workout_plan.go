package contracts

import (
	"context"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
)

type WorkoutPlanUsecase interface {
	Generate(ctx context.Context, request *requests.GenerateWorkoutPlan) (*responses.WorkoutPlan, error)
}

// WorkoutPlanner is the remote plan generator. The returned exercises are
// raw and still need normalizing.
type WorkoutPlanner interface {
	Generate(ctx context.Context, request *requests.WorkoutPlannerInput) ([]responses.WorkoutExercise, error)
}
