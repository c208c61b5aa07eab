package models

import (
	"pilates-vision-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty"`
	Name                     string             `bson:"name"`
	TaxIDCPF                 string             `bson:"taxIdCpf"`
	DateOfBirth              string             `bson:"dateOfBirth"`
	Phone                    string             `bson:"phone"`
	MedicalNotes             string             `bson:"medicalNotes"`
	Goals                    string             `bson:"goals"`
	LatestDetectedDeviations []string           `bson:"latestDetectedDeviations"`
	LatestClinicalAnalysis   string             `bson:"latestClinicalAnalysis"`
	LatestWorkoutPlan        []WorkoutExercise  `bson:"latestWorkoutPlan"`
	TimeModel                `bson:",inline"`
}

type WorkoutExercise struct {
	ExerciseName   string `bson:"exerciseName"`
	Sets           string `bson:"sets"`
	Reps           string `bson:"reps"`
	ClinicalReason string `bson:"clinicalReason"`
}

// ConvertIntoResponse serializes the latest analysis and plan lists as JSON
// strings, which is how the studio API has always exposed them.
func (s Student) ConvertIntoResponse() responses.Student {
	deviations := s.LatestDetectedDeviations
	if deviations == nil {
		deviations = []string{}
	}
	deviationsJSON, _ := json.Marshal(deviations)

	plan := make([]responses.WorkoutExercise, len(s.LatestWorkoutPlan))
	for i, exercise := range s.LatestWorkoutPlan {
		plan[i] = exercise.ConvertIntoResponse()
	}
	planJSON, _ := json.Marshal(plan)

	return responses.Student{
		ID:                       s.ID.Hex(),
		Name:                     s.Name,
		TaxIDCPF:                 s.TaxIDCPF,
		DateOfBirth:              s.DateOfBirth,
		Phone:                    s.Phone,
		MedicalNotes:             s.MedicalNotes,
		Goals:                    s.Goals,
		LatestDetectedDeviations: string(deviationsJSON),
		LatestClinicalAnalysis:   s.LatestClinicalAnalysis,
		LatestWorkoutPlan:        string(planJSON),
	}
}

func (e WorkoutExercise) ConvertIntoResponse() responses.WorkoutExercise {
	return responses.WorkoutExercise{
		ExerciseName:   e.ExerciseName,
		Sets:           e.Sets,
		Reps:           e.Reps,
		ClinicalReason: e.ClinicalReason,
	}
}
