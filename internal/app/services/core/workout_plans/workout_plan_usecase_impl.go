package workout_plans

import (
	"context"
	"errors"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type workoutPlanUsecase struct {
	StudentRepository contracts.StudentRepository
	WorkoutPlanner    contracts.WorkoutPlanner
	Now               func() time.Time
	Log               *zap.Logger
}

func NewWorkoutPlanUsecase(
	studentRepository contracts.StudentRepository,
	workoutPlanner contracts.WorkoutPlanner,
	logger *zap.Logger,
) contracts.WorkoutPlanUsecase {
	return &workoutPlanUsecase{
		StudentRepository: studentRepository,
		WorkoutPlanner:    workoutPlanner,
		Now:               time.Now,
		Log:               logger,
	}
}

func (uc *workoutPlanUsecase) Generate(ctx context.Context, request *requests.GenerateWorkoutPlan) (*responses.WorkoutPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	language := request.Language
	if language == "" {
		language = constvars.LanguageEnglish
	}
	uc.Log.Info("workoutPlanUsecase.Generate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, request.StudentID),
		zap.String(constvars.LoggingLanguageKey, language),
	)

	if !utils.IsSupportedLanguage(language) {
		return nil, exceptions.ErrInvalidLanguage(nil)
	}

	student, err := uc.StudentRepository.FindByID(ctx, request.StudentID)
	if err != nil {
		uc.Log.Error("workoutPlanUsecase.Generate error calling StudentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if student == nil {
		return nil, exceptions.ErrStudentNotFound(nil)
	}

	input := &requests.WorkoutPlannerInput{
		StudentProfile:   uc.buildProfile(student),
		ClinicalAnalysis: clinicalContext(student),
		Language:         language,
	}

	raw, err := uc.WorkoutPlanner.Generate(ctx, input)
	if err != nil {
		uc.Log.Error("workoutPlanUsecase.Generate error calling WorkoutPlanner.Generate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return nil, err
		}
		return nil, exceptions.ErrPlannerFailed(err)
	}

	plan, complete := NormalizeExercises(raw)
	if !complete {
		uc.Log.Error("workoutPlanUsecase.Generate planner returned an incomplete plan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingExerciseCountKey, len(plan)),
		)
		return nil, exceptions.ErrPlannerIncomplete(nil)
	}

	err = uc.StudentRepository.UpdateLatestWorkoutPlan(ctx, student.ID.Hex(), plan)
	if err != nil {
		uc.Log.Error("workoutPlanUsecase.Generate error calling StudentRepository.UpdateLatestWorkoutPlan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.WorkoutPlan{WorkoutPlan: make([]responses.WorkoutExercise, len(plan))}
	for i, exercise := range plan {
		response.WorkoutPlan[i] = exercise.ConvertIntoResponse()
	}

	uc.Log.Info("workoutPlanUsecase.Generate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingExerciseCountKey, len(plan)),
	)
	return response, nil
}

func (uc *workoutPlanUsecase) buildProfile(student *models.Student) requests.StudentProfile {
	deviations := student.LatestDetectedDeviations
	if deviations == nil {
		deviations = []string{}
	}
	age := utils.CalculateAge(student.DateOfBirth, uc.Now())
	if age < 0 {
		age = 0
	}
	return requests.StudentProfile{
		StudentID:                student.ID.Hex(),
		Name:                     student.Name,
		Age:                      age,
		Goal:                     student.Goals,
		MedicalNotes:             student.MedicalNotes,
		Phone:                    student.Phone,
		TaxIDCPF:                 student.TaxIDCPF,
		LatestDetectedDeviations: deviations,
		LatestClinicalAnalysis:   student.LatestClinicalAnalysis,
	}
}
