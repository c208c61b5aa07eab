package students

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type studentUsecase struct {
	StudentRepository     contracts.StudentRepository
	AppointmentRepository contracts.AppointmentRepository
	AssessmentRepository  contracts.AssessmentRepository
	Log                   *zap.Logger
}

func NewStudentUsecase(
	studentRepository contracts.StudentRepository,
	appointmentRepository contracts.AppointmentRepository,
	assessmentRepository contracts.AssessmentRepository,
	logger *zap.Logger,
) contracts.StudentUsecase {
	return &studentUsecase{
		StudentRepository:     studentRepository,
		AppointmentRepository: appointmentRepository,
		AssessmentRepository:  assessmentRepository,
		Log:                   logger,
	}
}

func (uc *studentUsecase) Create(ctx context.Context, request *requests.CreateStudent) (*responses.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.StudentRepository.FindByTaxID(ctx, request.TaxIDCPF)
	if err != nil {
		uc.Log.Error("studentUsecase.Create error calling StudentRepository.FindByTaxID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		uc.Log.Info("studentUsecase.Create CPF already registered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStudentIDKey, existing.ID.Hex()),
		)
		return nil, exceptions.ErrStudentCPFAlreadyExists(nil)
	}

	student := &models.Student{
		Name:                     request.Name,
		TaxIDCPF:                 request.TaxIDCPF,
		DateOfBirth:              request.DateOfBirth,
		Phone:                    request.Phone,
		MedicalNotes:             request.MedicalNotes,
		Goals:                    request.Goals,
		LatestDetectedDeviations: []string{},
		LatestWorkoutPlan:        []models.WorkoutExercise{},
	}
	student.SetCreatedAtUpdatedAt()

	studentID, err := uc.StudentRepository.Create(ctx, student)
	if err != nil {
		uc.Log.Error("studentUsecase.Create error calling StudentRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := student.ConvertIntoResponse()
	response.ID = studentID

	uc.Log.Info("studentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)
	return &response, nil
}

func (uc *studentUsecase) FindAll(ctx context.Context, search string) ([]responses.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, search),
	)

	students, err := uc.StudentRepository.FindAll(ctx, search)
	if err != nil {
		uc.Log.Error("studentUsecase.FindAll error calling StudentRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Student, len(students))
	for i, student := range students {
		response[i] = student.ConvertIntoResponse()
	}

	uc.Log.Info("studentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStudentCountKey, len(response)),
	)
	return response, nil
}

func (uc *studentUsecase) FindByID(ctx context.Context, studentID string) (*responses.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	student, err := uc.findExisting(ctx, studentID)
	if err != nil {
		return nil, err
	}

	response := student.ConvertIntoResponse()
	uc.Log.Info("studentUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *studentUsecase) Update(ctx context.Context, studentID string, request *requests.UpdateStudent) (*responses.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	student, err := uc.findExisting(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if request.TaxIDCPF != nil && *request.TaxIDCPF != student.TaxIDCPF {
		owner, err := uc.StudentRepository.FindByTaxID(ctx, *request.TaxIDCPF)
		if err != nil {
			uc.Log.Error("studentUsecase.Update error calling StudentRepository.FindByTaxID",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if owner != nil && owner.ID != student.ID {
			return nil, exceptions.ErrStudentCPFAlreadyExists(nil)
		}
	}

	applyStudentUpdate(student, request)
	student.SetUpdatedAt()

	err = uc.StudentRepository.Update(ctx, student)
	if err != nil {
		uc.Log.Error("studentUsecase.Update error calling StudentRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := student.ConvertIntoResponse()
	uc.Log.Info("studentUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

// Delete refuses while appointments or assessments still point at the student.
func (uc *studentUsecase) Delete(ctx context.Context, studentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	_, err := uc.findExisting(ctx, studentID)
	if err != nil {
		return err
	}

	appointmentCount, err := uc.AppointmentRepository.CountByStudentID(ctx, studentID)
	if err != nil {
		uc.Log.Error("studentUsecase.Delete error calling AppointmentRepository.CountByStudentID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if appointmentCount > 0 {
		return exceptions.ErrStudentHasAppointments(nil)
	}

	assessmentCount, err := uc.AssessmentRepository.CountByStudentID(ctx, studentID)
	if err != nil {
		uc.Log.Error("studentUsecase.Delete error calling AssessmentRepository.CountByStudentID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if assessmentCount > 0 {
		return exceptions.ErrStudentHasAssessments(nil)
	}

	err = uc.StudentRepository.Delete(ctx, studentID)
	if err != nil {
		uc.Log.Error("studentUsecase.Delete error calling StudentRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("studentUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *studentUsecase) findExisting(ctx context.Context, studentID string) (*models.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	student, err := uc.StudentRepository.FindByID(ctx, studentID)
	if err != nil {
		uc.Log.Error("studentUsecase.findExisting error calling StudentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if student == nil {
		uc.Log.Info("studentUsecase.findExisting student not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStudentIDKey, studentID),
		)
		return nil, exceptions.ErrStudentNotFound(nil)
	}
	return student, nil
}

func applyStudentUpdate(student *models.Student, request *requests.UpdateStudent) {
	if request.Name != nil {
		student.Name = *request.Name
	}
	if request.TaxIDCPF != nil {
		student.TaxIDCPF = *request.TaxIDCPF
	}
	if request.DateOfBirth != nil {
		student.DateOfBirth = *request.DateOfBirth
	}
	if request.Phone != nil {
		student.Phone = *request.Phone
	}
	if request.MedicalNotes != nil {
		student.MedicalNotes = *request.MedicalNotes
	}
	if request.Goals != nil {
		student.Goals = *request.Goals
	}
}
