package instructors

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type instructorUsecase struct {
	InstructorRepository  contracts.InstructorRepository
	AppointmentRepository contracts.AppointmentRepository
	Cache                 contracts.CacheRepository
	CacheTTL              time.Duration
	Log                   *zap.Logger
}

// NewInstructorUsecase caches the instructor list for cacheTTL.
// Every write drops the cached list.
func NewInstructorUsecase(
	instructorRepository contracts.InstructorRepository,
	appointmentRepository contracts.AppointmentRepository,
	cache contracts.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.InstructorUsecase {
	return &instructorUsecase{
		InstructorRepository:  instructorRepository,
		AppointmentRepository: appointmentRepository,
		Cache:                 cache,
		CacheTTL:              cacheTTL,
		Log:                   logger,
	}
}

func (uc *instructorUsecase) Create(ctx context.Context, request *requests.CreateInstructor) (*responses.Instructor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("instructorUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.InstructorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("instructorUsecase.Create error calling InstructorRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrInstructorEmailAlreadyExists(nil)
	}

	instructor := &models.Instructor{
		Name:      request.Name,
		Phone:     request.Phone,
		Email:     request.Email,
		Specialty: request.Specialty,
		Notes:     request.Notes,
	}
	instructor.SetCreatedAtUpdatedAt()

	instructorID, err := uc.InstructorRepository.Create(ctx, instructor)
	if err != nil {
		uc.Log.Error("instructorUsecase.Create error calling InstructorRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidateCache(ctx)

	response := instructor.ConvertIntoResponse()
	response.ID = instructorID

	uc.Log.Info("instructorUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstructorIDKey, instructorID),
	)
	return &response, nil
}

func (uc *instructorUsecase) FindAll(ctx context.Context) ([]responses.Instructor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("instructorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var cached []responses.Instructor
	hit, err := uc.Cache.GetJSON(ctx, constvars.RedisKeyInstructorList, &cached)
	if err != nil {
		uc.Log.Warn("instructorUsecase.FindAll error reading cached instructors, falling back to repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if hit && err == nil {
		uc.Log.Info("instructorUsecase.FindAll served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingInstructorCountKey, len(cached)),
		)
		return cached, nil
	}

	instructors, err := uc.InstructorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("instructorUsecase.FindAll error calling InstructorRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Instructor, len(instructors))
	for i, instructor := range instructors {
		response[i] = instructor.ConvertIntoResponse()
	}

	err = uc.Cache.SetJSON(ctx, constvars.RedisKeyInstructorList, response, uc.CacheTTL)
	if err != nil {
		uc.Log.Warn("instructorUsecase.FindAll error caching instructors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("instructorUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInstructorCountKey, len(response)),
	)
	return response, nil
}

func (uc *instructorUsecase) FindByID(ctx context.Context, instructorID string) (*responses.Instructor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("instructorUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstructorIDKey, instructorID),
	)

	instructor, err := uc.findExisting(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	response := instructor.ConvertIntoResponse()
	return &response, nil
}

func (uc *instructorUsecase) Update(ctx context.Context, instructorID string, request *requests.UpdateInstructor) (*responses.Instructor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("instructorUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstructorIDKey, instructorID),
	)

	instructor, err := uc.findExisting(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	if request.Email != nil && *request.Email != instructor.Email {
		owner, err := uc.InstructorRepository.FindByEmail(ctx, *request.Email)
		if err != nil {
			uc.Log.Error("instructorUsecase.Update error calling InstructorRepository.FindByEmail",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if owner != nil && owner.ID != instructor.ID {
			return nil, exceptions.ErrInstructorEmailAlreadyExists(nil)
		}
	}

	if request.Name != nil {
		instructor.Name = *request.Name
	}
	if request.Phone != nil {
		instructor.Phone = *request.Phone
	}
	if request.Email != nil {
		instructor.Email = *request.Email
	}
	if request.Specialty != nil {
		instructor.Specialty = *request.Specialty
	}
	if request.Notes != nil {
		instructor.Notes = *request.Notes
	}
	instructor.SetUpdatedAt()

	err = uc.InstructorRepository.Update(ctx, instructor)
	if err != nil {
		uc.Log.Error("instructorUsecase.Update error calling InstructorRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidateCache(ctx)

	response := instructor.ConvertIntoResponse()
	uc.Log.Info("instructorUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *instructorUsecase) Delete(ctx context.Context, instructorID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("instructorUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstructorIDKey, instructorID),
	)

	_, err := uc.findExisting(ctx, instructorID)
	if err != nil {
		return err
	}

	count, err := uc.AppointmentRepository.CountByInstructorID(ctx, instructorID)
	if err != nil {
		uc.Log.Error("instructorUsecase.Delete error calling AppointmentRepository.CountByInstructorID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if count > 0 {
		return exceptions.ErrInstructorHasAppointments(nil)
	}

	err = uc.InstructorRepository.Delete(ctx, instructorID)
	if err != nil {
		uc.Log.Error("instructorUsecase.Delete error calling InstructorRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidateCache(ctx)

	uc.Log.Info("instructorUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *instructorUsecase) findExisting(ctx context.Context, instructorID string) (*models.Instructor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	instructor, err := uc.InstructorRepository.FindByID(ctx, instructorID)
	if err != nil {
		uc.Log.Error("instructorUsecase.findExisting error calling InstructorRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if instructor == nil {
		return nil, exceptions.ErrInstructorNotFound(nil)
	}
	return instructor, nil
}

// invalidateCache is best effort; a stale list expires with the TTL.
func (uc *instructorUsecase) invalidateCache(ctx context.Context) {
	err := uc.Cache.Invalidate(ctx, constvars.RedisKeyInstructorList)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("instructorUsecase.invalidateCache error invalidating cached instructor list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
