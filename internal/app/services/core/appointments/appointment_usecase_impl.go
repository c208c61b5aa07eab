package appointments

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/slots"
	"pilates-vision-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	StudentRepository     contracts.StudentRepository
	InstructorRepository  contracts.InstructorRepository
	BookingLocker         contracts.BookingLocker
	EventPublisher        contracts.AppointmentEventPublisher
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	studentRepository contracts.StudentRepository,
	instructorRepository contracts.InstructorRepository,
	bookingLocker contracts.BookingLocker,
	eventPublisher contracts.AppointmentEventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		StudentRepository:     studentRepository,
		InstructorRepository:  instructorRepository,
		BookingLocker:         bookingLocker,
		EventPublisher:        eventPublisher,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, request.StudentID),
		zap.String(constvars.LoggingInstructorIDKey, request.InstructorID),
	)

	start, end, err := parseRange(request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}

	student, instructor, err := uc.findParticipants(ctx, request.StudentID, request.InstructorID)
	if err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = constvars.AppointmentStatusBooked
	}
	appointment := &models.Appointment{
		StudentID:    student.ID,
		InstructorID: instructor.ID,
		StartTime:    start,
		EndTime:      end,
		Status:       status,
		Notes:        request.Notes,
	}
	appointment.SetCreatedAtUpdatedAt()

	err = uc.withInstructorLock(ctx, request.InstructorID, func() error {
		err := uc.ensureNoOverlap(ctx, request.InstructorID, start, end, "")
		if err != nil {
			return err
		}
		appointmentID, err := uc.AppointmentRepository.Create(ctx, appointment)
		if err != nil {
			uc.Log.Error("appointmentUsecase.Create error calling AppointmentRepository.Create",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
		appointment.ID, _ = primitive.ObjectIDFromHex(appointmentID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := appointment.ConvertIntoResponse()
	uc.publish(ctx, constvars.AppointmentEventBooked, response)

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
	)
	return &response, nil
}

// FindAll lists every appointment, or those starting on date (YYYY-MM-DD),
// ordered by start time.
func (uc *appointmentUsecase) FindAll(ctx context.Context, date string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	var from, to time.Time
	if date != "" {
		day, err := slots.ParseDate(date)
		if err != nil {
			uc.Log.Info("appointmentUsecase.FindAll invalid date filter",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrInvalidDateFormat(err)
		}
		from, to = day, day.AddDate(0, 0, 1)
	}

	appointments, err := uc.AppointmentRepository.FindAll(ctx, from, to)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error calling AppointmentRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Appointment, len(appointments))
	for i, appointment := range appointments {
		response[i] = appointment.ConvertIntoResponse()
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findExisting(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	response := appointment.ConvertIntoResponse()
	return &response, nil
}

// Update applies a partial change. The resulting range is checked against
// the (possibly new) instructor's other appointments.
func (uc *appointmentUsecase) Update(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findExisting(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	startText := slots.FormatTimestamp(appointment.StartTime)
	if request.StartTime != nil {
		startText = *request.StartTime
	}
	endText := slots.FormatTimestamp(appointment.EndTime)
	if request.EndTime != nil {
		endText = *request.EndTime
	}
	start, end, err := parseRange(startText, endText)
	if err != nil {
		return nil, err
	}

	studentID := appointment.StudentID.Hex()
	if request.StudentID != nil {
		studentID = *request.StudentID
	}
	instructorID := appointment.InstructorID.Hex()
	if request.InstructorID != nil {
		instructorID = *request.InstructorID
	}
	student, instructor, err := uc.findParticipants(ctx, studentID, instructorID)
	if err != nil {
		return nil, err
	}

	appointment.StudentID = student.ID
	appointment.InstructorID = instructor.ID
	appointment.StartTime = start
	appointment.EndTime = end
	if request.Status != nil {
		appointment.Status = *request.Status
	}
	if request.Notes != nil {
		appointment.Notes = *request.Notes
	}
	appointment.SetUpdatedAt()

	err = uc.withInstructorLock(ctx, instructorID, func() error {
		err := uc.ensureNoOverlap(ctx, instructorID, start, end, appointmentID)
		if err != nil {
			return err
		}
		err = uc.AppointmentRepository.Update(ctx, appointment)
		if err != nil {
			uc.Log.Error("appointmentUsecase.Update error calling AppointmentRepository.Update",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	response := appointment.ConvertIntoResponse()
	uc.publish(ctx, constvars.AppointmentEventUpdated, response)

	uc.Log.Info("appointmentUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *appointmentUsecase) Delete(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findExisting(ctx, appointmentID)
	if err != nil {
		return err
	}

	err = uc.AppointmentRepository.Delete(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Delete error calling AppointmentRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.publish(ctx, constvars.AppointmentEventDeleted, appointment.ConvertIntoResponse())

	uc.Log.Info("appointmentUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *appointmentUsecase) findExisting(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.findExisting error calling AppointmentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) findParticipants(ctx context.Context, studentID, instructorID string) (*models.Student, *models.Instructor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	student, err := uc.StudentRepository.FindByID(ctx, studentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.findParticipants error calling StudentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}
	if student == nil {
		return nil, nil, exceptions.ErrStudentNotFound(nil)
	}

	instructor, err := uc.InstructorRepository.FindByID(ctx, instructorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.findParticipants error calling InstructorRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}
	if instructor == nil {
		return nil, nil, exceptions.ErrInstructorNotFound(nil)
	}
	return student, instructor, nil
}

func (uc *appointmentUsecase) ensureNoOverlap(ctx context.Context, instructorID string, start, end time.Time, excludeID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	overlapping, err := uc.AppointmentRepository.FindOverlapping(ctx, instructorID, start, end, excludeID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ensureNoOverlap error calling AppointmentRepository.FindOverlapping",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if len(overlapping) > 0 {
		uc.Log.Info("appointmentUsecase.ensureNoOverlap instructor is busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInstructorIDKey, instructorID),
			zap.String(constvars.LoggingAppointmentIDKey, overlapping[0].ID.Hex()),
		)
		return exceptions.ErrAppointmentOverlap(nil)
	}
	return nil
}

// withInstructorLock runs fn while holding the instructor's booking lock so
// the overlap check and the write cannot interleave with another request.
func (uc *appointmentUsecase) withInstructorLock(ctx context.Context, instructorID string, fn func() error) error {
	release, err := uc.BookingLocker.LockInstructor(ctx, instructorID)
	if err != nil {
		return err
	}
	defer func() {
		err := release(context.WithoutCancel(ctx))
		if err != nil {
			uc.Log.Warn("appointmentUsecase.withInstructorLock error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingInstructorIDKey, instructorID),
				zap.Error(err),
			)
		}
	}()

	return fn()
}

// publish never fails the request; the write is already committed.
func (uc *appointmentUsecase) publish(ctx context.Context, eventType string, appointment responses.Appointment) {
	err := uc.EventPublisher.Publish(ctx, eventType, appointment)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("appointmentUsecase.publish error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}

func parseRange(startText, endText string) (time.Time, time.Time, error) {
	start, err := slots.ParseTimestamp(startText)
	if err != nil {
		return time.Time{}, time.Time{}, exceptions.ErrInvalidTimestamp(err)
	}
	end, err := slots.ParseTimestamp(endText)
	if err != nil {
		return time.Time{}, time.Time{}, exceptions.ErrInvalidTimestamp(err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, exceptions.ErrAppointmentEndBeforeStart(nil)
	}
	return start, end, nil
}
