// Package board is the weekly scheduling board of the console: a five day by
// nine slot grid of appointments plus the booking, detail and edit flows
// driven against the studio API.
//
// A Board is owned by a single goroutine. Only Reload fans out internally.
package board

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/services/console/directory"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/slots"
	"pilates-vision-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Notifier shows transient toasts to the operator.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Cell is one slot of the grid. Appointment is nil for a free slot.
type Cell struct {
	Day         int
	Date        string
	Time        string
	SlotKey     string
	Appointment *responses.Appointment
	StudentName string
}

func (c Cell) Occupied() bool {
	return c.Appointment != nil
}

type Board struct {
	Log *logrus.Logger

	client    contracts.ScheduleClient
	notifier  Notifier
	confirmer Confirmer
	now       func() time.Time
	timeout   time.Duration

	state        State
	students     []responses.Student
	instructors  []responses.Instructor
	appointments []responses.Appointment
	directory    *directory.Directory
}

func NewBoard(client contracts.ScheduleClient, notifier Notifier, confirmer Confirmer, now func() time.Time, logger *logrus.Logger) *Board {
	if now == nil {
		now = time.Now
	}
	return &Board{
		Log:       logger,
		client:    client,
		notifier:  notifier,
		confirmer: confirmer,
		now:       now,
		state:     Idle{},
		directory: directory.Build(nil, nil, nil),
	}
}

// SetCallTimeout bounds every request to the studio API. Operator prompts
// are never bounded. Zero disables the limit.
func (b *Board) SetCallTimeout(timeout time.Duration) {
	b.timeout = timeout
}

func (b *Board) remoteContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.timeout)
}

func (b *Board) State() State {
	return b.state
}

func (b *Board) Directory() *directory.Directory {
	return b.directory
}

func (b *Board) Students() []responses.Student {
	return b.students
}

func (b *Board) Instructors() []responses.Instructor {
	return b.instructors
}

// Reload fetches students, instructors and appointments concurrently and
// swaps the directory once all three calls returned. A failed list is
// replaced by an empty one.
func (b *Board) Reload(ctx context.Context) {
	var (
		wg                                           sync.WaitGroup
		students                                     []responses.Student
		instructors                                  []responses.Instructor
		appointments                                 []responses.Appointment
		studentsErr, instructorsErr, appointmentsErr error
	)

	ctx, cancel := b.remoteContext(ctx)
	defer cancel()

	wg.Add(3)
	go func() {
		defer wg.Done()
		students, studentsErr = b.client.ListStudents(ctx, "")
	}()
	go func() {
		defer wg.Done()
		instructors, instructorsErr = b.client.ListInstructors(ctx)
	}()
	go func() {
		defer wg.Done()
		appointments, appointmentsErr = b.client.ListAppointments(ctx, "")
	}()
	wg.Wait()

	if studentsErr != nil {
		b.Log.WithError(studentsErr).Warn("board.Reload students unavailable, showing none")
		students = nil
	}
	if instructorsErr != nil {
		b.Log.WithError(instructorsErr).Warn("board.Reload instructors unavailable, showing none")
		instructors = nil
	}
	if appointmentsErr != nil {
		b.Log.WithError(appointmentsErr).Warn("board.Reload appointments unavailable, showing none")
		appointments = nil
	}

	b.students = students
	b.instructors = instructors
	b.appointments = appointments
	b.directory = directory.Build(appointments, students, instructors)

	b.Log.WithFields(logrus.Fields{
		constvars.LoggingStudentCountKey:     len(students),
		constvars.LoggingInstructorCountKey:  len(instructors),
		constvars.LoggingAppointmentCountKey: len(appointments),
	}).Debug("board.Reload succeeded")
}

// Grid returns one row per time slot and one column per weekday of the
// current week.
func (b *Board) Grid() [][]Cell {
	now := b.now()
	dates := make([]string, len(slots.Weekdays))
	for day := range slots.Weekdays {
		dates[day] = slots.DateForWeekdayIndex(now, day)
	}

	grid := make([][]Cell, len(slots.TimeSlots))
	for row, clock := range slots.TimeSlots {
		grid[row] = make([]Cell, len(slots.Weekdays))
		for day, date := range dates {
			cell := Cell{
				Day:     day,
				Date:    date,
				Time:    clock,
				SlotKey: slots.SlotKey(slots.CombineDateAndTime(date, clock)),
			}
			if appointment, ok := b.directory.AppointmentAt(cell.SlotKey); ok {
				cell.Appointment = &appointment
				cell.StudentName = b.directory.StudentName(appointment.StudentID)
			}
			grid[row][day] = cell
		}
	}
	return grid
}

// SelectCell opens the detail view for an occupied slot or the booking form
// for a free one.
func (b *Board) SelectCell(day int, clock string) error {
	if _, ok := b.state.(Idle); !ok {
		return invalidTransition("select cell", b.state.Mode())
	}
	if day < 0 || day >= len(slots.Weekdays) || !isTimeSlot(clock) {
		return &ValidationError{Message: constvars.ToastBookingInvalid}
	}

	date := slots.DateForWeekdayIndex(b.now(), day)
	key := slots.SlotKey(slots.CombineDateAndTime(date, clock))
	if appointment, ok := b.directory.AppointmentAt(key); ok {
		b.state = Detail{Appointment: appointment, Form: formFrom(appointment)}
		return nil
	}

	booking := Booking{Date: date, Time: clock}
	if len(b.instructors) > 0 {
		booking.InstructorID = b.instructors[0].ID
	}
	b.state = booking
	return nil
}

// SearchStudents stores the search text and returns the matching candidates.
func (b *Board) SearchStudents(term string) ([]responses.Student, error) {
	booking, ok := b.state.(Booking)
	if !ok {
		return nil, invalidTransition("search students", b.state.Mode())
	}
	booking.SearchText = term
	b.state = booking
	return filterStudents(b.students, term), nil
}

// Candidates lists the students matching the current search text.
func (b *Board) Candidates() []responses.Student {
	booking, ok := b.state.(Booking)
	if !ok {
		return nil
	}
	return filterStudents(b.students, booking.SearchText)
}

func (b *Board) SelectStudent(studentID string) error {
	booking, ok := b.state.(Booking)
	if !ok {
		return invalidTransition("select student", b.state.Mode())
	}
	student, found := b.directory.Student(studentID)
	if !found {
		return &ValidationError{Message: constvars.ToastBookingInvalid}
	}
	booking.StudentID = student.ID
	booking.SearchText = student.Name
	b.state = booking
	return nil
}

func (b *Board) SelectInstructor(instructorID string) error {
	booking, ok := b.state.(Booking)
	if !ok {
		return invalidTransition("select instructor", b.state.Mode())
	}
	if _, found := b.directory.Instructor(instructorID); !found {
		return &ValidationError{Message: constvars.ToastBookingInvalid}
	}
	booking.InstructorID = instructorID
	b.state = booking
	return nil
}

// ConfirmBooking books the selected slot for one hour. On failure the
// booking form stays open.
func (b *Board) ConfirmBooking(ctx context.Context) error {
	booking, ok := b.state.(Booking)
	if !ok {
		return invalidTransition("confirm booking", b.state.Mode())
	}
	if booking.StudentID == "" || booking.InstructorID == "" || booking.Date == "" || booking.Time == "" {
		b.notifier.Error(constvars.ToastBookingInvalid)
		return &ValidationError{Message: constvars.ToastBookingInvalid}
	}

	startTime, endTime := slots.SessionBounds(booking.Date, booking.Time)
	callCtx, cancel := b.remoteContext(ctx)
	_, err := b.client.CreateAppointment(callCtx, &requests.CreateAppointment{
		StudentID:    booking.StudentID,
		InstructorID: booking.InstructorID,
		StartTime:    startTime,
		EndTime:      endTime,
		Status:       constvars.AppointmentStatusBooked,
		Notes:        constvars.AppointmentNotesFromCalendar,
	})
	cancel()
	if err != nil {
		return b.remoteFailure(err, constvars.ToastBookingFailed)
	}

	b.Reload(ctx)
	b.notifier.Success(constvars.ToastBookingSucceeded)
	b.state = Idle{}
	return nil
}

func (b *Board) StartEditing() error {
	detail, ok := b.state.(Detail)
	if !ok {
		return invalidTransition("start editing", b.state.Mode())
	}
	b.state = Editing(detail)
	return nil
}

func (b *Board) SetEditDate(date string) error {
	return b.updateForm("set edit date", func(form *EditForm) { form.Date = date })
}

func (b *Board) SetEditTime(clock string) error {
	return b.updateForm("set edit time", func(form *EditForm) { form.Time = clock })
}

func (b *Board) SetEditStatus(status string) error {
	return b.updateForm("set edit status", func(form *EditForm) { form.Status = status })
}

// SaveEdit moves the appointment to the edited one hour slot and status. On
// success the detail view shows the server's copy.
func (b *Board) SaveEdit(ctx context.Context) error {
	editing, ok := b.state.(Editing)
	if !ok {
		return invalidTransition("save edit", b.state.Mode())
	}
	form := editing.Form
	if !slots.IsDate(form.Date) || !slots.IsClock(form.Time) || !utils.IsAppointmentStatus(form.Status) {
		b.notifier.Error(constvars.ToastEditInvalid)
		return &ValidationError{Message: constvars.ToastEditInvalid}
	}

	startTime, endTime := slots.SessionBounds(form.Date, form.Time)
	status := form.Status
	callCtx, cancel := b.remoteContext(ctx)
	updated, err := b.client.UpdateAppointment(callCtx, editing.Appointment.ID, &requests.UpdateAppointment{
		StartTime: &startTime,
		EndTime:   &endTime,
		Status:    &status,
	})
	cancel()
	if err != nil {
		return b.remoteFailure(err, constvars.ToastEditFailed)
	}

	appointment := editing.Appointment
	if updated != nil {
		appointment = *updated
	} else {
		appointment.StartTime, appointment.EndTime, appointment.Status = startTime, endTime, status
	}

	b.Reload(ctx)
	b.notifier.Success(constvars.ToastEditSucceeded)
	b.state = Detail{Appointment: appointment, Form: formFrom(appointment)}
	return nil
}

// Delete removes the shown appointment after the operator confirms.
// Declining leaves everything as it was.
func (b *Board) Delete(ctx context.Context) error {
	var appointment responses.Appointment
	switch state := b.state.(type) {
	case Detail:
		appointment = state.Appointment
	case Editing:
		appointment = state.Appointment
	default:
		return invalidTransition("delete", b.state.Mode())
	}

	if !b.confirmer.Confirm(ctx, constvars.ToastDeleteConfirm) {
		return nil
	}

	callCtx, cancel := b.remoteContext(ctx)
	err := b.client.DeleteAppointment(callCtx, appointment.ID)
	cancel()
	if err != nil {
		return b.remoteFailure(err, constvars.ToastDeleteFailed)
	}

	b.Reload(ctx)
	b.notifier.Success(constvars.ToastDeleteSucceeded)
	b.state = Idle{}
	return nil
}

// Close returns to Idle from any state, discarding unsaved input.
func (b *Board) Close() {
	b.state = Idle{}
}

func (b *Board) updateForm(operation string, apply func(form *EditForm)) error {
	editing, ok := b.state.(Editing)
	if !ok {
		return invalidTransition(operation, b.state.Mode())
	}
	apply(&editing.Form)
	b.state = editing
	return nil
}

func (b *Board) remoteFailure(err error, fallback string) error {
	message := exceptions.DisplayMessage(err, fallback)
	b.Log.WithError(err).Error(message)
	b.notifier.Error(message)
	return &RemoteError{Message: message, Err: err}
}

func formFrom(appointment responses.Appointment) EditForm {
	return EditForm{
		Date:   slots.DateOf(appointment.StartTime),
		Time:   slots.ClockOf(appointment.StartTime),
		Status: appointment.Status,
	}
}

func isTimeSlot(clock string) bool {
	for _, slot := range slots.TimeSlots {
		if slot == clock {
			return true
		}
	}
	return false
}
