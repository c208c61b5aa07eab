package board

import (
	"context"
	"errors"
	"fmt"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wednesday of the week starting Monday 2024-06-03
var fixedNow = time.Date(2024, time.June, 5, 11, 0, 0, 0, time.Local)

type fakeScheduleClient struct {
	mu sync.Mutex

	students     []responses.Student
	instructors  []responses.Instructor
	appointments []responses.Appointment

	studentsErr error
	createErr   error
	updateErr   error
	deleteErr   error

	created    []requests.CreateAppointment
	updated    map[string]requests.UpdateAppointment
	deletedIDs []string
	listCalls  int
	nextID     int
}

func newFakeScheduleClient() *fakeScheduleClient {
	return &fakeScheduleClient{
		students: []responses.Student{
			{ID: "s1", Name: "Ana Souza", TaxIDCPF: "12345678901", Phone: "11999990000"},
			{ID: "s2", Name: "Bruno Lima", TaxIDCPF: "10987654321", Phone: "11888880000"},
		},
		instructors: []responses.Instructor{
			{ID: "i1", Name: "Carla"},
			{ID: "i2", Name: "Diego"},
		},
		updated: make(map[string]requests.UpdateAppointment),
	}
}

func (f *fakeScheduleClient) ListStudents(ctx context.Context, search string) ([]responses.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.studentsErr != nil {
		return nil, f.studentsErr
	}
	return append([]responses.Student(nil), f.students...), nil
}

func (f *fakeScheduleClient) ListInstructors(ctx context.Context) ([]responses.Instructor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]responses.Instructor(nil), f.instructors...), nil
}

func (f *fakeScheduleClient) ListAppointments(ctx context.Context, date string) ([]responses.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]responses.Appointment(nil), f.appointments...), nil
}

func (f *fakeScheduleClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, *request)
	f.nextID++
	appointment := responses.Appointment{
		ID:           fmt.Sprintf("a%d", f.nextID),
		StudentID:    request.StudentID,
		InstructorID: request.InstructorID,
		StartTime:    request.StartTime,
		EndTime:      request.EndTime,
		Status:       request.Status,
		Notes:        request.Notes,
	}
	f.appointments = append(f.appointments, appointment)
	return &appointment, nil
}

func (f *fakeScheduleClient) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated[appointmentID] = *request
	for i := range f.appointments {
		if f.appointments[i].ID != appointmentID {
			continue
		}
		if request.StartTime != nil {
			f.appointments[i].StartTime = *request.StartTime
		}
		if request.EndTime != nil {
			f.appointments[i].EndTime = *request.EndTime
		}
		if request.Status != nil {
			f.appointments[i].Status = *request.Status
		}
		updated := f.appointments[i]
		return &updated, nil
	}
	return nil, &exceptions.RemoteError{StatusCode: 404, Detail: "Appointment not found"}
}

func (f *fakeScheduleClient) DeleteAppointment(ctx context.Context, appointmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, appointmentID)
	kept := f.appointments[:0]
	for _, appointment := range f.appointments {
		if appointment.ID != appointmentID {
			kept = append(kept, appointment)
		}
	}
	f.appointments = kept
	return nil
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

type fixedConfirmer struct {
	answer  bool
	prompts []string
}

func (c *fixedConfirmer) Confirm(ctx context.Context, prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

func newTestBoard(t *testing.T, client *fakeScheduleClient, confirm bool) (*Board, *recordingNotifier, *fixedConfirmer) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	notifier := &recordingNotifier{}
	confirmer := &fixedConfirmer{answer: confirm}
	board := NewBoard(client, notifier, confirmer, func() time.Time { return fixedNow }, logger)
	board.Reload(context.Background())
	return board, notifier, confirmer
}

func bookedAt(id, start string) responses.Appointment {
	return responses.Appointment{
		ID:           id,
		StudentID:    "s1",
		InstructorID: "i1",
		StartTime:    start,
		EndTime:      start[:11] + "10:00:00",
		Status:       constvars.AppointmentStatusBooked,
	}
}

func TestReload(t *testing.T) {
	t.Run("Failed list is shown as empty", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.studentsErr = errors.New("connection refused")
		client.appointments = []responses.Appointment{bookedAt("a1", "2024-06-03T09:00:00")}

		board, notifier, _ := newTestBoard(t, client, true)

		assert.Empty(t, board.Students())
		assert.Len(t, board.Instructors(), 2)
		assert.Equal(t, 1, board.Directory().Len())
		assert.Empty(t, notifier.errors, "list failures are silent")
	})
}

func TestGrid(t *testing.T) {
	client := newFakeScheduleClient()
	client.appointments = []responses.Appointment{bookedAt("a1", "2024-06-04T09:00:00")}
	board, _, _ := newTestBoard(t, client, true)

	grid := board.Grid()

	require.Len(t, grid, 9)
	for _, row := range grid {
		require.Len(t, row, 5)
	}
	assert.Equal(t, "2024-06-03", grid[0][0].Date)
	assert.Equal(t, "08:00", grid[0][0].Time)
	assert.Equal(t, "17:00", grid[8][4].Time)
	assert.Equal(t, "2024-06-07", grid[8][4].Date)

	occupied := grid[1][1]
	assert.True(t, occupied.Occupied())
	assert.Equal(t, "a1", occupied.Appointment.ID)
	assert.Equal(t, "Ana Souza", occupied.StudentName)
	assert.False(t, grid[1][0].Occupied())
}

func TestBookingFlow(t *testing.T) {
	t.Run("Confirmed booking sends a one hour booked appointment", func(t *testing.T) {
		client := newFakeScheduleClient()
		board, notifier, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "09:00"))
		booking, ok := board.State().(Booking)
		require.True(t, ok)
		assert.Equal(t, "2024-06-03", booking.Date)
		assert.Equal(t, "09:00", booking.Time)
		assert.Equal(t, "i1", booking.InstructorID, "first instructor is preselected")
		assert.Empty(t, booking.StudentID)

		require.NoError(t, board.SelectStudent("s2"))
		require.NoError(t, board.ConfirmBooking(context.Background()))

		require.Len(t, client.created, 1)
		assert.Equal(t, requests.CreateAppointment{
			StudentID:    "s2",
			InstructorID: "i1",
			StartTime:    "2024-06-03T09:00:00",
			EndTime:      "2024-06-03T10:00:00",
			Status:       "booked",
			Notes:        "Scheduled from calendar view",
		}, client.created[0])
		assert.Equal(t, ModeIdle, board.State().Mode())
		assert.Equal(t, []string{constvars.ToastBookingSucceeded}, notifier.successes)

		_, booked := board.Directory().AppointmentAt("2024-06-03T09:00")
		assert.True(t, booked, "directory is rebuilt after booking")
	})

	t.Run("Missing student fails validation without a remote call", func(t *testing.T) {
		client := newFakeScheduleClient()
		board, notifier, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(2, "14:00"))
		err := board.ConfirmBooking(context.Background())

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, constvars.ToastBookingInvalid, validationErr.Message)
		assert.Empty(t, client.created)
		assert.Equal(t, ModeBooking, board.State().Mode())
		assert.Equal(t, []string{constvars.ToastBookingInvalid}, notifier.errors)
	})

	t.Run("Server detail is shown and the form stays open", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.createErr = &exceptions.RemoteError{StatusCode: 409, Detail: "Instructor already has an appointment in this time range"}
		board, notifier, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "08:00"))
		require.NoError(t, board.SelectStudent("s1"))
		err := board.ConfirmBooking(context.Background())

		var remoteErr *RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "Instructor already has an appointment in this time range", remoteErr.Message)
		assert.Equal(t, []string{"Instructor already has an appointment in this time range"}, notifier.errors)
		assert.Equal(t, ModeBooking, board.State().Mode())
	})

	t.Run("Transport failure falls back to the generic message", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.createErr = errors.New("dial tcp: connection refused")
		board, notifier, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "08:00"))
		require.NoError(t, board.SelectStudent("s1"))
		require.Error(t, board.ConfirmBooking(context.Background()))

		assert.Equal(t, []string{constvars.ToastBookingFailed}, notifier.errors)
	})

	t.Run("No instructors leaves the instructor unselected", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.instructors = nil
		board, _, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "08:00"))

		booking := board.State().(Booking)
		assert.Empty(t, booking.InstructorID)
	})

	t.Run("Unknown slot is rejected", func(t *testing.T) {
		board, _, _ := newTestBoard(t, newFakeScheduleClient(), true)

		assert.Error(t, board.SelectCell(0, "13:00"))
		assert.Error(t, board.SelectCell(5, "08:00"))
		assert.Equal(t, ModeIdle, board.State().Mode())
	})
}

func TestSearchStudents(t *testing.T) {
	client := newFakeScheduleClient()
	client.students = nil
	for i := 0; i < 12; i++ {
		client.students = append(client.students, responses.Student{
			ID:       fmt.Sprintf("s%d", i),
			Name:     fmt.Sprintf("Student %02d", i),
			TaxIDCPF: fmt.Sprintf("000000000%02d", i),
			Phone:    "1199999" + fmt.Sprintf("%04d", i),
		})
	}
	board, _, _ := newTestBoard(t, client, true)

	t.Run("Only allowed while booking", func(t *testing.T) {
		_, err := board.SearchStudents("ana")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	require.NoError(t, board.SelectCell(0, "08:00"))

	t.Run("Blank term lists the first eight", func(t *testing.T) {
		result, err := board.SearchStudents("  ")
		require.NoError(t, err)
		assert.Len(t, result, 8)
		assert.Equal(t, "s0", result[0].ID)
	})

	t.Run("Matches name case insensitively", func(t *testing.T) {
		result, err := board.SearchStudents("STUDENT 1")
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Matches tax id and phone", func(t *testing.T) {
		byTaxID, err := board.SearchStudents("00000000011")
		require.NoError(t, err)
		require.Len(t, byTaxID, 1)
		assert.Equal(t, "s11", byTaxID[0].ID)

		byPhone, err := board.SearchStudents("11999990003")
		require.NoError(t, err)
		require.Len(t, byPhone, 1)
		assert.Equal(t, "s3", byPhone[0].ID)
	})

	t.Run("Selecting a student fills the search text", func(t *testing.T) {
		require.NoError(t, board.SelectStudent("s4"))

		booking := board.State().(Booking)
		assert.Equal(t, "s4", booking.StudentID)
		assert.Equal(t, "Student 04", booking.SearchText)
		assert.Len(t, board.Candidates(), 1)
	})
}

func TestDetailFlow(t *testing.T) {
	t.Run("Occupied cell opens a read only detail", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.appointments = []responses.Appointment{bookedAt("a1", "2024-06-03T09:00:00")}
		board, _, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "09:00"))

		detail, ok := board.State().(Detail)
		require.True(t, ok)
		assert.Equal(t, EditForm{Date: "2024-06-03", Time: "09:00", Status: "booked"}, detail.Form)
		assert.ErrorIs(t, board.SetEditStatus("completed"), ErrInvalidTransition)
	})

	t.Run("Edited status reaches the rebuilt directory", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.appointments = []responses.Appointment{bookedAt("a1", "2024-06-03T09:00:00")}
		board, notifier, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "09:00"))
		require.NoError(t, board.StartEditing())
		require.NoError(t, board.SetEditStatus("completed"))
		require.NoError(t, board.SaveEdit(context.Background()))

		detail, ok := board.State().(Detail)
		require.True(t, ok, "saving returns to the detail view")
		assert.Equal(t, "completed", detail.Appointment.Status)

		rebuilt, found := board.Directory().AppointmentAt("2024-06-03T09:00")
		require.True(t, found)
		assert.Equal(t, "completed", rebuilt.Status)
		assert.Equal(t, []string{constvars.ToastEditSucceeded}, notifier.successes)

		sent := client.updated["a1"]
		assert.Equal(t, "2024-06-03T09:00:00", *sent.StartTime)
		assert.Equal(t, "2024-06-03T10:00:00", *sent.EndTime)
	})

	t.Run("Moving an appointment recomputes both bounds", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.appointments = []responses.Appointment{bookedAt("a1", "2024-06-03T09:00:00")}
		board, _, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "09:00"))
		require.NoError(t, board.StartEditing())
		require.NoError(t, board.SetEditDate("2024-06-06"))
		require.NoError(t, board.SetEditTime("16:00"))
		require.NoError(t, board.SaveEdit(context.Background()))

		sent := client.updated["a1"]
		assert.Equal(t, "2024-06-06T16:00:00", *sent.StartTime)
		assert.Equal(t, "2024-06-06T17:00:00", *sent.EndTime)
		_, moved := board.Directory().AppointmentAt("2024-06-06T16:00")
		assert.True(t, moved)
	})

	t.Run("Invalid status fails validation", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.appointments = []responses.Appointment{bookedAt("a1", "2024-06-03T09:00:00")}
		board, notifier, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "09:00"))
		require.NoError(t, board.StartEditing())
		require.NoError(t, board.SetEditStatus("no-show"))
		err := board.SaveEdit(context.Background())

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Empty(t, client.updated)
		assert.Equal(t, ModeEditing, board.State().Mode())
		assert.Equal(t, []string{constvars.ToastEditInvalid}, notifier.errors)
	})

	t.Run("Failed save keeps editing", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.appointments = []responses.Appointment{bookedAt("a1", "2024-06-03T09:00:00")}
		client.updateErr = &exceptions.RemoteError{StatusCode: 500}
		board, notifier, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "09:00"))
		require.NoError(t, board.StartEditing())
		require.Error(t, board.SaveEdit(context.Background()))

		assert.Equal(t, ModeEditing, board.State().Mode())
		assert.Equal(t, []string{constvars.ToastEditFailed}, notifier.errors)
	})

	t.Run("Declined delete changes nothing", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.appointments = []responses.Appointment{bookedAt("a1", "2024-06-03T09:00:00")}
		board, notifier, confirmer := newTestBoard(t, client, false)

		require.NoError(t, board.SelectCell(0, "09:00"))
		before := board.State()
		require.NoError(t, board.Delete(context.Background()))

		assert.Empty(t, client.deletedIDs)
		assert.Equal(t, before, board.State())
		assert.Equal(t, []string{constvars.ToastDeleteConfirm}, confirmer.prompts)
		assert.Empty(t, notifier.successes)
	})

	t.Run("Confirmed delete returns to idle", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.appointments = []responses.Appointment{bookedAt("a1", "2024-06-03T09:00:00")}
		board, notifier, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "09:00"))
		require.NoError(t, board.StartEditing())
		require.NoError(t, board.Delete(context.Background()))

		assert.Equal(t, []string{"a1"}, client.deletedIDs)
		assert.Equal(t, ModeIdle, board.State().Mode())
		assert.Equal(t, 0, board.Directory().Len())
		assert.Equal(t, []string{constvars.ToastDeleteSucceeded}, notifier.successes)
	})

	t.Run("Failed delete keeps the state", func(t *testing.T) {
		client := newFakeScheduleClient()
		client.appointments = []responses.Appointment{bookedAt("a1", "2024-06-03T09:00:00")}
		client.deleteErr = &exceptions.RemoteError{StatusCode: 404, Detail: "Appointment not found"}
		board, notifier, _ := newTestBoard(t, client, true)

		require.NoError(t, board.SelectCell(0, "09:00"))
		require.Error(t, board.Delete(context.Background()))

		assert.Equal(t, ModeDetail, board.State().Mode())
		assert.Equal(t, []string{"Appointment not found"}, notifier.errors)
	})
}

func TestInvalidTransitions(t *testing.T) {
	board, _, _ := newTestBoard(t, newFakeScheduleClient(), true)

	assert.ErrorIs(t, board.StartEditing(), ErrInvalidTransition)
	assert.ErrorIs(t, board.ConfirmBooking(context.Background()), ErrInvalidTransition)
	assert.ErrorIs(t, board.SaveEdit(context.Background()), ErrInvalidTransition)
	assert.ErrorIs(t, board.Delete(context.Background()), ErrInvalidTransition)
	assert.ErrorIs(t, board.SelectStudent("s1"), ErrInvalidTransition)

	require.NoError(t, board.SelectCell(0, "08:00"))
	assert.ErrorIs(t, board.SelectCell(1, "08:00"), ErrInvalidTransition)

	board.Close()
	assert.Equal(t, ModeIdle, board.State().Mode())
}
