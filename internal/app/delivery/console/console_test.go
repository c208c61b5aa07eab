package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"pilates-vision-service/internal/app/config"
	"pilates-vision-service/internal/app/services/console/board"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wednesday of the week starting Monday 2024-06-03
var fixedNow = time.Date(2024, time.June, 5, 11, 0, 0, 0, time.Local)

type fakeStudioClient struct {
	mu sync.Mutex

	students     []responses.Student
	instructors  []responses.Instructor
	appointments []responses.Appointment

	planErr error

	created       []requests.CreateAppointment
	updated       map[string]requests.UpdateAppointment
	deletedIDs    []string
	deleteBounded bool
	analyzed      []string
	searchedTerms []string
}

func newFakeStudioClient() *fakeStudioClient {
	return &fakeStudioClient{
		students: []responses.Student{
			{ID: "s1", Name: "Ana Souza", TaxIDCPF: "12345678901", Phone: "11999990000"},
			{ID: "s2", Name: "Bruno Lima", TaxIDCPF: "10987654321", Phone: "11888880000"},
		},
		instructors: []responses.Instructor{
			{ID: "i1", Name: "Carla", Email: "carla@studio.test"},
			{ID: "i2", Name: "Diego", Email: "diego@studio.test"},
		},
		appointments: []responses.Appointment{
			{ID: "a1", StudentID: "s2", InstructorID: "i1", StartTime: "2024-06-05T10:00:00", EndTime: "2024-06-05T11:00:00", Status: constvars.AppointmentStatusBooked},
		},
		updated: make(map[string]requests.UpdateAppointment),
	}
}

func (f *fakeStudioClient) ListStudents(ctx context.Context, search string) ([]responses.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if search != "" {
		f.searchedTerms = append(f.searchedTerms, search)
		result := make([]responses.Student, 0)
		for _, student := range f.students {
			if strings.Contains(strings.ToLower(student.Name), strings.ToLower(search)) {
				result = append(result, student)
			}
		}
		return result, nil
	}
	return append([]responses.Student(nil), f.students...), nil
}

func (f *fakeStudioClient) ListInstructors(ctx context.Context) ([]responses.Instructor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]responses.Instructor(nil), f.instructors...), nil
}

func (f *fakeStudioClient) ListAppointments(ctx context.Context, date string) ([]responses.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]responses.Appointment(nil), f.appointments...), nil
}

func (f *fakeStudioClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, *request)
	appointment := responses.Appointment{
		ID:           fmt.Sprintf("new-%d", len(f.created)),
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

func (f *fakeStudioClient) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated[appointmentID] = *request
	for i, appointment := range f.appointments {
		if appointment.ID == appointmentID {
			f.appointments[i].StartTime = *request.StartTime
			f.appointments[i].EndTime = *request.EndTime
			f.appointments[i].Status = *request.Status
			updated := f.appointments[i]
			return &updated, nil
		}
	}
	return nil, &exceptions.RemoteError{StatusCode: 404, Detail: "Appointment not found"}
}

func (f *fakeStudioClient) DeleteAppointment(ctx context.Context, appointmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedIDs = append(f.deletedIDs, appointmentID)
	_, f.deleteBounded = ctx.Deadline()
	kept := f.appointments[:0]
	for _, appointment := range f.appointments {
		if appointment.ID != appointmentID {
			kept = append(kept, appointment)
		}
	}
	f.appointments = kept
	return nil
}

func (f *fakeStudioClient) CreateStudent(ctx context.Context, request *requests.CreateStudent) (*responses.Student, error) {
	return nil, errors.New("not used")
}

func (f *fakeStudioClient) UpdateStudent(ctx context.Context, studentID string, request *requests.UpdateStudent) (*responses.Student, error) {
	return nil, errors.New("not used")
}

func (f *fakeStudioClient) DeleteStudent(ctx context.Context, studentID string) error {
	return errors.New("not used")
}

func (f *fakeStudioClient) CreateInstructor(ctx context.Context, request *requests.CreateInstructor) (*responses.Instructor, error) {
	return nil, errors.New("not used")
}

func (f *fakeStudioClient) UpdateInstructor(ctx context.Context, instructorID string, request *requests.UpdateInstructor) (*responses.Instructor, error) {
	return nil, errors.New("not used")
}

func (f *fakeStudioClient) DeleteInstructor(ctx context.Context, instructorID string) error {
	return errors.New("not used")
}

func (f *fakeStudioClient) AnalyzePosture(ctx context.Context, studentID, language, fileName string, image []byte) (*responses.PostureAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyzed = append(f.analyzed, studentID+"|"+language+"|"+fileName+"|"+string(image))
	return &responses.PostureAnalysis{
		Status:             "ok",
		DetectedDeviations: []string{"Forward head posture"},
		ClinicalAnalysis:   "Neck flexor weakness.",
		AssessmentID:       "as1",
	}, nil
}

func (f *fakeStudioClient) GenerateWorkoutPlan(ctx context.Context, studentID, language string) (*responses.WorkoutPlan, error) {
	if f.planErr != nil {
		return nil, f.planErr
	}
	return &responses.WorkoutPlan{WorkoutPlan: []responses.WorkoutExercise{
		{ExerciseName: "Hundred", Sets: "3", Reps: "10-12", ClinicalReason: "Core"},
	}}, nil
}

func (f *fakeStudioClient) Health(ctx context.Context) (*responses.Health, error) {
	return &responses.Health{Status: constvars.HealthStatusOK}, nil
}

type session struct {
	client  *fakeStudioClient
	out     *bytes.Buffer
	saved   []config.Preferences
	saveErr error
}

func runScript(t *testing.T, client *fakeStudioClient, preferences config.Preferences, script ...string) *session {
	t.Helper()
	s := &session{client: client, out: new(bytes.Buffer)}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	lines := NewLines(strings.NewReader(strings.Join(script, "\n") + "\n"))
	notifier := NewToastNotifier(s.out, preferences.Theme, logger)
	scheduleBoard := board.NewBoard(client, notifier, NewPromptConfirmer(lines, s.out), func() time.Time { return fixedNow }, logger)
	save := func(p config.Preferences) error {
		s.saved = append(s.saved, p)
		return s.saveErr
	}

	c := NewConsole(lines, s.out, scheduleBoard, client, notifier, preferences, save, time.Second, logger)
	require.NoError(t, c.Run(context.Background()))
	return s
}

func TestConsoleBooking(t *testing.T) {
	client := newFakeStudioClient()

	s := runScript(t, client, config.DefaultPreferences(),
		"open 1 08:00",
		"search ana",
		"student 1",
		"instructor 2",
		"book",
		"quit",
	)

	require.Len(t, client.created, 1)
	created := client.created[0]
	assert.Equal(t, "s1", created.StudentID)
	assert.Equal(t, "i2", created.InstructorID)
	assert.Equal(t, "2024-06-03T08:00:00", created.StartTime)
	assert.Equal(t, "2024-06-03T09:00:00", created.EndTime)
	assert.Equal(t, constvars.AppointmentNotesFromCalendar, created.Notes)
	assert.Contains(t, s.out.String(), constvars.ToastBookingSucceeded)
	assert.Contains(t, s.out.String(), "New booking")
}

func TestConsoleBookingWithoutStudent(t *testing.T) {
	client := newFakeStudioClient()

	s := runScript(t, client, config.DefaultPreferences(), "open 2 09:00", "book")

	assert.Empty(t, client.created)
	assert.Contains(t, s.out.String(), constvars.ToastBookingInvalid)
	assert.Contains(t, s.out.String(), "pilates[booking]>")
}

func TestConsoleDelete(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		client := newFakeStudioClient()

		s := runScript(t, client, config.DefaultPreferences(), "open 3 10:00", "delete", "n")

		assert.Empty(t, client.deletedIDs)
		assert.Contains(t, s.out.String(), constvars.ToastDeleteConfirm)
		assert.Contains(t, s.out.String(), "Bruno Lima")
		assert.Contains(t, s.out.String(), "pilates[detail]>")
	})

	t.Run("confirmed", func(t *testing.T) {
		client := newFakeStudioClient()

		s := runScript(t, client, config.DefaultPreferences(), "open 3 10:00", "delete", "sim")

		assert.Equal(t, []string{"a1"}, client.deletedIDs)
		assert.Contains(t, s.out.String(), constvars.ToastDeleteSucceeded)
	})

	t.Run("answer slower than the request timeout", func(t *testing.T) {
		client := newFakeStudioClient()
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		out := new(bytes.Buffer)
		notifier := NewToastNotifier(out, constvars.ThemeLight, logger)

		reader, writer := io.Pipe()
		go func() {
			defer writer.Close()
			fmt.Fprint(writer, "open 3 10:00\ndelete\n")
			time.Sleep(100 * time.Millisecond)
			fmt.Fprint(writer, "y\nboard\n")
		}()

		lines := NewLines(reader)
		scheduleBoard := board.NewBoard(client, notifier, NewPromptConfirmer(lines, out), func() time.Time { return fixedNow }, logger)
		c := NewConsole(lines, out, scheduleBoard, client, notifier, config.DefaultPreferences(),
			func(config.Preferences) error { return nil }, 50*time.Millisecond, logger)

		require.NoError(t, c.Run(context.Background()))

		assert.Equal(t, []string{"a1"}, client.deletedIDs)
		assert.True(t, client.deleteBounded)
		assert.Equal(t, board.ModeIdle, scheduleBoard.State().Mode())
		assert.Contains(t, out.String(), constvars.ToastDeleteSucceeded)
		assert.NotContains(t, out.String(), `unknown command "y"`)
	})
}

func TestConsoleEdit(t *testing.T) {
	client := newFakeStudioClient()

	s := runScript(t, client, config.DefaultPreferences(),
		"open 3 10:00",
		"status",
		"edit",
		"time 15:00",
		"status CANCELED",
		"save",
	)

	update, found := client.updated["a1"]
	require.True(t, found)
	assert.Equal(t, "2024-06-05T15:00:00", *update.StartTime)
	assert.Equal(t, "2024-06-05T16:00:00", *update.EndTime)
	assert.Equal(t, constvars.AppointmentStatusCanceled, *update.Status)
	assert.Contains(t, s.out.String(), "usage: status <status>")
	assert.Contains(t, s.out.String(), constvars.ToastEditSucceeded)
}

func TestConsoleRejectsCommandsOutOfState(t *testing.T) {
	client := newFakeStudioClient()

	s := runScript(t, client, config.DefaultPreferences(), "book", "open 7 08:00", "dance")

	assert.Contains(t, s.out.String(), "not available while idle")
	assert.Contains(t, s.out.String(), constvars.ToastBookingInvalid)
	assert.Contains(t, s.out.String(), `unknown command "dance"`)
}

func TestConsolePreferences(t *testing.T) {
	t.Run("saved and applied", func(t *testing.T) {
		client := newFakeStudioClient()

		s := runScript(t, client, config.DefaultPreferences(), "lang pt", "theme dark", "board", "lang es")

		require.Len(t, s.saved, 2)
		assert.Equal(t, config.Preferences{Language: constvars.LanguagePortuguese, Theme: constvars.ThemeDark}, s.saved[1])
		assert.Contains(t, s.out.String(), "Seg 06-03")
		assert.Contains(t, s.out.String(), constvars.ToastPreferencesInvalid)
	})

	t.Run("save failure still applies for the session", func(t *testing.T) {
		client := newFakeStudioClient()
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		out := new(bytes.Buffer)
		notifier := NewToastNotifier(out, constvars.ThemeLight, logger)
		lines := NewLines(strings.NewReader(""))
		scheduleBoard := board.NewBoard(client, notifier, NewPromptConfirmer(lines, out), func() time.Time { return fixedNow }, logger)
		c := NewConsole(lines, out, scheduleBoard, client, notifier, config.DefaultPreferences(),
			func(config.Preferences) error { return errors.New("read-only file system") }, time.Second, logger)

		require.NoError(t, c.Execute(context.Background(), "theme dark"))

		assert.Equal(t, constvars.ThemeDark, notifier.Theme)
		assert.Contains(t, out.String(), constvars.ToastPreferencesFailed)
	})
}

func TestConsoleAnalyzeAndPlan(t *testing.T) {
	image := filepath.Join(t.TempDir(), "side.png")
	require.NoError(t, os.WriteFile(image, []byte("png"), 0o600))

	t.Run("analyze a listed student", func(t *testing.T) {
		client := newFakeStudioClient()

		s := runScript(t, client, config.DefaultPreferences(), "students bruno", "analyze 1 "+image+" PT")

		assert.Equal(t, []string{"bruno"}, client.searchedTerms)
		assert.Equal(t, []string{"s2|pt|side.png|png"}, client.analyzed)
		assert.Contains(t, s.out.String(), "Forward head posture")
		assert.Contains(t, s.out.String(), constvars.ToastAnalysisSucceeded)
	})

	t.Run("unreadable image", func(t *testing.T) {
		client := newFakeStudioClient()

		s := runScript(t, client, config.DefaultPreferences(), "analyze s1 "+filepath.Join(t.TempDir(), "missing.png"))

		assert.Empty(t, client.analyzed)
		assert.Contains(t, s.out.String(), constvars.ToastImageUnreadable)
	})

	t.Run("plan", func(t *testing.T) {
		client := newFakeStudioClient()

		s := runScript(t, client, config.DefaultPreferences(), "plan s1")

		assert.Contains(t, s.out.String(), "Hundred")
		assert.Contains(t, s.out.String(), constvars.ToastPlanSucceeded)
	})

	t.Run("plan shows the server detail", func(t *testing.T) {
		client := newFakeStudioClient()
		client.planErr = &exceptions.RemoteError{StatusCode: 404, Detail: constvars.ErrClientStudentNotFound}

		s := runScript(t, client, config.DefaultPreferences(), "plan s9")

		assert.Contains(t, s.out.String(), constvars.ErrClientStudentNotFound)
		assert.NotContains(t, s.out.String(), constvars.ToastPlanFailed)
	})
}

func TestLines(t *testing.T) {
	lines := NewLines(strings.NewReader("  first  \nsecond"))
	ctx := context.Background()

	line, err := lines.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = lines.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	_, err = lines.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)

	blocked := NewLines(&blockingReader{})
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = blocked.Next(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

type blockingReader struct{}

func (blockingReader) Read(p []byte) (int, error) {
	select {}
}

func TestPromptConfirmer(t *testing.T) {
	out := new(bytes.Buffer)
	confirmer := NewPromptConfirmer(NewLines(strings.NewReader("YES\nno\n")), out)

	assert.True(t, confirmer.Confirm(context.Background(), "Sure?"))
	assert.False(t, confirmer.Confirm(context.Background(), "Sure?"))
	assert.False(t, confirmer.Confirm(context.Background(), "Sure?"))
	assert.Equal(t, 3, strings.Count(out.String(), "Sure? [y/N]: "))
}
