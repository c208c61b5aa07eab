package studioapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *studioClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger, _ := test.NewNullLogger()
	return NewStudioClient(server.URL+"/api/v1/", 5*time.Second, logger).(*studioClient)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestListStudents(t *testing.T) {
	t.Run("Decodes the studio envelope and forwards the search term", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/v1/students", r.URL.Path)
			assert.Equal(t, "ana", r.URL.Query().Get("q"))
			assert.NotEmpty(t, r.Header.Get(constvars.HeaderXRequestID))
			writeJSON(w, http.StatusOK, `{"success":true,"message":"get students successfully","data":[{"id":"s1","name":"Ana","tax_id_cpf":"12345678901","phone":"11999990000"}]}`)
		})

		students, err := client.ListStudents(context.Background(), "ana")

		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, "s1", students[0].ID)
		assert.Equal(t, "Ana", students[0].Name)
	})

	t.Run("Omits an empty search term", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			writeJSON(w, http.StatusOK, `{"success":true,"data":[]}`)
		})

		students, err := client.ListStudents(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, students)
	})
}

func TestListAppointments(t *testing.T) {
	t.Run("Accepts a bare JSON list", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2024-06-03", r.URL.Query().Get("date"))
			writeJSON(w, http.StatusOK, `[{"id":"a1","student_id":"s1","instructor_id":"i1","start_time":"2024-06-03T09:00:00","end_time":"2024-06-03T10:00:00","status":"booked"}]`)
		})

		appointments, err := client.ListAppointments(context.Background(), "2024-06-03")

		require.NoError(t, err)
		require.Len(t, appointments, 1)
		assert.Equal(t, "2024-06-03T09:00:00", appointments[0].StartTime)
	})

	t.Run("Propagates the request id from the context", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "req-123", r.Header.Get(constvars.HeaderXRequestID))
			writeJSON(w, http.StatusOK, `[]`)
		})
		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-123")

		_, err := client.ListAppointments(ctx, "")

		require.NoError(t, err)
	})
}

func TestCreateAppointment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/appointments", r.URL.Path)
		assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "s1", payload["student_id"])
		assert.Equal(t, "2024-06-03T09:00:00", payload["start_time"])
		assert.Equal(t, "2024-06-03T10:00:00", payload["end_time"])
		assert.Equal(t, "booked", payload["status"])

		writeJSON(w, http.StatusCreated, `{"success":true,"data":{"id":"a9","student_id":"s1","instructor_id":"i1","start_time":"2024-06-03T09:00:00","end_time":"2024-06-03T10:00:00","status":"booked"}}`)
	})

	created, err := client.CreateAppointment(context.Background(), &requests.CreateAppointment{
		StudentID:    "s1",
		InstructorID: "i1",
		StartTime:    "2024-06-03T09:00:00",
		EndTime:      "2024-06-03T10:00:00",
		Status:       "booked",
	})

	require.NoError(t, err)
	assert.Equal(t, "a9", created.ID)
}

func TestUpdateAppointment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/appointments/a1", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, map[string]interface{}{"status": "completed"}, payload, "only changed fields are sent")

		writeJSON(w, http.StatusOK, `{"id":"a1","status":"completed"}`)
	})
	status := "completed"

	updated, err := client.UpdateAppointment(context.Background(), "a1", &requests.UpdateAppointment{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("Envelope without data", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			writeJSON(w, http.StatusOK, `{"success":true,"message":"appointment deleted successfully"}`)
		})

		assert.NoError(t, client.DeleteAppointment(context.Background(), "a1"))
	})

	t.Run("No content", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		assert.NoError(t, client.DeleteAppointment(context.Background(), "a1"))
	})
}

func TestRemoteErrors(t *testing.T) {
	cases := []struct {
		name           string
		status         int
		body           string
		expectedDetail string
		expectedToast  string
	}{
		{
			name:           "String detail is shown verbatim",
			status:         http.StatusConflict,
			body:           `{"detail":"Instructor already has an appointment in this time range"}`,
			expectedDetail: "Instructor already has an appointment in this time range",
			expectedToast:  "Instructor already has an appointment in this time range",
		},
		{
			name:           "Studio envelope carries message and detail",
			status:         http.StatusNotFound,
			body:           `{"status_code":404,"success":false,"message":"Student not found","detail":"Student not found"}`,
			expectedDetail: "Student not found",
			expectedToast:  "Student not found",
		},
		{
			name:           "Non string detail falls back",
			status:         http.StatusUnprocessableEntity,
			body:           `{"detail":[{"loc":["body","start_time"],"msg":"field required"}]}`,
			expectedDetail: "",
			expectedToast:  "Could not create appointment.",
		},
		{
			name:           "Non string detail ignores message",
			status:         http.StatusUnprocessableEntity,
			body:           `{"detail":[{"msg":"field required"}],"message":"Unprocessable Entity"}`,
			expectedDetail: "",
			expectedToast:  "Could not create appointment.",
		},
		{
			name:           "Message without detail falls back",
			status:         http.StatusTooManyRequests,
			body:           `{"message":"Too many requests"}`,
			expectedDetail: "",
			expectedToast:  "Could not create appointment.",
		},
		{
			name:           "Non JSON body falls back",
			status:         http.StatusBadGateway,
			body:           `upstream unavailable`,
			expectedDetail: "",
			expectedToast:  "Could not create appointment.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, tc.body)
			})

			_, err := client.CreateAppointment(context.Background(), &requests.CreateAppointment{})

			var remoteErr *exceptions.RemoteError
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, tc.status, remoteErr.StatusCode)
			assert.Equal(t, tc.expectedDetail, remoteErr.Detail)
			assert.Equal(t, tc.expectedToast, exceptions.DisplayMessage(err, "Could not create appointment."))
		})
	}

	t.Run("Transport failure is not a remote error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		baseURL := server.URL
		server.Close()
		logger, _ := test.NewNullLogger()
		client := NewStudioClient(baseURL, time.Second, logger)

		_, err := client.ListInstructors(context.Background())

		require.Error(t, err)
		var remoteErr *exceptions.RemoteError
		assert.False(t, errors.As(err, &remoteErr))
		assert.Equal(t, "Could not delete appointment.", exceptions.DisplayMessage(err, "Could not delete appointment."))
	})
}

func TestAnalyzePosture(t *testing.T) {
	image := []byte("\x89PNG\r\n\x1a\nfake-image")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/analyze", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "s1", r.FormValue("student_id"))
		assert.Equal(t, "pt", r.FormValue("language"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "posture.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get(constvars.HeaderContentType))
		uploaded, _ := io.ReadAll(file)
		assert.Equal(t, image, uploaded)

		writeJSON(w, http.StatusOK, `{"status":"success","detected_deviations":["forward head"],"clinical_analysis":"Mild forward head posture."}`)
	})

	result, err := client.AnalyzePosture(context.Background(), "s1", "pt", "/tmp/posture.png", image)

	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, []string{"forward head"}, result.DetectedDeviations)
}

func TestGenerateWorkoutPlanAndHealth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/generate_plan":
			var payload requests.GenerateWorkoutPlan
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "s1", payload.StudentID)
			assert.Equal(t, "en", payload.Language)
			writeJSON(w, http.StatusOK, `{"workout_plan":[{"exercise_name":"Hundred","sets":"3","reps":"10","clinical_reason":"core"}]}`)
		case "/api/v1/health":
			writeJSON(w, http.StatusOK, `{"status":"ok"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	plan, err := client.GenerateWorkoutPlan(context.Background(), "s1", "en")
	require.NoError(t, err)
	require.Len(t, plan.WorkoutPlan, 1)
	assert.Equal(t, "Hundred", plan.WorkoutPlan[0].ExerciseName)

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}
