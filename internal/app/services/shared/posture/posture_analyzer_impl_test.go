package posture

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleRequest() *requests.AnalyzePosture {
	return &requests.AnalyzePosture{
		StudentID:   "s1",
		Language:    "pt",
		FileName:    "side.jpg",
		ContentType: "image/jpeg",
		Image:       []byte("jpeg-bytes"),
	}
}

func TestAnalyze(t *testing.T) {
	t.Run("Sends the image and decodes the result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "pt", r.FormValue("language"))
			file, header, err := r.FormFile("image")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "image/jpeg", header.Header.Get(constvars.HeaderContentType))
			content, _ := io.ReadAll(file)
			assert.Equal(t, "jpeg-bytes", string(content))

			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			io.WriteString(w, `{"status":"success","detected_deviations":["Hyperkyphosis"],"clinical_analysis":"Rounded thoracic spine.","angles":{"neck":12.5}}`)
		}))
		defer server.Close()
		analyzer := NewPostureAnalyzer(server.URL, time.Second, zap.NewNop())

		result, err := analyzer.Analyze(context.Background(), sampleRequest())

		require.NoError(t, err)
		assert.Equal(t, "success", result.Status)
		assert.Equal(t, []string{"Hyperkyphosis"}, result.DetectedDeviations)
		assert.Equal(t, 12.5, result.Angles["neck"])
	})

	cases := []struct {
		name            string
		status          int
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "Rejected input keeps the analyzer message",
			status:          http.StatusUnprocessableEntity,
			body:            `{"detail":"No person detected in the image."}`,
			expectedStatus:  constvars.StatusUnprocessableEntity,
			expectedMessage: "No person detected in the image.",
		},
		{
			name:            "Failure keeps the analyzer message",
			status:          http.StatusInternalServerError,
			body:            `{"detail":"OPENAI_API_KEY is not configured."}`,
			expectedStatus:  constvars.StatusInternalServerError,
			expectedMessage: "OPENAI_API_KEY is not configured.",
		},
		{
			name:            "Failure without message uses the generic one",
			status:          http.StatusBadGateway,
			body:            `bad gateway`,
			expectedStatus:  constvars.StatusInternalServerError,
			expectedMessage: constvars.ErrClientAnalysisFailed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			}))
			defer server.Close()
			analyzer := NewPostureAnalyzer(server.URL, time.Second, zap.NewNop())

			_, err := analyzer.Analyze(context.Background(), sampleRequest())

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tc.expectedStatus, customErr.StatusCode)
			assert.Equal(t, tc.expectedMessage, customErr.ClientMessage)
		})
	}

	t.Run("Unconfigured analyzer", func(t *testing.T) {
		analyzer := NewPostureAnalyzer("", time.Second, zap.NewNop())

		_, err := analyzer.Analyze(context.Background(), sampleRequest())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})
}
