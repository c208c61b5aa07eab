// Package planner calls the remote workout plan generator.
package planner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const serviceName = "workout planner"

var fencedJSON = regexp.MustCompile("(?i)```(?:json)?\\s*(\\{[\\s\\S]*\\})\\s*```")

type workoutPlanner struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewWorkoutPlanner(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.WorkoutPlanner {
	return &workoutPlanner{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

// plannerOutput is the generator answer. Exercise fields are loosely typed
// because generators emit sets and reps as numbers or strings.
type plannerOutput struct {
	WorkoutPlan []map[string]interface{} `json:"workout_plan"`
}

func (p *workoutPlanner) Generate(ctx context.Context, request *requests.WorkoutPlannerInput) ([]responses.WorkoutExercise, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("workoutPlanner.Generate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, request.StudentProfile.StudentID),
		zap.String(constvars.LoggingLanguageKey, request.Language),
	)

	if p.BaseUrl == "" {
		p.Log.Error("workoutPlanner.Generate planner url is not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrRemoteServiceNotConfigured(nil, serviceName)
	}

	payload, err := json.Marshal(request)
	if err != nil {
		p.Log.Error("workoutPlanner.Generate error marshaling request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, p.BaseUrl, bytes.NewReader(payload))
	if err != nil {
		p.Log.Error("workoutPlanner.Generate error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		p.Log.Error("workoutPlanner.Generate error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPlannerFailed(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		p.Log.Error("workoutPlanner.Generate error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPlannerFailed(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		detail := utils.ExtractErrorDetail(body)
		p.Log.Error("workoutPlanner.Generate planner returned non-OK status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingResponseKey, detail),
		)
		return nil, exceptions.ErrPlannerRejected(fmt.Errorf(constvars.ErrDevRemoteServiceFailed+" with status %d", serviceName, resp.StatusCode), detail)
	}

	var output plannerOutput
	err = json.Unmarshal([]byte(extractJSONText(string(body))), &output)
	if err != nil {
		p.Log.Error("workoutPlanner.Generate error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPlannerRejected(err, constvars.ErrClientInvalidPlanFormat)
	}
	if output.WorkoutPlan == nil {
		err = errors.New("workout_plan is missing")
		p.Log.Error("workoutPlanner.Generate response has no workout plan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrPlannerRejected(err, constvars.ErrClientInvalidPlanFormat)
	}

	exercises := make([]responses.WorkoutExercise, 0, len(output.WorkoutPlan))
	for _, item := range output.WorkoutPlan {
		exercises = append(exercises, responses.WorkoutExercise{
			ExerciseName:   stringField(item, "exercise_name"),
			Sets:           stringField(item, "sets"),
			Reps:           stringField(item, "reps"),
			ClinicalReason: stringField(item, "clinical_reason"),
		})
	}

	p.Log.Info("workoutPlanner.Generate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingExerciseCountKey, len(exercises)),
	)
	return exercises, nil
}

// extractJSONText finds the JSON object in a generator answer that may be
// wrapped in a markdown fence or surrounded by prose.
func extractJSONText(content string) string {
	text := strings.TrimSpace(content)
	if text == "" {
		return ""
	}
	if match := fencedJSON.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}
	return text
}

func stringField(item map[string]interface{}, key string) string {
	value, ok := item[key]
	if !ok || value == nil {
		return ""
	}
	if text, ok := value.(string); ok {
		return strings.TrimSpace(text)
	}
	return fmt.Sprint(value)
}
