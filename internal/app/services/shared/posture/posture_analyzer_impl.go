// Package posture calls the remote posture analyzer.
package posture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const serviceName = "posture analyzer"

type postureAnalyzer struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewPostureAnalyzer(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.PostureAnalyzer {
	return &postureAnalyzer{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

// Analyze posts the image to the analyzer. A 422 answer means the analyzer
// could not work with the image, anything else non-2xx is a failure.
func (a *postureAnalyzer) Analyze(ctx context.Context, request *requests.AnalyzePosture) (*responses.PostureAnalysis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	a.Log.Info("postureAnalyzer.Analyze called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, request.StudentID),
		zap.String(constvars.LoggingLanguageKey, request.Language),
	)

	if a.BaseUrl == "" {
		err := exceptions.ErrRemoteServiceNotConfigured(nil, serviceName)
		a.Log.Error("postureAnalyzer.Analyze analyzer url is not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, err
	}

	body, contentType, err := buildForm(request)
	if err != nil {
		a.Log.Error("postureAnalyzer.Analyze error building multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, a.BaseUrl, body)
	if err != nil {
		a.Log.Error("postureAnalyzer.Analyze error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, contentType)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		a.Log.Error("postureAnalyzer.Analyze error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrAnalyzerFailed(err, "")
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		a.Log.Error("postureAnalyzer.Analyze error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrAnalyzerFailed(err, "")
	}

	if resp.StatusCode != constvars.StatusOK {
		detail := utils.ExtractErrorDetail(responseBody)
		remoteErr := fmt.Errorf(constvars.ErrDevRemoteServiceRejected+" with status %d", serviceName, resp.StatusCode)
		a.Log.Error("postureAnalyzer.Analyze analyzer returned non-OK status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingResponseKey, detail),
		)
		if resp.StatusCode == constvars.StatusUnprocessableEntity {
			if detail == "" {
				detail = constvars.ErrClientAnalysisFailed
			}
			return nil, exceptions.ErrAnalyzerRejectedInput(remoteErr, detail)
		}
		return nil, exceptions.ErrAnalyzerFailed(remoteErr, detail)
	}

	result := new(responses.PostureAnalysis)
	err = json.Unmarshal(responseBody, result)
	if err != nil {
		a.Log.Error("postureAnalyzer.Analyze error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrAnalyzerFailed(err, "")
	}
	if result.DetectedDeviations == nil {
		result.DetectedDeviations = []string{}
	}

	a.Log.Info("postureAnalyzer.Analyze succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDeviationCountKey, len(result.DetectedDeviations)),
	)
	return result, nil
}

func buildForm(request *requests.AnalyzePosture) (*bytes.Buffer, string, error) {
	if len(request.Image) == 0 {
		return nil, "", errors.New("image is empty")
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	err := writer.WriteField(constvars.FormFieldLanguage, request.Language)
	if err != nil {
		return nil, "", err
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, constvars.FormFieldImage, filepath.Base(request.FileName)))
	header.Set(constvars.HeaderContentType, request.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	_, err = part.Write(request.Image)
	if err != nil {
		return nil, "", err
	}

	err = writer.Close()
	if err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}
