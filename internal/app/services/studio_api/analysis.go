package studioapi

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
)

const (
	pathAnalyze      = "/analyze"
	pathGeneratePlan = "/generate_plan"
	pathHealth       = "/health"
)

// AnalyzePosture uploads image as multipart form data. The part content type
// comes from the file extension, falling back to sniffing the bytes.
func (c *studioClient) AnalyzePosture(ctx context.Context, studentID, language, fileName string, image []byte) (*responses.PostureAnalysis, error) {
	body, contentType, err := buildAnalyzeForm(studentID, language, fileName, image)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	result := new(responses.PostureAnalysis)
	err = c.send(ctx, outgoing{
		method:      constvars.MethodPost,
		path:        pathAnalyze,
		body:        body,
		contentType: contentType,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *studioClient) GenerateWorkoutPlan(ctx context.Context, studentID, language string) (*responses.WorkoutPlan, error) {
	request := &requests.GenerateWorkoutPlan{StudentID: studentID, Language: language}
	result := new(responses.WorkoutPlan)
	err := c.sendJSON(ctx, constvars.MethodPost, pathGeneratePlan, nil, request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *studioClient) Health(ctx context.Context) (*responses.Health, error) {
	result := new(responses.Health)
	err := c.sendJSON(ctx, constvars.MethodGet, pathHealth, nil, nil, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func buildAnalyzeForm(studentID, language, fileName string, image []byte) (*bytes.Buffer, string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	err := writer.WriteField(constvars.FormFieldStudentID, studentID)
	if err != nil {
		return nil, "", err
	}
	err = writer.WriteField(constvars.FormFieldLanguage, language)
	if err != nil {
		return nil, "", err
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, constvars.FormFieldImage, filepath.Base(fileName)))
	header.Set(constvars.HeaderContentType, imageContentType(fileName, image))
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	_, err = part.Write(image)
	if err != nil {
		return nil, "", err
	}

	err = writer.Close()
	if err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

func imageContentType(fileName string, image []byte) string {
	if contentType := mime.TypeByExtension(filepath.Ext(fileName)); contentType != "" {
		return contentType
	}
	return http.DetectContentType(image)
}
