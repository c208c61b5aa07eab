// Package studioapi is the REST client the console uses to talk to the studio API.
package studioapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

type studioClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *logrus.Logger
}

func NewStudioClient(baseUrl string, timeout time.Duration, logger *logrus.Logger) contracts.StudioClient {
	return &studioClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

// envelope is the studio success body. Bare JSON documents are accepted too.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type outgoing struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

func (c *studioClient) sendJSON(ctx context.Context, method, path string, query url.Values, payload interface{}, out interface{}) error {
	request := outgoing{method: method, path: path, query: query}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		request.body = bytes.NewReader(body)
		request.contentType = constvars.MIMEApplicationJSON
	}
	return c.send(ctx, request, out)
}

func (c *studioClient) send(ctx context.Context, request outgoing, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if requestID == "" {
		requestID = utils.GenerateRequestID()
	}

	endpoint := c.BaseUrl + request.path
	if len(request.query) > 0 {
		endpoint += "?" + request.query.Encode()
	}
	logger := c.Log.WithFields(logrus.Fields{
		constvars.LoggingRequestIDKey: requestID,
		constvars.LoggingMethodKey:    request.method,
		constvars.LoggingURLKey:       endpoint,
	})
	logger.Debug("studioClient.send called")

	req, err := http.NewRequestWithContext(ctx, request.method, endpoint, request.body)
	if err != nil {
		logger.WithError(err).Error("studioClient.send error creating HTTP request")
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)
	if request.contentType != "" {
		req.Header.Set(constvars.HeaderContentType, request.contentType)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.WithError(err).Error("studioClient.send error sending HTTP request")
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Error("studioClient.send error reading response body")
		return exceptions.ErrDecodeResponse(err, request.path)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		remoteErr := &exceptions.RemoteError{
			StatusCode: resp.StatusCode,
			Detail:     utils.ExtractErrorDetail(bodyBytes),
		}
		logger.WithField(constvars.LoggingStatusCodeKey, resp.StatusCode).WithError(remoteErr).Warn("studioClient.send rejected by studio api")
		return remoteErr
	}

	if out != nil {
		err = decodeBody(bodyBytes, out)
		if err != nil {
			logger.WithError(err).Error("studioClient.send error decoding response")
			return exceptions.ErrDecodeResponse(err, request.path)
		}
	}

	logger.WithField(constvars.LoggingStatusCodeKey, resp.StatusCode).Debug("studioClient.send succeeded")
	return nil
}

// decodeBody unwraps the studio envelope when present.
func decodeBody(body []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '{' {
		var wrapped envelope
		if err := json.Unmarshal(trimmed, &wrapped); err == nil && wrapped.Success != nil {
			if len(wrapped.Data) == 0 || string(wrapped.Data) == "null" {
				return nil
			}
			return json.Unmarshal(wrapped.Data, out)
		}
	}
	return json.Unmarshal(trimmed, out)
}

func resourcePath(resource string, id ...string) string {
	path := "/" + resource
	for _, segment := range id {
		path += "/" + url.PathEscape(segment)
	}
	return path
}
