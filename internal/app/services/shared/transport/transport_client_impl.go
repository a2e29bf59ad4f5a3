package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/services/shared/metrics"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const maxLoggedBodyLength = 512

type transportClient struct {
	BaseUrl     string
	HTTPClient  *http.Client
	Credentials contracts.CredentialSource
	Log         *zap.Logger
}

// NewTransportClient returns a client for the analysis backend. Every
// request is bounded by timeout and is never retried here.
func NewTransportClient(baseUrl string, timeout time.Duration, credentials contracts.CredentialSource, logger *zap.Logger) contracts.Transport {
	return &transportClient{
		BaseUrl:     strings.TrimRight(baseUrl, "/"),
		HTTPClient:  &http.Client{Timeout: timeout},
		Credentials: credentials,
		Log:         logger,
	}
}

func (c *transportClient) Get(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, constvars.MethodGet, path, nil, "", out)
}

func (c *transportClient) PostForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	return c.Do(ctx, constvars.MethodPost, path, strings.NewReader(form.Encode()), constvars.MIMEApplicationForm, out)
}

func (c *transportClient) PostJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return c.Do(ctx, constvars.MethodPost, path, bytes.NewReader(body), constvars.MIMEApplicationJSON, out)
}

func (c *transportClient) Do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	requestID := utils.GetRequestID(ctx)
	resource := metrics.ResourceLabel(path)
	c.Log.Debug("transportClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+"/"+strings.TrimLeft(path, "/"), body)
	if err != nil {
		c.Log.Error("transportClient.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderUserAgent, constvars.ClientUserAgent)
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if credential := c.currentCredential(); credential != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+credential)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(method, resource).Observe(time.Since(start).Seconds())
	if err != nil {
		c.observe(method, resource, string(exceptions.KindNetworkUnreachable))
		c.Log.Error("transportClient.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if isTimeout(err) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrNetworkUnreachable(err, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(method, resource, string(exceptions.KindNetworkUnreachable))
		c.Log.Error("transportClient.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrReadResponseBody(err, path)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		customErr := c.statusError(ctx, resp.StatusCode, path, respBody)
		c.observe(method, resource, string(customErr.Kind))
		c.Log.Error("transportClient.Do backend returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorKindKey, string(customErr.Kind)),
		)
		return customErr
	}

	if out != nil {
		if len(bytes.TrimSpace(respBody)) == 0 {
			c.observe(method, resource, string(exceptions.KindInvalidResponseShape))
			return exceptions.ErrDecodeResponse(errors.New("empty response body"), path)
		}
		err = json.Unmarshal(respBody, out)
		if err != nil {
			c.observe(method, resource, string(exceptions.KindInvalidResponseShape))
			c.Log.Error("transportClient.Do error decoding response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, path),
				zap.String(constvars.LoggingResponseKey, truncate(respBody)),
				zap.Error(err),
			)
			return exceptions.ErrDecodeResponse(err, path)
		}
	}

	c.observe(method, resource, constvars.ResponseSuccess)
	c.Log.Debug("transportClient.Do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	return nil
}

// statusError maps a non-2xx response to the error taxonomy. A rejected
// credential is cleared before the error is returned so the next call goes
// out without it.
func (c *transportClient) statusError(ctx context.Context, statusCode int, path string, body []byte) *exceptions.CustomError {
	detail := ExtractErrorDetail(body)
	cause := errors.New(strconv.Itoa(statusCode) + " " + firstNonEmpty(detail, truncate(body)))

	switch statusCode {
	case constvars.StatusUnauthorized:
		c.invalidateCredential(ctx)
		return exceptions.ErrUnauthorized(cause, path)
	case constvars.StatusForbidden:
		c.invalidateCredential(ctx)
		return exceptions.ErrForbidden(cause, path)
	case constvars.StatusNotFound:
		return exceptions.ErrNotFound(cause, path)
	default:
		return exceptions.ErrServerError(cause, statusCode, path, detail)
	}
}

func (c *transportClient) currentCredential() string {
	if c.Credentials == nil {
		return ""
	}
	return c.Credentials.CurrentCredential()
}

func (c *transportClient) invalidateCredential(ctx context.Context) {
	if c.Credentials == nil {
		return
	}
	err := c.Credentials.ClearCredential(ctx)
	if err != nil {
		c.Log.Error("transportClient.invalidateCredential error clearing credential",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func (c *transportClient) observe(method, resource, outcome string) {
	metrics.BackendRequestCounter.WithLabelValues(method, resource, outcome).Inc()
}

// ExtractErrorDetail pulls the human-readable message out of a backend
// error body. The backend sends detail either as a string or as a list of
// validation items carrying msg.
func ExtractErrorDetail(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	detail := gjson.GetBytes(body, constvars.ErrorDetailPath)
	switch {
	case detail.Type == gjson.String:
		return detail.String()
	case detail.IsArray():
		var messages []string
		for _, item := range detail.Array() {
			if msg := item.Get("msg"); msg.Exists() {
				messages = append(messages, msg.String())
			} else if item.Type == gjson.String {
				messages = append(messages, item.String())
			}
		}
		return strings.Join(messages, "; ")
	case detail.IsObject():
		if msg := detail.Get("msg"); msg.Exists() {
			return msg.String()
		}
		return detail.Raw
	}
	if message := gjson.GetBytes(body, "message"); message.Type == gjson.String {
		return message.String()
	}
	return ""
}

func truncate(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > maxLoggedBodyLength {
		return text[:maxLoggedBodyLength]
	}
	return text
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// isTimeout covers both the client timeout and a context deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
