package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/adminforge/adminsdk/core/logger"
)

const (
	// StatusTransportError marks results for exchanges that never produced a
	// response (DNS failure, connection refused, timeout). The transport
	// reports these as errors rather than status codes, so the result carries
	// this sentinel instead of a server status.
	StatusTransportError = 0

	unexpectedErrorMessage = "Unexpected error"
)

// do performs one HTTP exchange and normalizes its outcome into a Result.
// Every path through this function resolves to a Result; failures of the
// normalizer itself degrade to the unexpected-error shape instead of
// propagating.
func (c *Client) do(ctx context.Context, method, path string, body any, opts []RequestOption) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("panic during request normalization",
				logger.Component("client"), slog.Any("panic", r))
			res = Result{Success: false, Status: http.StatusInternalServerError, Error: unexpectedErrorMessage}
		}
	}()

	var rc requestConfig
	for _, opt := range opts {
		opt(&rc)
	}

	reader, err := encodeBody(body)
	if err != nil {
		c.logger.Error("failed to encode request body", logger.Error(err))
		return Result{Success: false, Status: http.StatusInternalServerError, Error: unexpectedErrorMessage}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, rc.query), reader)
	if err != nil {
		c.logger.Error("failed to build request", logger.Error(err))
		return Result{Success: false, Status: http.StatusInternalServerError, Error: unexpectedErrorMessage}
	}

	for key, values := range rc.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if reader != nil {
		contentType := rc.contentType
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	if c.authed && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request transport failure",
			logger.Component("client"), slog.String("method", method), logger.Error(err))
		return c.failure(Result{
			Success: false,
			Status:  StatusTransportError,
			Error:   err.Error(),
		})
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read response body", logger.Error(err))
		return Result{Success: false, Status: http.StatusInternalServerError, Error: unexpectedErrorMessage}
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		var data json.RawMessage
		if len(payload) > 0 {
			data = json.RawMessage(payload)
		}
		// All 2xx codes collapse to 200 so callers match on one value.
		return Result{Success: true, Status: http.StatusOK, Data: data}
	}

	msg := errorMessage(resp.StatusCode, payload)
	c.logger.Debug("request failed",
		logger.Component("client"), slog.String("method", method), logger.Status(resp.StatusCode))
	return c.failure(Result{Success: false, Status: resp.StatusCode, Error: msg})
}

// failure publishes the failure notification for a normalized error result.
// Delivery is decoupled from the return path: the bus buffers without
// blocking and subscriber code never runs on this stack.
func (c *Client) failure(res Result) Result {
	if c.notifier != nil {
		_ = c.notifier.Error(res.Error)
	}
	return res
}

// errorMessage extracts a human-readable message from an error response body.
// Precedence: string payload (with a leading case-insensitive "Error:" prefix
// stripped), object "message" field, object "error" field, then the generic
// status text.
func errorMessage(status int, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(status)
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return stripErrorPrefix(s)
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		// Not JSON at all: treat the raw text as a string payload.
		return stripErrorPrefix(text)
	}
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Error != "" {
		return payload.Error
	}
	return http.StatusText(status)
}

// stripErrorPrefix drops a leading "Error:" marker, case-insensitively, so
// backends that prefix their messages don't double up with UI labels.
func stripErrorPrefix(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 6 && strings.EqualFold(s[:6], "error:") {
		s = strings.TrimSpace(s[6:])
	}
	return s
}
