package client

import (
	"net/http"
	"net/url"
)

// requestConfig collects per-request overrides applied on top of the client's
// defaults.
type requestConfig struct {
	header      http.Header
	query       url.Values
	contentType string
}

// RequestOption configures a single request.
type RequestOption func(*requestConfig)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.header == nil {
			rc.header = http.Header{}
		}
		rc.header.Add(key, value)
	}
}

// WithQuery adds a query parameter to the request URL.
func WithQuery(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = url.Values{}
		}
		rc.query.Add(key, value)
	}
}

// WithContentType overrides the Content-Type of the request body.
// Bodies default to "application/json".
func WithContentType(contentType string) RequestOption {
	return func(rc *requestConfig) {
		rc.contentType = contentType
	}
}
