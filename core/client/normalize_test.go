package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminforge/adminsdk/core/client"
)

func TestNormalize_Success(t *testing.T) {
	t.Parallel()

	t.Run("2xx yields uniform success result", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"foo":1}`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		res := c.Get(context.Background(), "/thing")

		assert.True(t, res.Success)
		assert.Equal(t, http.StatusOK, res.Status)
		assert.JSONEq(t, `{"foo":1}`, string(res.Data))
		assert.Empty(t, res.Error)
	})

	t.Run("201 is normalized to 200", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":7}`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		res := c.Post(context.Background(), "/thing", map[string]int{"id": 7})

		assert.True(t, res.Success)
		assert.Equal(t, http.StatusOK, res.Status)
	})

	t.Run("204 with empty body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		res := c.Delete(context.Background(), "/thing/7")

		assert.True(t, res.Success)
		assert.Equal(t, http.StatusOK, res.Status)
		assert.Empty(t, res.Data)
		assert.Empty(t, res.Error)
	})
}

func TestNormalize_ServerErrors(t *testing.T) {
	t.Parallel()

	serve := func(status int, body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(body))
		}))
	}

	tests := []struct {
		name       string
		status     int
		body       string
		wantError  string
		wantStatus int
	}{
		{
			name:       "string payload strips Error prefix",
			status:     http.StatusNotFound,
			body:       `"Error: not found"`,
			wantError:  "not found",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "prefix strip is case-insensitive",
			status:     http.StatusNotFound,
			body:       `"ERROR:   not found  "`,
			wantError:  "not found",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "plain text payload treated as string",
			status:     http.StatusNotFound,
			body:       `Error: not found`,
			wantError:  "not found",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "string payload without prefix kept verbatim",
			status:     http.StatusForbidden,
			body:       `"access denied"`,
			wantError:  "access denied",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "message field takes precedence",
			status:     http.StatusBadRequest,
			body:       `{"message":"bad input","error":"ignored"}`,
			wantError:  "bad input",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "error field used when message is absent",
			status:     http.StatusUnprocessableEntity,
			body:       `{"error":"name is required"}`,
			wantError:  "name is required",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "empty body falls back to status text",
			status:     http.StatusBadGateway,
			body:       "",
			wantError:  http.StatusText(http.StatusBadGateway),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "object without known fields falls back to status text",
			status:     http.StatusInternalServerError,
			body:       `{"detail":"boom"}`,
			wantError:  http.StatusText(http.StatusInternalServerError),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := serve(tt.status, tt.body)
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			res := c.Get(context.Background(), "/thing")

			assert.False(t, res.Success)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantError, res.Error)
			assert.Empty(t, res.Data)
		})
	}
}

func TestNormalize_TransportFailure(t *testing.T) {
	t.Parallel()

	t.Run("connection refused resolves to a result", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := newTestClient(t, srv.URL)

		var res client.Result
		require.NotPanics(t, func() {
			res = c.Get(context.Background(), "/users")
		})

		assert.False(t, res.Success)
		assert.Equal(t, client.StatusTransportError, res.Status)
		assert.NotEmpty(t, res.Error)
		assert.Empty(t, res.Data)
	})

	t.Run("cancelled context resolves to a result", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := newTestClient(t, srv.URL)
		res := c.Get(ctx, "/users")

		assert.False(t, res.Success)
		assert.Equal(t, client.StatusTransportError, res.Status)
		assert.NotEmpty(t, res.Error)
	})
}

func TestNormalize_Unexpected(t *testing.T) {
	t.Parallel()

	t.Run("unmarshalable body degrades to unexpected error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		res := c.Post(context.Background(), "/users", map[string]any{"bad": func() {}})

		assert.False(t, res.Success)
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, "Unexpected error", res.Error)
	})
}

func TestResult_Decode(t *testing.T) {
	t.Parallel()

	t.Run("decodes success payload", func(t *testing.T) {
		t.Parallel()

		res := client.Result{Success: true, Status: 200, Data: []byte(`{"foo":1}`)}

		var payload struct {
			Foo int `json:"foo"`
		}
		require.NoError(t, res.Decode(&payload))
		assert.Equal(t, 1, payload.Foo)
	})

	t.Run("failed result returns ErrNoData", func(t *testing.T) {
		t.Parallel()

		res := client.Result{Success: false, Status: 404, Error: "not found"}
		var v map[string]any
		require.ErrorIs(t, res.Decode(&v), client.ErrNoData)
	})

	t.Run("empty payload returns ErrNoData", func(t *testing.T) {
		t.Parallel()

		res := client.Result{Success: true, Status: 200}
		_, err := client.Decode[map[string]any](res)
		require.ErrorIs(t, err, client.ErrNoData)
	})
}
