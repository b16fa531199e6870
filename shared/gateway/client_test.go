package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(maxTries uint) *Client {
	return NewClient(Config{
		Name:     "test",
		Timeout:  time.Second,
		MaxTries: maxTries,
	}, zap.NewNop())
}

func TestClient_PostJSON(t *testing.T) {
	t.Run("decodes success response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Write([]byte(`{"token":"tok_123"}`))
		}))
		defer server.Close()

		var out struct {
			Token string `json:"token"`
		}
		err := newTestClient(1).PostJSON(context.Background(), server.URL, map[string]string{"id": "1"}, &out)

		require.NoError(t, err)
		assert.Equal(t, "tok_123", out.Token)
	})

	t.Run("retries on 5xx until success", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		err := newTestClient(3).PostJSON(context.Background(), server.URL, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("gives up after max tries", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		err := newTestClient(2).PostJSON(context.Background(), server.URL, nil, nil)

		assert.Error(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("does not retry on 4xx", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		err := newTestClient(3).PostJSON(context.Background(), server.URL, nil, nil)

		assert.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("stops when context expires", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := newTestClient(10).PostJSON(ctx, server.URL, nil, nil)
		assert.Error(t, err)
	})
}

func TestClient_GetJSON(t *testing.T) {
	t.Run("decodes success response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"name":"Test Buyer"}`))
		}))
		defer server.Close()

		var out struct {
			Name string `json:"name"`
		}
		found, err := newTestClient(1).GetJSON(context.Background(), server.URL, &out)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Test Buyer", out.Name)
	})

	t.Run("404 reports not found without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		var out struct{}
		found, err := newTestClient(1).GetJSON(context.Background(), server.URL, &out)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("other 4xx surface as errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		var out struct{}
		found, err := newTestClient(1).GetJSON(context.Background(), server.URL, &out)

		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestClient_CircuitBreakerOpens(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(1)

	// Drive the breaker past its failure threshold
	for i := 0; i < 6; i++ {
		_ = client.PostJSON(context.Background(), server.URL, nil, nil)
	}

	before := atomic.LoadInt32(&calls)
	err := client.PostJSON(context.Background(), server.URL, nil, nil)

	assert.Error(t, err)
	assert.Equal(t, before, atomic.LoadInt32(&calls), "open breaker should short-circuit the request")
}
