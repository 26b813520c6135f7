package rateprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successBody = `{"result":"success","base_code":"USD","rates":{"IDR":16250.5,"EUR":0.92,"USD":1}}`

func TestFetchLatest_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(successBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	result, err := client.FetchLatest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "USD", result.BaseCode)
	assert.Equal(t, 1, result.Attempts)
	assert.Len(t, result.Rates, 3)
	assert.Equal(t, "16250.5", result.Rates["IDR"].String())
}

func TestFetchLatest_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(successBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	result, err := client.FetchLatest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempts)
	assert.EqualValues(t, 3, calls.Load())
}

func TestFetchLatest_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	_, err := client.FetchLatest(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.EqualValues(t, maxAttempts, calls.Load())
}

func TestFetchLatest_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	_, err := client.FetchLatest(context.Background())

	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestFetchLatest_ProviderErrorResultFailsImmediately(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"result":"error","error-type":"invalid-key"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	_, err := client.FetchLatest(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `result "error"`)
	assert.EqualValues(t, 1, calls.Load())
}

func TestFetchLatest_ContextCancelStopsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, 2*time.Second)
	_, err := client.FetchLatest(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
