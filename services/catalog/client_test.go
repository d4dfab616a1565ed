package catalog

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

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 500, 2*time.Second, zap.NewNop()), srv
}

func TestFetchSnapshotSuccess(t *testing.T) {
	var gotLimit string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"totalPages": 1,
			"services": [
				{"id": "s1", "title": "Ngorongoro Lodge", "category": "Accommodation", "price": 120, "providerId": "P1",
				 "location": {"region": "Arusha", "district": "Karatu"}},
				{"id": "s2", "title": "Safari Jeep", "category": "Transportation", "price": 80, "providerId": "P2",
				 "location": {"region": "Arusha", "district": "Karatu"}}
			]
		}`))
	})

	listings, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "500", gotLimit)
	require.Len(t, listings, 2)
	assert.Equal(t, "s1", listings[0].ID)
	assert.Equal(t, "Karatu", listings[0].Location.District)
}

func TestFetchSnapshotSanitizesRows(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"services": [
				{"id": "ok", "title": "Kept", "category": "Accommodation", "price": 50, "providerId": "P1"},
				{"id": "", "title": "No ID", "category": "Accommodation", "price": 50, "providerId": "P1"},
				{"id": "neg", "title": "Negative", "category": "Accommodation", "price": -1, "providerId": "P1"},
				{"id": "cat", "title": "Bad Category", "category": "Time Travel", "price": 50, "providerId": "P1"}
			]
		}`))
	})

	listings, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "ok", listings[0].ID)
}

func TestFetchSnapshotNonSuccessEnvelopeNotRetried(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"success": false, "message": "catalog unavailable"}`))
	})

	_, err := client.FetchSnapshot(context.Background())
	var fErr *FetchError
	require.ErrorAs(t, err, &fErr)
	assert.False(t, fErr.Retryable)
	assert.Contains(t, fErr.Message, "catalog unavailable")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchSnapshotRetriesServerErrors(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"success": true, "services": [
			{"id": "s1", "title": "Lodge", "category": "Accommodation", "price": 100, "providerId": "P1"}
		]}`))
	})

	listings, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchSnapshotGivesUpAfterAttempts(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchSnapshot(context.Background())
	var fErr *FetchError
	require.ErrorAs(t, err, &fErr)
	assert.True(t, fErr.Retryable)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchSnapshotClientErrorNotRetried(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchSnapshot(context.Background())
	var fErr *FetchError
	require.ErrorAs(t, err, &fErr)
	assert.False(t, fErr.Retryable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchSnapshotContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.FetchSnapshot(ctx)
	assert.Error(t, err)
}
