package scheduler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunOnceWarmsDefaultTarget(t *testing.T) {
	var hits atomic.Int64
	var lastPath atomic.Value

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		lastPath.Store(r.URL.RequestURI())
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	warmup, err := NewWarmup(srv.URL, "")
	require.NoError(t, err)

	require.NoError(t, warmup.RunOnce(context.Background()))
	require.EqualValues(t, 1, hits.Load())
	require.Equal(t, "/users/filter?skip=0&limit=10", lastPath.Load())
}

func TestRunOnceAggregatesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/jobs" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	warmup, err := NewWarmup(srv.URL, "Asia/Kolkata",
		WithTargets([]string{"/jobs", "/users?skip=0&limit=5"}))
	require.NoError(t, err)

	err = warmup.RunOnce(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "warm /jobs")
	require.Contains(t, err.Error(), "unexpected status 500")
}

func TestRunOnceContinuesAfterFailure(t *testing.T) {
	var okHits atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		okHits.Add(1)
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	warmup, err := NewWarmup(srv.URL, "",
		WithTargets([]string{"/broken", "/users"}))
	require.NoError(t, err)

	require.Error(t, warmup.RunOnce(context.Background()))
	require.EqualValues(t, 1, okHits.Load())
}

func TestNewWarmupValidation(t *testing.T) {
	_, err := NewWarmup("", "")
	require.Error(t, err)

	_, err = NewWarmup("http://127.0.0.1:8000", "Not/AZone")
	require.Error(t, err)

	_, err = NewWarmup("http://127.0.0.1:8000", "", WithSpec("not a cron spec"))
	require.Error(t, err)
}
