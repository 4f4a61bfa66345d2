package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const podcastRSS = `<?xml version="1.0"?><rss version="2.0"><channel><title>Late Night Lake Show</title></channel></rss>`

func readBody(t *testing.T, body io.ReadCloser) string {
	t.Helper()
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	return string(data)
}

func TestGet_FetchesPodcastFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/feed.xml", r.URL.Path)
		assert.Contains(t, r.UserAgent(), "LakeShowAPI")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(podcastRSS))
	}))
	defer server.Close()

	resp, err := NewStandardHTTPClient(5*time.Second).Get(context.Background(), server.URL+"/feed.xml")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "application/rss+xml", resp.Header("Content-Type"))
	assert.Equal(t, podcastRSS, readBody(t, resp.Body()))
}

func TestGet_RetriesYouTubeOutage(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	resp, err := NewStandardHTTPClient(5*time.Second).Get(context.Background(), server.URL+"/youtube/v3/search")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, `{"items":[]}`, readBody(t, resp.Body()))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGet_ReturnsLastServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("feed host down"))
	}))
	defer server.Close()

	resp, err := NewStandardHTTPClient(5*time.Second).Get(context.Background(), server.URL)

	// callers map the status to an ExternalAPIError, so the response comes back
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode())
	assert.Equal(t, "feed host down", readBody(t, resp.Body()))
	assert.Equal(t, int32(maxRetries), atomic.LoadInt32(&calls))
}

func TestGet_QuotaErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
	}))
	defer server.Close()

	resp, err := NewStandardHTTPClient(5*time.Second).Get(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())
	resp.Body().Close()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_CancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cancel()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewStandardHTTPClient(5*time.Second).Get(ctx, server.URL)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestGet_SlowNewsFeedTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewStandardHTTPClient(5*time.Second).Get(ctx, server.URL)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGet_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	resp, err := NewStandardHTTPClient(time.Second).Get(context.Background(), url)

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestGet_InvalidURL(t *testing.T) {
	_, err := NewStandardHTTPClient(time.Second).Get(context.Background(), "://not a url")

	assert.Error(t, err)
}
