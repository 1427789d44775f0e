package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/config"
)

func TestAssetKey(t *testing.T) {
	assert.Equal(t, "videos/vid-1/scr-1/job-1/video.mp4", AssetKey("vid-1", "scr-1", "job-1", "video.mp4"))
}

func TestNew_SelectsAdapter(t *testing.T) {
	store, err := New(config.StorageConfig{Kind: config.StorageLocal, LocalDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	store, err = New(config.StorageConfig{Kind: config.StoragePresigned})
	require.NoError(t, err)
	assert.IsType(t, &PresignedStore{}, store)

	_, err = New(config.StorageConfig{Kind: "ftp"})
	require.Error(t, err)
}

func TestLocalStore_Put(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(config.StorageConfig{
		LocalDir:      dir,
		PublicBaseURL: "http://localhost:8080/assets/",
	})

	key := AssetKey("vid-1", "scr-1", "job-1", "subtitles.srt")
	url, err := store.Put(context.Background(), key, []byte("1\n00:00:00,000 --> 00:00:02,000\n안내\n"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/assets/videos/vid-1/scr-1/job-1/subtitles.srt", url)

	data, err := os.ReadFile(filepath.Join(dir, "videos", "vid-1", "scr-1", "job-1", "subtitles.srt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "00:00:00,000")
}

func TestPresignedStore_Put(t *testing.T) {
	var uploaded []byte
	var uploadContentType string
	uploads := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		uploadContentType = r.Header.Get("Content-Type")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		uploaded = body
	}))
	defer uploads.Close()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/internal/storage/presign", r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get("X-Internal-Token"))
		fmt.Fprintf(w, `{"upload_url":%q,"public_url":"https://cdn.example.com/videos/v/s/j/video.mp4"}`, uploads.URL)
	}))
	defer backend.Close()

	store := NewPresignedStore(config.StorageConfig{
		PresignBaseURL: backend.URL,
		PresignToken:   "tok",
		UploadTimeout:  5 * time.Second,
		MaxAttempts:    3,
	})

	url, err := store.Put(context.Background(), "videos/v/s/j/video.mp4", []byte("mp4-bytes"), "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/videos/v/s/j/video.mp4", url)
	assert.Equal(t, "video/mp4", uploadContentType)
	assert.Equal(t, "mp4-bytes", string(uploaded))
}

func TestPresignedStore_RetriesUpload(t *testing.T) {
	var attempts int32
	uploads := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			http.Error(w, "throttled", http.StatusServiceUnavailable)
			return
		}
	}))
	defer uploads.Close()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"upload_url":%q,"public_url":"https://cdn.example.com/x"}`, uploads.URL)
	}))
	defer backend.Close()

	store := NewPresignedStore(config.StorageConfig{
		PresignBaseURL: backend.URL,
		UploadTimeout:  5 * time.Second,
		MaxAttempts:    3,
	})

	_, err := store.Put(context.Background(), "x", []byte("data"), "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestPresignedStore_ExhaustedRetries(t *testing.T) {
	uploads := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer uploads.Close()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"upload_url":%q,"public_url":"https://cdn.example.com/x"}`, uploads.URL)
	}))
	defer backend.Close()

	store := NewPresignedStore(config.StorageConfig{
		PresignBaseURL: backend.URL,
		UploadTimeout:  5 * time.Second,
		MaxAttempts:    2,
	})

	_, err := store.Put(context.Background(), "x", []byte("data"), "application/octet-stream")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presigned upload")
}

func TestWithRetry_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := withRetry(ctx, 5, func() error {
		calls++
		return errors.New("always fails")
	})
	require.Error(t, err)
	assert.LessOrEqual(t, calls, 2)
}
