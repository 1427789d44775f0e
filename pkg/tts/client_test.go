package tts

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/config"
)

func TestSynthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/synthesize", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		var req synthesizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ko-female-1", req.Voice)
		assert.Equal(t, "mp3", req.Format)
		fmt.Fprintf(w, `{"audio_base64":%q,"duration_sec":12.4}`,
			base64.StdEncoding.EncodeToString([]byte("mp3-bytes")))
	}))
	defer server.Close()

	client := NewClient(config.TTSConfig{
		BaseURL: server.URL,
		APIKey:  "key-1",
		Voice:   "ko-female-1",
		Timeout: 5 * time.Second,
	})

	out, err := client.Synthesize(context.Background(), "첫 장면 나레이션입니다.")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), out.Audio)
	assert.Equal(t, 12.4, out.DurationSec)
}

func TestSynthesize_EmptyAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"audio_base64":"","duration_sec":0}`)
	}))
	defer server.Close()

	client := NewClient(config.TTSConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	_, err := client.Synthesize(context.Background(), "내용")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty audio")
}

func TestSynthesize_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(config.TTSConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	_, err := client.Synthesize(context.Background(), "내용")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
}
