package pii

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/config"
)

func newTestMasker(baseURL string, enabled bool) *Masker {
	return NewMasker(config.PIIConfig{
		Enabled: enabled,
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	})
}

func TestMask_Disabled(t *testing.T) {
	m := newTestMasker("http://unused", false)

	for _, stage := range []Stage{StageInput, StageOutput} {
		result, err := m.Mask(context.Background(), "주민번호 900101-1234567", stage)
		require.NoError(t, err)
		assert.Equal(t, "주민번호 900101-1234567", result.Masked)
		assert.False(t, result.HasPII)
	}

	// LOG stage never passes through without a verdict.
	result, err := m.Mask(context.Background(), "주민번호 900101-1234567", StageLog)
	require.NoError(t, err)
	assert.Equal(t, Redacted, result.Masked)
}

func TestMask_DetectorSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mask", r.URL.Path)
		fmt.Fprint(w, `{
			"original_text": "call 010-1234-5678",
			"masked_text": "call [PHONE]",
			"has_pii": true,
			"tags": [{"entity": "010-1234-5678", "label": "PHONE", "start": 5, "end": 18}]
		}`)
	}))
	defer srv.Close()

	m := newTestMasker(srv.URL, true)
	result, err := m.Mask(context.Background(), "call 010-1234-5678", StageInput)
	require.NoError(t, err)
	assert.Equal(t, "call [PHONE]", result.Masked)
	assert.True(t, result.HasPII)
	require.Len(t, result.Tags, 1)
	assert.Equal(t, "PHONE", result.Tags[0].Label)
}

func TestMask_FailClosedOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := newTestMasker(srv.URL, true)
	for _, stage := range []Stage{StageInput, StageOutput} {
		_, err := m.Mask(context.Background(), "secret text", stage)
		require.Error(t, err)
		var unavailable *DetectorUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, stage, unavailable.Stage)
	}
}

func TestMask_FailClosedOnUnreachable(t *testing.T) {
	m := newTestMasker("http://127.0.0.1:1", true)
	_, err := m.Mask(context.Background(), "secret text", StageInput)
	var unavailable *DetectorUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestMask_LogStageDegradesToRedacted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	m := newTestMasker(srv.URL, true)
	result, err := m.Mask(context.Background(), "original secret", StageLog)
	require.NoError(t, err)
	assert.Equal(t, Redacted, result.Masked)
	assert.NotContains(t, result.Masked, "original secret")
}

func TestMask_MalformedResponseFailsClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"masked_text": `)
	}))
	defer srv.Close()

	m := newTestMasker(srv.URL, true)
	_, err := m.Mask(context.Background(), "text", StageOutput)
	var unavailable *DetectorUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, StageOutput, unavailable.Stage)
}

func TestMask_EmptyText(t *testing.T) {
	m := newTestMasker("http://unused", true)
	result, err := m.Mask(context.Background(), "", StageInput)
	require.NoError(t, err)
	assert.Empty(t, result.Masked)
	assert.False(t, result.HasPII)
}
