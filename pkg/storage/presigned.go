package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/saramhq/aegis/pkg/config"
)

// PresignedStore asks the backend for a presigned PUT URL per artefact and
// uploads directly to it. Used when the gateway holds no storage credentials.
type PresignedStore struct {
	backendBase string
	token       string
	httpClient  *http.Client
	maxAttempts int
}

// NewPresignedStore creates the presigned adapter. The presign endpoint
// lives on the backend, so its base URL and internal token are reused.
func NewPresignedStore(cfg config.StorageConfig) *PresignedStore {
	return &PresignedStore{
		backendBase: strings.TrimSuffix(cfg.PresignBaseURL, "/"),
		token:       cfg.PresignToken,
		httpClient:  &http.Client{Timeout: cfg.UploadTimeout},
		maxAttempts: cfg.MaxAttempts,
	}
}

type presignResponse struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}

// Put implements Store.
func (s *PresignedStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	signed, err := s.presign(ctx, key, contentType)
	if err != nil {
		return "", err
	}

	err = withRetry(ctx, s.maxAttempts, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, signed.UploadURL, bytes.NewReader(data))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", contentType)
		resp, err := s.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("presigned upload returned HTTP %d: %s", resp.StatusCode, string(body))
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("upload %s via presigned url: %w", key, err)
	}
	return signed.PublicURL, nil
}

func (s *PresignedStore) presign(ctx context.Context, key, contentType string) (*presignResponse, error) {
	payload, err := json.Marshal(map[string]string{"key": key, "content_type": contentType})
	if err != nil {
		return nil, fmt.Errorf("marshal presign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.backendBase+"/internal/storage/presign", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create presign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("X-Internal-Token", s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request presigned url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("presign endpoint returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var signed presignResponse
	if err := json.NewDecoder(resp.Body).Decode(&signed); err != nil {
		return nil, fmt.Errorf("decode presign response: %w", err)
	}
	return &signed, nil
}
