package exhibition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageBytes is the largest image the asset host accepts.
const MaxImageBytes = 4 << 20 // 4MB

// ImagesService uploads images to the external asset host and hands
// back hosted URLs for entity image fields. Manual URL entry needs no
// upload at all; this service only covers the local-file path.
type ImagesService struct {
	client *Client
}

// uploadResponse is the asset host's reply for a stored object.
type uploadResponse struct {
	URL     string `json:"url"`
	Message string `json:"message,omitempty"`
}

// Upload validates and stores one image, returning its hosted URL.
// The file must sniff as an image and be at most MaxImageBytes.
func (s *ImagesService) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return "", errors.New("image file is empty")
	}
	if len(data) > MaxImageBytes {
		return "", errors.New("file size must be less than 4MB")
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return "", errors.New("please select an image file")
	}

	// Objects get a fresh name so re-uploads of the same local file
	// never collide on the asset host.
	objectName := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", objectName)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	reqURL := s.client.assetHost + "/v1/assets/images"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(headerContentType, mw.FormDataContentType())
	req.Header.Set(headerUserAgent, clientUserAgent)
	if token := s.client.token(); token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	var parsed uploadResponse
	if resp.StatusCode >= 400 {
		if err := json.Unmarshal(respBody, &parsed); err == nil && parsed.Message != "" {
			return "", &Error{StatusCode: resp.StatusCode, Message: parsed.Message}
		}
		return "", &Error{StatusCode: resp.StatusCode, Message: "image upload failed"}
	}

	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}
	if parsed.URL == "" {
		return "", &Error{Message: "asset host returned no URL"}
	}
	return parsed.URL, nil
}
