package exhibition

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func TestImagesService_Upload(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/assets/images" {
			t.Errorf("expected /v1/assets/images, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected bearer token header, got %q", got)
		}

		if err := r.ParseMultipartForm(MaxImageBytes); err != nil {
			t.Fatalf("expected multipart form: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("expected file part: %v", err)
		}
		defer file.Close()
		if !strings.HasSuffix(header.Filename, ".png") {
			t.Errorf("expected .png object name, got %q", header.Filename)
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"url": "https://assets.example.org/abc.png",
		})
	})

	url, err := client.Images.Upload(context.Background(), "poster.png", bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if url != "https://assets.example.org/abc.png" {
		t.Errorf("unexpected URL %q", url)
	}
}

func TestImagesService_Upload_RejectsNonImage(t *testing.T) {
	client := NewClient(nil)

	_, err := client.Images.Upload(context.Background(), "notes.txt", strings.NewReader("just some text"))
	if err == nil {
		t.Fatal("expected error for non-image file")
	}
	if !strings.Contains(err.Error(), "image file") {
		t.Errorf("unexpected error %q", err)
	}
}

func TestImagesService_Upload_RejectsOversize(t *testing.T) {
	client := NewClient(nil)

	big := make([]byte, MaxImageBytes+1)
	copy(big, pngHeader)

	_, err := client.Images.Upload(context.Background(), "huge.png", bytes.NewReader(big))
	if err == nil {
		t.Fatal("expected error for oversize file")
	}
	if !strings.Contains(err.Error(), "4MB") {
		t.Errorf("unexpected error %q", err)
	}
}

func TestImagesService_Upload_RejectsEmpty(t *testing.T) {
	client := NewClient(nil)

	if _, err := client.Images.Upload(context.Background(), "empty.png", bytes.NewReader(nil)); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestImagesService_Upload_ProviderError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInsufficientStorage, map[string]string{
			"message": "bucket is full",
		})
	})

	_, err := client.Images.Upload(context.Background(), "poster.png", bytes.NewReader(pngHeader))
	if err == nil {
		t.Fatal("expected provider error")
	}
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Message != "bucket is full" {
		t.Errorf("expected provider message, got %q", apiErr.Message)
	}
}
