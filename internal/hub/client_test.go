package hub

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/proofai-labs/proofai/internal/metadata"
)

// newArchive writes a throwaway archive file and returns its path.
func newArchive(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resource.zip")
	if err := os.WriteFile(path, []byte("PK\x03\x04fake"), 0644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}
	return path
}

func assertRemoved(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("archive %s still exists after upload attempt", path)
	}
}

func TestUpload_Success(t *testing.T) {
	var gotPath, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart form: %v", err)
		} else if fhs := r.MultipartForm.File["file"]; len(fhs) == 1 {
			gotFilename = fhs[0].Filename
		} else {
			t.Errorf("expected one 'file' part, got %d", len(fhs))
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"agentId": "a1", "jobId": "j1"}`))
	}))
	defer srv.Close()

	archive := newArchive(t)
	client := NewClient(srv.URL, WithOutput(io.Discard))

	result, err := client.Upload(metadata.KindAgent, archive)
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
	if gotPath != "/api/agents" {
		t.Errorf("path = %q, want %q", gotPath, "/api/agents")
	}
	if gotFilename != "resource.zip" {
		t.Errorf("filename = %q, want %q", gotFilename, "resource.zip")
	}
	if result.ResourceID != "a1" {
		t.Errorf("ResourceID = %q, want %q", result.ResourceID, "a1")
	}
	if result.JobID != "j1" {
		t.Errorf("JobID = %q, want %q", result.JobID, "j1")
	}
	assertRemoved(t, archive)
}

func TestUpload_IDFieldSelectedByKind(t *testing.T) {
	// Server populates every id field; only the uploaded kind's field counts.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/models" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/api/models")
		}
		w.Write([]byte(`{"agentId": "a1", "modelId": "m1", "datasetId": "d1", "jobId": "j2"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithOutput(io.Discard))
	result, err := client.Upload(metadata.KindModel, newArchive(t))
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
	if result.ResourceID != "m1" {
		t.Errorf("ResourceID = %q, want %q", result.ResourceID, "m1")
	}
}

func TestUpload_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	archive := newArchive(t)
	client := NewClient(srv.URL, WithOutput(io.Discard))

	_, err := client.Upload(metadata.KindDataset, archive)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Upload() error = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, want %d", statusErr.Code, http.StatusInternalServerError)
	}
	assertRemoved(t, archive)
}

func TestUpload_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	archive := newArchive(t)
	client := NewClient(srv.URL, WithOutput(io.Discard))

	if _, err := client.Upload(metadata.KindAgent, archive); err == nil {
		t.Error("Upload() expected transport error, got nil")
	}
	assertRemoved(t, archive)
}

func TestUpload_UnknownKind(t *testing.T) {
	archive := newArchive(t)
	client := NewClient("http://localhost:0", WithOutput(io.Discard))

	_, err := client.Upload(metadata.Kind("WIDGET"), archive)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Upload() error = %v, want ErrUnknownKind", err)
	}
	assertRemoved(t, archive)
}
