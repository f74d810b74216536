package cli

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/proofai-labs/proofai/internal/archive"
	"github.com/proofai-labs/proofai/internal/metadata"
	"github.com/proofai-labs/proofai/internal/scaffold"
)

// chdir switches to dir for the duration of the test, restoring the
// original working directory on cleanup. (testing.T.Chdir needs Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

// run executes the root command with the given args.
func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestUpload_SchemaErrorSkipsArchiver(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	descriptor := []byte(`{"name": "no type here"}`)
	if err := os.WriteFile(metadata.FileName, descriptor, 0644); err != nil {
		t.Fatalf("writing descriptor: %v", err)
	}

	err := run(t, "upload")
	if !errors.Is(err, metadata.ErrSchema) {
		t.Fatalf("upload error = %v, want ErrSchema", err)
	}

	// The pipeline must stop before archiving.
	if _, err := os.Stat(filepath.Join(dir, archive.DefaultName)); !os.IsNotExist(err) {
		t.Error("archive was created despite validation failure")
	}
}

func TestUpload_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/datasets" {
			t.Errorf("path = %q, want /api/datasets", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"datasetId": "d1", "jobId": "j1"}`))
	}))
	defer srv.Close()
	t.Setenv("PROOFAI_API_URL", srv.URL)

	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(metadata.FileName, []byte(`{"type": "dataset"}`), 0644); err != nil {
		t.Fatalf("writing descriptor: %v", err)
	}
	if err := os.WriteFile("data.csv", []byte("a,b\n"), 0644); err != nil {
		t.Fatalf("writing data file: %v", err)
	}

	if err := run(t, "upload"); err != nil {
		t.Fatalf("upload error: %v", err)
	}

	// Cleanup is unconditional.
	if _, err := os.Stat(filepath.Join(dir, archive.DefaultName)); !os.IsNotExist(err) {
		t.Error("archive still exists after upload")
	}
}

func TestCreateAgentCommand(t *testing.T) {
	chdir(t, t.TempDir())

	if err := run(t, "create-agent", "My Agent"); err != nil {
		t.Fatalf("create-agent error: %v", err)
	}

	if _, err := os.Stat(filepath.Join("my_agent", metadata.FileName)); err != nil {
		t.Errorf("missing descriptor: %v", err)
	}
	if _, err := os.Stat(filepath.Join("my_agent", "main.go")); err != nil {
		t.Errorf("missing starter stub: %v", err)
	}

	// Re-running must not overwrite or merge.
	err := run(t, "create-agent", "My Agent")
	if !errors.Is(err, scaffold.ErrAlreadyExists) {
		t.Errorf("second create-agent error = %v, want ErrAlreadyExists", err)
	}
}
