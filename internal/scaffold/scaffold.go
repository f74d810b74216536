package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/proofai-labs/proofai/internal/branding"
	"github.com/proofai-labs/proofai/internal/metadata"
)

//go:embed templates
var templateFS embed.FS

// ErrAlreadyExists reports that the target project directory is taken.
var ErrAlreadyExists = errors.New("project directory already exists")

// Data holds the variables available to project templates.
type Data struct {
	Name        string        // e.g., "My Agent"
	Author      string        // OS-reported username
	Description string        // e.g., "A ProofAI agent"
	Kind        metadata.Kind // normalized resource kind
	Version     string        // semver, e.g., "0.1.0"
	CreatedAt   string        // RFC 3339 timestamp
	Module      string        // SDK module path for agent stubs
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Dir   string
	Files []string
}

// FolderName derives the on-disk directory for a project name: lowercased,
// spaces replaced with underscores.
func FolderName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// NewData creates a Data with derived fields populated.
func NewData(kind metadata.Kind, name string) *Data {
	return &Data{
		Name:        name,
		Author:      currentUser(),
		Description: fmt.Sprintf("A %s %s", branding.DisplayName(), strings.ToLower(string(kind))),
		Kind:        kind,
		Version:     "0.1.0",
		CreatedAt:   time.Now().Format(time.RFC3339),
		Module:      branding.GoModule(),
	}
}

// currentUser resolves the author field from the OS account, the USER
// environment variable, or "unknown".
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

// Create scaffolds a new project for kind under parent. The directory name is
// derived from name via FolderName. Fails with ErrAlreadyExists if the target
// directory is present; nothing is overwritten or merged.
func Create(parent string, kind metadata.Kind, name string) (*Result, error) {
	dir := filepath.Join(parent, FolderName(name))
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory %s: %w", dir, err)
	}

	files := []string{metadata.FileName}
	if kind == metadata.KindAgent {
		files = append(files, "main.go")
	}

	data := NewData(kind, name)
	result := &Result{Dir: dir}
	for _, f := range files {
		if err := render(f, data, dir); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, f)
	}
	return result, nil
}

// render executes one embedded template into dir.
func render(name string, data *Data, dir string) error {
	tmplBytes, err := fs.ReadFile(templateFS, path.Join("templates", name+".tmpl"))
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	outPath := filepath.Join(dir, name)
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
