package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is the archive written to the project root before upload.
const DefaultName = "resource.zip"

// transientDirs are build artifacts never worth shipping.
var transientDirs = map[string]bool{
	"__pycache__":  true,
	"venv":         true,
	"node_modules": true,
}

// Excluded reports whether a path component should be left out of the
// archive: the archive itself, anything hidden, and transient directories.
func Excluded(name, archiveName string) bool {
	if name == archiveName {
		return true
	}
	if strings.HasPrefix(name, ".") {
		return true
	}
	return transientDirs[name]
}

// Create walks root recursively and writes a Deflate-compressed zip named
// name into root, storing entries under slash-separated paths relative to
// root. An existing archive at the same path is overwritten. Returns the
// archive path.
func Create(root, name string) (string, error) {
	outPath := filepath.Join(root, name)

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating archive %s: %w", outPath, err)
	}
	zw := zip.NewWriter(f)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			if Excluded(d.Name(), name) {
				return fs.SkipDir
			}
			return nil
		}
		if Excluded(d.Name(), name) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return addFile(zw, path, filepath.ToSlash(rel))
	})
	if walkErr != nil {
		zw.Close()
		f.Close()
		return "", fmt.Errorf("archiving %s: %w", root, walkErr)
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("finalizing archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing archive: %w", err)
	}
	return outPath, nil
}

// addFile copies one file into the zip under the given relative name.
func addFile(zw *zip.Writer, path, rel string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = rel
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
