package template

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileFunc is called after each file is written. done counts files written
// so far, including rel.
type FileFunc func(rel string, done, total int)

// Materializer copies a template tree into a new project directory.
type Materializer interface {
	// Materialize creates dest (with parents) and copies every template file
	// into it, overwriting files that already exist. It returns the relative
	// paths written, in walk order.
	Materialize(ctx context.Context, dest string, onFile FileFunc) ([]string, error)

	// ListTemplates returns the relative paths of all template files.
	ListTemplates() ([]string, error)
}

// materializer is the concrete implementation of Materializer.
type materializer struct {
	src    fs.FS
	dst    afero.Fs
	logger *slog.Logger
}

// NewMaterializer creates a Materializer that reads from src and writes to dst.
// In production src comes from go:embed and dst is afero.NewOsFs(); in tests
// use testing/fstest.MapFS and afero.NewMemMapFs().
func NewMaterializer(src fs.FS, dst afero.Fs, logger *slog.Logger) Materializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &materializer{src: src, dst: dst, logger: logger}
}

// Materialize walks the template and writes every file under dest.
func (m *materializer) Materialize(ctx context.Context, dest string, onFile FileFunc) ([]string, error) {
	dest = filepath.Clean(dest)

	files, err := m.ListTemplates()
	if err != nil {
		return nil, err
	}

	if err := m.dst.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create %q: %v", ErrMaterialize, dest, err)
	}

	written := make([]string, 0, len(files))
	for i, rel := range files {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		if err := validateDeployPath(dest, rel); err != nil {
			return written, err
		}

		content, err := fs.ReadFile(m.src, rel)
		if err != nil {
			return written, fmt.Errorf("%w: read %q: %v", ErrMaterialize, rel, err)
		}

		destPath := filepath.Join(dest, filepath.FromSlash(rel))
		if err := m.dst.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return written, fmt.Errorf("%w: mkdir %q: %v", ErrMaterialize, filepath.Dir(destPath), err)
		}

		perm := fs.FileMode(0o644)
		if strings.HasSuffix(rel, ".sh") {
			perm = 0o755
		}
		if err := afero.WriteFile(m.dst, destPath, content, perm); err != nil {
			return written, fmt.Errorf("%w: write %q: %v", ErrMaterialize, destPath, err)
		}

		written = append(written, rel)
		m.logger.Debug("template file written", "path", rel, "bytes", len(content))
		if onFile != nil {
			onFile(rel, i+1, len(files))
		}
	}

	return written, nil
}

// ListTemplates returns the relative paths of all files in the template, in
// lexical walk order. A missing or unreadable template is an error.
func (m *materializer) ListTemplates() ([]string, error) {
	var list []string
	err := fs.WalkDir(m.src, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." || entry.IsDir() {
			return nil
		}
		list = append(list, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	}
	return list, nil
}

// validateDeployPath ensures a template path does not escape dest.
func validateDeployPath(dest, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("resolve destination: %w", err)
	}

	absPath := filepath.Join(absDest, cleaned)
	if !strings.HasPrefix(absPath, absDest+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes destination", ErrPathTraversal, relPath)
	}

	return nil
}
