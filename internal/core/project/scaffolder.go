package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/reactcli/react-cli/internal/catalog"
	"github.com/reactcli/react-cli/internal/template"
)

// Options configures one scaffolding run.
type Options struct {
	ProjectName string             // Name of the project and of its directory.
	BaseDir     string             // Parent directory; the project lands in BaseDir/ProjectName.
	Selections  catalog.Selections // Library selections keyed by catalog category ID.
	SkipInstall bool               // If true, do not run the package manager.
}

// Result summarizes a scaffolding run.
type Result struct {
	ProjectName       string            // Normalized project name.
	ProjectDir        string            // Directory the project was written to.
	Files             []string          // Template files written, relative to ProjectDir.
	AddedDependencies []catalog.Package // Entries upserted into package.json dependencies.
	MarkerReplaced    bool              // Whether the entry component was personalized.
	InstallSkipped    bool              // Whether installation was skipped by request.
	InstallErr        error             // Non-nil if installation failed; the project is still usable.
	Warnings          []string          // Non-fatal issues.
}

// Scaffolder runs the project creation workflow.
type Scaffolder struct {
	catalog      *catalog.Catalog
	materializer template.Materializer
	fs           afero.Fs
	installer    Installer
	reporter     Reporter
	logger       *slog.Logger
}

// Option customizes a Scaffolder.
type Option func(*Scaffolder)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(s *Scaffolder) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scaffolder) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScaffolder creates a Scaffolder. fsys must be the filesystem the
// materializer writes to, since the patch steps edit the copied files.
func NewScaffolder(cat *catalog.Catalog, m template.Materializer, fsys afero.Fs, installer Installer, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		catalog:      cat,
		materializer: m,
		fs:           fsys,
		installer:    installer,
		reporter:     NoOpReporter{},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run creates the project. Copying and patching failures abort the run and
// are returned. An installation failure is recorded in Result.InstallErr and
// Run still succeeds, leaving the project on disk.
func (s *Scaffolder) Run(ctx context.Context, opts Options) (*Result, error) {
	name := NormalizeName(opts.ProjectName)
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	pkgs, err := s.catalog.ResolveAll(opts.Selections)
	if err != nil {
		return nil, err
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	result := &Result{
		ProjectName: name,
		ProjectDir:  filepath.Join(baseDir, name),
	}

	s.logger.Info("creating project",
		"name", name,
		"dir", result.ProjectDir,
		"dependencies", len(pkgs),
	)

	// Step 1: copy the template
	s.reporter.StepStart(StepMaterialize)
	files, err := s.materializer.Materialize(ctx, result.ProjectDir, s.reporter.FileCopied)
	if err != nil {
		s.reporter.StepError(StepMaterialize, err)
		return nil, fmt.Errorf("copy template: %w", err)
	}
	result.Files = files
	s.reporter.StepComplete(StepMaterialize, fmt.Sprintf("%d files", len(files)))

	// Step 2: personalize the entry component
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.reporter.StepStart(StepPatchSource)
	found, err := PatchSource(s.fs, result.ProjectDir, name)
	if err != nil {
		s.reporter.StepError(StepPatchSource, err)
		return nil, err
	}
	result.MarkerReplaced = found
	if !found {
		w := fmt.Sprintf("no <div className='main'> marker found; %s was not personalized", AppEntryFile)
		result.Warnings = append(result.Warnings, w)
		s.logger.Warn("source marker not found", "file", AppEntryFile)
	}
	s.reporter.StepComplete(StepPatchSource, "")

	// Step 3: name and dependencies in package.json
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.reporter.StepStart(StepPatchManifest)
	added, err := PatchManifest(s.fs, result.ProjectDir, name, pkgs)
	if err != nil {
		s.reporter.StepError(StepPatchManifest, err)
		return nil, err
	}
	result.AddedDependencies = added
	s.reporter.StepComplete(StepPatchManifest, fmt.Sprintf("%d dependencies added", len(added)))

	// Step 4: install (non-fatal)
	if opts.SkipInstall || s.installer == nil {
		result.InstallSkipped = true
		s.reporter.StepComplete(StepInstall, "skipped")
		return result, nil
	}
	s.reporter.StepStart(StepInstall)
	if err := s.installer.Install(ctx, result.ProjectDir); err != nil {
		result.InstallErr = err
		s.reporter.StepError(StepInstall, err)
		s.logger.Warn("dependency installation failed", "error", err)
		return result, nil
	}
	s.reporter.StepComplete(StepInstall, "")

	s.logger.Info("project created", "dir", result.ProjectDir, "files", len(result.Files))
	return result, nil
}
