// Package cli provides the Cobra command tree and dependency wiring for
// react-cli. This file defines the Dependencies struct (Composition Root).
package cli

import (
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/reactcli/react-cli/internal/catalog"
	"github.com/reactcli/react-cli/internal/cli/wizard"
	"github.com/reactcli/react-cli/internal/config"
	"github.com/reactcli/react-cli/internal/core/project"
	"github.com/reactcli/react-cli/internal/template"
	"github.com/reactcli/react-cli/internal/ui"
)

// InstallerFactory builds the dependency installer for a package manager.
type InstallerFactory func(manager string, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) (project.Installer, error)

// WizardFunc collects answers interactively.
type WizardFunc func(cat *catalog.Catalog, opts wizard.Options) (*wizard.Result, error)

// Dependencies holds the services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Logger       *slog.Logger
	Config       *config.Config
	Catalog      *catalog.Catalog
	Template     fs.FS
	Fs           afero.Fs
	Headless     *ui.HeadlessManager
	Theme        *ui.Theme
	WorkDir      func() (string, error)
	NewInstaller InstallerFactory
	RunWizard    WizardFunc

	// Progress overrides the progress UI. When nil it is built per command
	// from the command's output writer.
	Progress ui.Progress
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires the default dependencies.
// Catalog and template errors surface when a command first needs them.
func InitDependencies() {
	// Discard logs unless --verbose swaps in a stderr handler.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cat, err := catalog.Load()
	if err != nil {
		logger.Error("load catalog", "error", err)
	}
	tmpl, err := template.EmbeddedTemplates()
	if err != nil {
		logger.Error("load embedded template", "error", err)
	}

	deps = &Dependencies{
		Logger:       logger,
		Catalog:      cat,
		Template:     tmpl,
		Fs:           afero.NewOsFs(),
		Headless:     ui.NewHeadlessManager(),
		Theme:        ui.NewTheme(ui.ThemeConfig{}),
		WorkDir:      os.Getwd,
		NewInstaller: newCommandInstaller,
		RunWizard:    wizard.Run,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

func newCommandInstaller(manager string, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) (project.Installer, error) {
	inst, err := project.NewCommandInstaller(manager, stdin, stdout, stderr, logger)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// verboseLogger returns a debug-level text logger writing to w.
func verboseLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
