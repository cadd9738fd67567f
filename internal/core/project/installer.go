package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"slices"
	"strings"
)

// DefaultPackageManager is used when none is configured.
const DefaultPackageManager = "npm"

// installArgs maps each supported package manager to its install arguments.
var installArgs = map[string][]string{
	"npm":  {"install"},
	"yarn": {"install"},
	"pnpm": {"install"},
	"bun":  {"install"},
}

// SupportedPackageManagers returns the package managers that can install dependencies.
func SupportedPackageManagers() []string {
	names := make([]string, 0, len(installArgs))
	for name := range installArgs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsSupportedPackageManager reports whether name is a known package manager.
func IsSupportedPackageManager(name string) bool {
	_, ok := installArgs[name]
	return ok
}

// Installer installs a project's dependencies.
type Installer interface {
	// Install runs the dependency installation inside dir.
	Install(ctx context.Context, dir string) error
}

// CommandInstaller runs "<manager> install" as a child process that shares
// the caller's terminal streams.
type CommandInstaller struct {
	manager string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
}

// NewCommandInstaller creates an installer for the given package manager.
func NewCommandInstaller(manager string, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) (*CommandInstaller, error) {
	if manager == "" {
		manager = DefaultPackageManager
	}
	if !IsSupportedPackageManager(manager) {
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnknownPackageManager, manager, strings.Join(SupportedPackageManagers(), ", "))
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CommandInstaller{
		manager: manager,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
	}, nil
}

// Manager returns the package manager name.
func (i *CommandInstaller) Manager() string {
	return i.manager
}

// CommandLine returns the install command as shown to the user.
func (i *CommandInstaller) CommandLine() string {
	return strings.Join(append([]string{i.manager}, installArgs[i.manager]...), " ")
}

// Install runs the package manager in dir and waits for it to exit.
func (i *CommandInstaller) Install(ctx context.Context, dir string) error {
	bin, err := exec.LookPath(i.manager)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPackageManagerNotFound, i.manager)
	}

	cmd := exec.CommandContext(ctx, bin, installArgs[i.manager]...)
	cmd.Dir = dir
	cmd.Stdin = i.stdin
	cmd.Stdout = i.stdout
	cmd.Stderr = i.stderr

	i.logger.Debug("running package manager", "command", i.CommandLine(), "dir", dir)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInstallFailed, i.CommandLine(), err)
	}
	return nil
}
