package project

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeManager puts an executable named npm on PATH that runs script.
func fakeManager(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script package manager stub requires a POSIX shell")
	}
	bin := t.TempDir()
	path := filepath.Join(bin, "npm")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", bin)
}

func TestNewCommandInstaller(t *testing.T) {
	inst, err := NewCommandInstaller("", nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewCommandInstaller error: %v", err)
	}
	if inst.Manager() != DefaultPackageManager {
		t.Errorf("Manager() = %q, want %q", inst.Manager(), DefaultPackageManager)
	}
	if inst.CommandLine() != "npm install" {
		t.Errorf("CommandLine() = %q, want %q", inst.CommandLine(), "npm install")
	}

	for _, pm := range SupportedPackageManagers() {
		if _, err := NewCommandInstaller(pm, nil, nil, nil, nil); err != nil {
			t.Errorf("NewCommandInstaller(%q) error: %v", pm, err)
		}
	}

	if _, err := NewCommandInstaller("maven", nil, nil, nil, nil); !errors.Is(err, ErrUnknownPackageManager) {
		t.Errorf("unknown manager error = %v, want ErrUnknownPackageManager", err)
	}
}

func TestCommandInstaller_Success(t *testing.T) {
	fakeManager(t, `echo "installed in $(pwd) with $1"`)
	dir := t.TempDir()

	var out bytes.Buffer
	inst, err := NewCommandInstaller("npm", nil, &out, &out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.Install(context.Background(), dir); err != nil {
		t.Fatalf("Install error: %v", err)
	}

	resolved, _ := filepath.EvalSymlinks(dir)
	if !strings.Contains(out.String(), "with install") {
		t.Errorf("output = %q, want install argument", out.String())
	}
	if !strings.Contains(out.String(), resolved) && !strings.Contains(out.String(), dir) {
		t.Errorf("output = %q, want working directory %q", out.String(), dir)
	}
}

func TestCommandInstaller_NonZeroExit(t *testing.T) {
	fakeManager(t, `echo "boom" >&2; exit 1`)

	var stderr bytes.Buffer
	inst, _ := NewCommandInstaller("npm", nil, &bytes.Buffer{}, &stderr, nil)
	err := inst.Install(context.Background(), t.TempDir())
	if !errors.Is(err, ErrInstallFailed) {
		t.Fatalf("error = %v, want ErrInstallFailed", err)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("stderr = %q, want child output streamed", stderr.String())
	}
}

func TestCommandInstaller_NotOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	inst, _ := NewCommandInstaller("pnpm", nil, nil, nil, nil)
	err := inst.Install(context.Background(), t.TempDir())
	if !errors.Is(err, ErrPackageManagerNotFound) {
		t.Errorf("error = %v, want ErrPackageManagerNotFound", err)
	}
}
