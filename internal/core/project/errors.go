// Package project scaffolds a new React project: it copies the boilerplate,
// personalizes the entry component and package.json, and installs dependencies.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrEmptyProjectName indicates the project name is empty after trimming.
	ErrEmptyProjectName = errors.New("project name cannot be empty")

	// ErrInvalidProjectName indicates the name is not a single directory name.
	ErrInvalidProjectName = errors.New("project name must be a single directory name")

	// ErrSourcePatch indicates the entry component could not be patched.
	ErrSourcePatch = errors.New("source patch failed")

	// ErrManifestPatch indicates package.json could not be patched.
	ErrManifestPatch = errors.New("manifest patch failed")

	// ErrInstallFailed indicates the package manager exited unsuccessfully.
	ErrInstallFailed = errors.New("dependency installation failed")

	// ErrUnknownPackageManager indicates an unsupported package manager name.
	ErrUnknownPackageManager = errors.New("unknown package manager")

	// ErrPackageManagerNotFound indicates the package manager binary is not on PATH.
	ErrPackageManagerNotFound = errors.New("package manager not found in PATH")
)
