// Package project implements the interactive flow behind tt: acquiring a
// target directory, guarding non-empty targets, validating the package
// name, locating the bundled template and copying it into place.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInputCanceled indicates the user aborted an interactive prompt.
	ErrInputCanceled = errors.New("operation canceled")

	// ErrOverwriteDeclined indicates the user refused to clear a non-empty target.
	ErrOverwriteDeclined = errors.New("operation canceled: target directory is not empty")

	// ErrInvalidProjectName indicates the normalized name fails the package naming rules.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrInstallationRootNotFound indicates no package.json marker was found
	// in any directory above the running executable.
	ErrInstallationRootNotFound = errors.New("installation root not found: templates must sit next to a package.json above the tt binary")
)
