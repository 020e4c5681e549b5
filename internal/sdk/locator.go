// SPDX-License-Identifier: MPL-2.0

package sdk

import "context"

// Criteria narrows an SDK version search.
type Criteria struct {
	// DeveloperDir is the resolved Xcode developer directory.
	DeveloperDir string
	// Platform is the SDK platform id (default "MacOSX").
	Platform string
	// Arch is the target architecture, for locators that filter on it.
	Arch string
}

// Locator finds platform SDK artifacts on the current machine.
// Production locators shell out or walk the filesystem; tests inject
// fakes. Absence is a normal result, never an error.
type Locator interface {
	// FindDeveloperDir returns the Xcode developer directory, if any.
	FindDeveloperDir(ctx context.Context) (string, bool)

	// FindSDKVersions returns matching SDK versions, best first. The
	// first element is authoritative; an empty slice means none found.
	FindSDKVersions(ctx context.Context, criteria Criteria) []string
}
