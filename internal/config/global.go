// SPDX-License-Identifier: MPL-2.0

package config

// storeDirOverride allows tests to override the store directory.
// This is necessary because os.UserHomeDir() doesn't reliably respect
// the HOME environment variable on all platforms (e.g., macOS in CI).
var storeDirOverride string

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	storeDirOverride = ""
}

// SetStoreDirOverride sets a custom store directory path.
// Primarily intended for testing to bypass os.UserHomeDir().
func SetStoreDirOverride(dir string) {
	storeDirOverride = dir
}
