// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Reserved store keys with fixed meaning to the resolution engine.
// Every other key is a tool kind holding its resolved path.
const (
	// KeyCross is the cross-compilation prefix (e.g. "arm-linux-gnueabi-").
	KeyCross = "cross"
	// KeyToolchains is an explicit toolchain binary directory.
	KeyToolchains = "toolchains"
	// KeySDK is the SDK root; <sdk>/bin is the fallback toolchain dir.
	KeySDK = "sdk"
	// KeyArch is the target architecture.
	KeyArch = "arch"
	// KeyXcodeDir is the Xcode developer directory (darwin only).
	KeyXcodeDir = "xcode_dir"
	// KeySDKVersion is the selected Xcode SDK version (darwin only).
	KeySDKVersion = "xcode_sdkver"
	// KeyTargetMinVer is the minimum deployment target version.
	KeyTargetMinVer = "target_minver"
)

var (
	// ErrInvalidSessionName is the sentinel error wrapped by InvalidSessionNameError.
	ErrInvalidSessionName = errors.New("invalid session name")
	// ErrInvalidKey is the sentinel error wrapped by InvalidKeyError.
	ErrInvalidKey = errors.New("invalid store key")
)

type (
	// SessionName identifies one build configuration's store file.
	// A valid name is non-blank and contains no path separators.
	SessionName string

	// InvalidSessionNameError is returned when a SessionName is blank or
	// would escape the store directory. Wraps ErrInvalidSessionName for
	// errors.Is() compatibility.
	InvalidSessionNameError struct {
		Value SessionName
	}

	// InvalidKeyError is returned when a store key is blank.
	// Wraps ErrInvalidKey for errors.Is() compatibility.
	InvalidKeyError struct {
		Value string
	}
)

// Validate checks the session name constraints.
func (n SessionName) Validate() error {
	if strings.TrimSpace(string(n)) == "" || strings.ContainsAny(string(n), `/\`) {
		return &InvalidSessionNameError{Value: n}
	}
	return nil
}

func (e *InvalidSessionNameError) Error() string {
	return fmt.Sprintf("invalid session name %q: must be non-blank with no path separators", string(e.Value))
}

func (e *InvalidSessionNameError) Unwrap() error { return ErrInvalidSessionName }

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid store key %q: must be non-blank", e.Value)
}

func (e *InvalidKeyError) Unwrap() error { return ErrInvalidKey }

// validateKey rejects blank keys before they reach the store.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return &InvalidKeyError{Value: key}
	}
	return nil
}

// normalizeKey lower-cases store keys. Viper lower-cases keys when a
// store file is read back, so the in-memory map must do the same or a
// saved mixed-case key would reload under a different name.
func normalizeKey(key string) string {
	return strings.ToLower(key)
}
