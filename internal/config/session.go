// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"chainres/internal/issue"
	"chainres/pkg/platform"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the store directory.
	AppName = "chainres"
	// StoreFileExt is the session file extension.
	StoreFileExt = "toml"
	// DefaultSessionName is used when the caller names no configuration.
	DefaultSessionName SessionName = "default"
)

// Session is a mutable key/value store scoped to one build configuration.
// Keys are case-insensitive and stored lower-case, matching how viper
// reads them back; values are strings. Mutations stay in memory until
// Save.
type Session struct {
	name   SessionName
	path   string
	values map[string]string
}

// StoreDir returns the chainres store directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
func StoreDir() (string, error) {
	// Allow tests to override the store directory
	if storeDirOverride != "" {
		return storeDirOverride, nil
	}

	var dir string

	switch runtime.GOOS {
	case platform.Windows:
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		dir = os.Getenv("XDG_CONFIG_HOME")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			dir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(dir, AppName), nil
}

// Open loads the named session from the store directory, creating an
// empty in-memory session when no file exists yet. A missing file is
// not an error; a malformed one is.
func Open(name SessionName) (*Session, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	dir, err := StoreDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, string(name)+"."+StoreFileExt)

	s := &Session{
		name:   name,
		path:   path,
		values: make(map[string]string),
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(StoreFileExt)
	if err := v.ReadInConfig(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load resolution store").
			WithResource(path).
			WithSuggestion("Check that the file contains valid TOML").
			WithSuggestion("Delete the file to start from a clean configuration").
			Wrap(err).
			Build()
	}
	for _, key := range v.AllKeys() {
		s.values[key] = v.GetString(key)
	}

	return s, nil
}

// Name returns the session's configuration name.
func (s *Session) Name() SessionName { return s.name }

// Path returns the backing file path.
func (s *Session) Path() string { return s.path }

// Get returns the value for key and whether it is set. Blank values
// count as unset: the engine treats "" and absence identically.
func (s *Session) Get(key string) (string, bool) {
	val, ok := s.values[normalizeKey(key)]
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

// Set stores value under key in memory. Call Save to persist.
func (s *Session) Set(key, value string) {
	if validateKey(key) != nil {
		return
	}
	s.values[normalizeKey(key)] = value
}

// Delete removes key from the session.
func (s *Session) Delete(key string) {
	delete(s.values, normalizeKey(key))
}

// Keys returns all set keys in sorted order.
func (s *Session) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save writes the session to its backing file, creating the store
// directory as needed.
func (s *Session) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	data, err := toml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to encode resolution store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return issue.NewErrorContext().
			WithOperation("save resolution store").
			WithResource(s.path).
			WithSuggestion("Check directory permissions").
			Wrap(err).
			Build()
	}
	return nil
}
