// SPDX-License-Identifier: MPL-2.0

package probe

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"chainres/pkg/platform"
)

// Probe looks name up on the process search path and returns its absolute
// path. name may also be a path (absolute or relative with a separator),
// in which case it is checked directly, matching exec.LookPath semantics.
func Probe(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	// LookPath can return a relative path when name contains a separator.
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	return abs, true
}

// ProbeIn looks name up restricted to dir only; the process search path
// is never consulted. Returns the absolute path on success.
func ProbeIn(name, dir string) (string, bool) {
	if name == "" || dir == "" {
		return "", false
	}
	for _, candidate := range []string{name, name + platform.ExeSuffix()} {
		full := filepath.Join(dir, candidate)
		if isExecutable(full) {
			if abs, err := filepath.Abs(full); err == nil {
				return abs, true
			}
		}
		if platform.ExeSuffix() == "" {
			break
		}
	}
	return "", false
}

// isExecutable reports whether path is a regular file the process could
// execute. On Windows the mode bits carry no execute information, so
// existence of the file is enough.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == platform.Windows {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
