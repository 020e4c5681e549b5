// SPDX-License-Identifier: MPL-2.0

package probe

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"chainres/pkg/platform"
)

// writeFakeTool creates an executable file named name under dir.
func writeFakeTool(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProbe_MissingIsSilent(t *testing.T) {
	t.Parallel()
	if path, ok := Probe("chainres-no-such-tool-xyzzy"); ok {
		t.Errorf("expected miss, got %q", path)
	}
}

func TestProbe_EmptyName(t *testing.T) {
	t.Parallel()
	if _, ok := Probe(""); ok {
		t.Error("empty name must not resolve")
	}
}

func TestProbe_FindsOnPath(t *testing.T) {
	dir := t.TempDir()
	writeFakeTool(t, dir, "xyzzy-cc")
	t.Setenv("PATH", dir)

	path, ok := Probe("xyzzy-cc")
	if !ok {
		t.Fatal("expected xyzzy-cc on PATH")
	}
	if !filepath.IsAbs(path) {
		t.Errorf("resolved path %q is not absolute", path)
	}
}

func TestProbeIn_RestrictedToDir(t *testing.T) {
	inside := t.TempDir()
	outside := t.TempDir()
	writeFakeTool(t, outside, "xyzzy-ld")
	t.Setenv("PATH", outside)

	// On PATH but not in the restricted dir: must miss.
	if path, ok := ProbeIn("xyzzy-ld", inside); ok {
		t.Errorf("ProbeIn must not consult PATH, got %q", path)
	}

	want := writeFakeTool(t, inside, "xyzzy-ld")
	got, ok := ProbeIn("xyzzy-ld", inside)
	if !ok {
		t.Fatal("expected hit in restricted dir")
	}
	if got != want {
		t.Errorf("ProbeIn = %q, want %q", got, want)
	}
}

func TestProbeIn_RejectsDirectoriesAndNonExecutables(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, ok := ProbeIn("subdir", dir); ok {
		t.Error("directories must not resolve")
	}

	if runtime.GOOS == platform.Windows {
		t.Skip("mode bits carry no execute information on windows")
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := ProbeIn("notes.txt", dir); ok {
		t.Error("non-executable files must not resolve")
	}
}
