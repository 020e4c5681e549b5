// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chainres/internal/config"
	"chainres/internal/sdk"
	"chainres/internal/toolchain"
	"chainres/internal/trace"
)

// noXcode is a Locator that never finds anything.
type noXcode struct{}

func (noXcode) FindDeveloperDir(context.Context) (string, bool)        { return "", false }
func (noXcode) FindSDKVersions(context.Context, sdk.Criteria) []string { return nil }

// fullXcode is a Locator with canned hits.
type fullXcode struct{}

func (fullXcode) FindDeveloperDir(context.Context) (string, bool) {
	return "/Applications/Xcode.app/Contents/Developer", true
}

func (fullXcode) FindSDKVersions(context.Context, sdk.Criteria) []string {
	return []string{"14.2", "13.4"}
}

// newTestApp builds an App over a temp store with captured output.
func newTestApp(t *testing.T, locator sdk.Locator) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	config.SetStoreDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		NewSink: func(bool) trace.Sink { return trace.Discard{} },
		Locator: locator,
		Stdout:  &stdout,
		Stderr:  &stderr,
	})
	return app, &stdout, &stderr
}

func TestRunCheck_TableFileResolvesAndSaves(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	binDir := t.TempDir()
	tool := filepath.Join(binDir, "xyzzy-cc")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir)
	t.Setenv("CC", "")

	tablePath := filepath.Join(t.TempDir(), "table.cue")
	if err := os.WriteFile(tablePath, []byte(`cc: [{name: "xyzzy-cc"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runCheck(context.Background(), app, checkOptions{TableFile: tablePath})
	if err != nil {
		t.Fatalf("runCheck: %v", err)
	}

	session, err := app.OpenSession(config.DefaultSessionName)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := session.Get("cc"); !ok || !strings.HasSuffix(got, "xyzzy-cc") {
		t.Errorf("cc = %q, %v", got, ok)
	}
}

func TestRunCheck_MissIsNotAnError(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	t.Setenv("PATH", t.TempDir())

	tablePath := filepath.Join(t.TempDir(), "table.cue")
	if err := os.WriteFile(tablePath, []byte(`strip: [{name: "xyzzy-strip"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCheck(context.Background(), app, checkOptions{TableFile: tablePath}); err != nil {
		t.Errorf("soft miss must not be an error, got %v", err)
	}
}

func TestRunCheck_FatalSDKMiss(t *testing.T) {
	app, _, stderr := newTestApp(t, noXcode{})

	err := runCheck(context.Background(), app, checkOptions{WithSDK: true})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("expected ExitError code 1, got %v", err)
	}
	if !strings.Contains(stderr.String(), "xcode_dir") {
		t.Errorf("remediation output should name xcode_dir:\n%s", stderr.String())
	}

	session, err := app.OpenSession(config.DefaultSessionName)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := session.Get(config.KeyXcodeDir); ok {
		t.Error("fatal miss must not persist xcode_dir")
	}
}

func TestRunCheck_WithSDKResolvesAndSeedsMinVer(t *testing.T) {
	app, _, _ := newTestApp(t, fullXcode{})
	t.Setenv("PATH", t.TempDir())

	tablePath := filepath.Join(t.TempDir(), "table.cue")
	if err := os.WriteFile(tablePath, []byte(`cc: []`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runCheck(context.Background(), app, checkOptions{TableFile: tablePath, WithSDK: true}); err != nil {
		t.Fatalf("runCheck: %v", err)
	}

	session, err := app.OpenSession(config.DefaultSessionName)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := session.Get(config.KeySDKVersion); got != "14.2" {
		t.Errorf("xcode_sdkver = %q", got)
	}
	if got, _ := session.Get(config.KeyTargetMinVer); got != "14.2" {
		t.Errorf("target_minver = %q", got)
	}
	if _, ok := session.Get(config.KeyArch); !ok {
		t.Error("arch should be resolved by --with-sdk")
	}
}

func TestRunCheck_ExplicitKindsOnly(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	binDir := t.TempDir()
	for _, name := range []string{"xyzzy-cc", "xyzzy-ld"} {
		if err := os.WriteFile(filepath.Join(binDir, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PATH", binDir)

	tablePath := filepath.Join(t.TempDir(), "table.cue")
	table := `
cc: [{name: "xyzzy-cc"}]
ld: [{name: "xyzzy-ld"}]
`
	if err := os.WriteFile(tablePath, []byte(table), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runCheck(context.Background(), app, checkOptions{TableFile: tablePath, Kinds: []string{"cc"}})
	if err != nil {
		t.Fatalf("runCheck: %v", err)
	}

	session, err := app.OpenSession(config.DefaultSessionName)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := session.Get("cc"); !ok {
		t.Error("requested kind cc should resolve")
	}
	if _, ok := session.Get("ld"); ok {
		t.Error("unrequested kind ld should not be checked")
	}
}

func TestDefaultSource_CoreKindsPresent(t *testing.T) {
	t.Parallel()
	table := defaultSource.Table(nil)
	for _, kind := range []toolchain.Kind{"cc", "cxx", "ld", "ar", "strip"} {
		if len(table[kind]) == 0 {
			t.Errorf("builtin table missing %s", kind)
		}
	}
}
