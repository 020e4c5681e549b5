// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"context"

	"chainres/internal/config"
	"chainres/internal/issue"
	"chainres/internal/trace"
	"chainres/pkg/platform"
)

// Checks runs the SDK-class resolutions over one session. Like the
// toolchain checker, it only mutates the session in memory; the caller
// flushes.
type Checks struct {
	session *config.Session
	sink    trace.Sink
	locator Locator
}

// NewChecks creates SDK checks over session using locator. A nil sink
// discards trace output; a nil locator defaults to XcodeLocator.
func NewChecks(session *config.Session, sink trace.Sink, locator Locator) *Checks {
	if sink == nil {
		sink = trace.Discard{}
	}
	if locator == nil {
		locator = XcodeLocator{}
	}
	return &Checks{session: session, sink: sink, locator: locator}
}

// CheckArch resolves the target architecture: cached value, then the
// supplied default, then the host's native architecture. It cannot
// fail, so it has no fatal path.
func (c *Checks) CheckArch(deflt string) string {
	if cached, ok := c.session.Get(config.KeyArch); ok {
		c.sink.Pass(config.KeyArch, cached)
		return cached
	}
	arch := deflt
	if arch == "" {
		arch = platform.NativeArch()
	}
	c.session.Set(config.KeyArch, arch)
	c.sink.Pass(config.KeyArch, arch)
	return arch
}

// CheckXcodeDir resolves the Xcode developer directory. An unresolvable
// directory is fatal: the configuration pass cannot continue, and the
// session is left without an xcode_dir value.
func (c *Checks) CheckXcodeDir(ctx context.Context) (string, error) {
	if cached, ok := c.session.Get(config.KeyXcodeDir); ok {
		c.sink.Pass(config.KeyXcodeDir, cached)
		return cached, nil
	}

	if dir, ok := c.locator.FindDeveloperDir(ctx); ok {
		c.session.Set(config.KeyXcodeDir, dir)
		c.sink.Pass(config.KeyXcodeDir, dir)
		return dir, nil
	}

	c.sink.Errorf("checking for Xcode directory ... no")
	return "", issue.Fatal(issue.NewErrorContext().
		WithOperation("locate the Xcode directory").
		WithResource(config.KeyXcodeDir).
		WithSuggestion("Install Xcode and run 'xcode-select --install'").
		WithSuggestion("Or set it manually: chainres config set " + config.KeyXcodeDir + " <path>").
		Build())
}

// CheckSDKVersion resolves the Xcode SDK version. On first resolution
// it also seeds target_minver with the same value when that key is
// absent; an existing target_minver is never touched. An unresolvable
// version is fatal.
func (c *Checks) CheckSDKVersion(ctx context.Context) (string, error) {
	if cached, ok := c.session.Get(config.KeySDKVersion); ok {
		c.sink.Pass(config.KeySDKVersion, cached)
		return cached, nil
	}

	devDir, _ := c.session.Get(config.KeyXcodeDir)
	arch, _ := c.session.Get(config.KeyArch)
	versions := c.locator.FindSDKVersions(ctx, Criteria{
		DeveloperDir: devDir,
		Platform:     DefaultPlatform,
		Arch:         arch,
	})

	if len(versions) > 0 {
		ver := versions[0]
		c.session.Set(config.KeySDKVersion, ver)
		if _, ok := c.session.Get(config.KeyTargetMinVer); !ok {
			c.session.Set(config.KeyTargetMinVer, ver)
		}
		c.sink.Pass(config.KeySDKVersion, ver)
		return ver, nil
	}

	c.sink.Errorf("checking for Xcode SDK version ... no")
	return "", issue.Fatal(issue.NewErrorContext().
		WithOperation("locate the Xcode SDK version").
		WithResource(config.KeySDKVersion).
		WithSuggestion("Check that the selected Xcode ships SDKs for " + DefaultPlatform).
		WithSuggestion("Or set it manually: chainres config set " + config.KeySDKVersion + " <version>").
		Build())
}

// CheckAll runs the architecture and Xcode checks in dependency order
// and stops at the first fatal miss.
func (c *Checks) CheckAll(ctx context.Context) error {
	c.CheckArch("")
	if _, err := c.CheckXcodeDir(ctx); err != nil {
		return err
	}
	if _, err := c.CheckSDKVersion(ctx); err != nil {
		return err
	}
	return nil
}
