// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"chainres/internal/config"
	"chainres/internal/probe"
	"chainres/internal/trace"
	"chainres/internal/validator"
)

// Checker resolves tool kinds against one session. It is synchronous
// and single-threaded; give each configuration session its own Checker.
type Checker struct {
	session *config.Session
	sink    trace.Sink

	// Seams for tests. Production values are os.Getenv and the probe
	// package; tests swap them to count lookups.
	env      func(string) string
	lookPath func(name string) (string, bool)
	lookDir  func(name, dir string) (string, bool)
}

// NewChecker creates a Checker over session. A nil sink discards trace
// output.
func NewChecker(session *config.Session, sink trace.Sink) *Checker {
	if sink == nil {
		sink = trace.Discard{}
	}
	return &Checker{
		session:  session,
		sink:     sink,
		env:      os.Getenv,
		lookPath: probe.Probe,
		lookDir:  probe.ProbeIn,
	}
}

// Check resolves one kind against its ordered candidate list.
//
// The first candidate that resolves wins and ends the search: later
// candidates are never consulted, even if they would resolve to a
// "better" tool. On success the resolved path is written to the session
// (in memory; CheckAll flushes). On total failure the session is left
// untouched and the miss is visible only through the trace and the
// false return.
func (c *Checker) Check(ctx context.Context, kind Kind, candidates []Candidate) (string, bool) {
	if kind.Validate() != nil {
		c.sink.Fail(string(kind), string(kind))
		return "", false
	}

	// Cache hit: the stored value is authoritative, no probing at all.
	if cached, ok := c.session.Get(string(kind)); ok {
		c.sink.Pass(string(kind), cached)
		return cached, true
	}

	sessionCross, _ := c.session.Get(config.KeyCross)

	for _, cand := range candidates {
		if resolved, ok := c.checkCandidate(ctx, kind, cand, sessionCross); ok {
			c.session.Set(string(kind), resolved)
			c.sink.Pass(string(kind), resolved)
			return resolved, true
		}
	}

	name := string(kind)
	if len(candidates) > 0 {
		name = candidates[len(candidates)-1].Name
	}
	c.sink.Fail(string(kind), name)
	return "", false
}

// checkCandidate walks the fallback ladder for a single candidate:
// env override, validator, toolchain-dir probe, PATH probe, bare name.
func (c *Checker) checkCandidate(ctx context.Context, kind Kind, cand Candidate, sessionCross string) (string, bool) {
	prefix := cand.CrossPrefix
	if prefix == "" {
		prefix = sessionCross
	}

	// Environment override: only honored when no cross prefix is in
	// play, and the variable's value is probed as a literal name.
	if strings.TrimSpace(prefix) == "" {
		if val := c.env(EnvHint(kind)); strings.TrimSpace(val) != "" {
			if path, ok := c.lookPath(val); ok {
				return path, true
			}
		}
	}

	full := cand.fullName(prefix)

	// Custom validator: on success the tried string itself is the
	// result. The convention is validating the exact string we intend
	// to use, so no separate path comes back.
	if cand.Validate != nil {
		if err := validator.Guard(cand.Validate)(ctx, full); err == nil {
			return full, true
		}
	}

	if dir := c.toolchainDir(); dir != "" {
		if path, ok := c.lookDir(full, dir); ok {
			return path, true
		}
	}

	if path, ok := c.lookPath(full); ok {
		return path, true
	}

	// Last resort: the bare name with any cross prefix dropped.
	if full != cand.Name {
		if path, ok := c.lookPath(cand.Name); ok {
			return path, true
		}
	}

	return "", false
}

// toolchainDir returns the restricted probe directory: the explicit
// "toolchains" value, else "<sdk>/bin" when an SDK root is configured.
func (c *Checker) toolchainDir() string {
	if dir, ok := c.session.Get(config.KeyToolchains); ok {
		return dir
	}
	if sdk, ok := c.session.Get(config.KeySDK); ok {
		return filepath.Join(sdk, "bin")
	}
	return ""
}

// CheckAll resolves every kind in the source's table (sorted for
// deterministic output) and then flushes the session, so results are
// durable across process restarts even when some kinds missed.
func (c *Checker) CheckAll(ctx context.Context, src Source) error {
	table := src.Table(c.session)
	for _, kind := range table.Kinds() {
		c.Check(ctx, kind, table[kind])
	}
	return c.session.Save()
}
