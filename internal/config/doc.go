// SPDX-License-Identifier: MPL-2.0

// Package config holds the per-configuration resolution store.
//
// A Session is a flat string key/value store scoped to one build
// configuration, persisted as a TOML file. The resolution engine treats
// it as authoritative: once a tool kind has a value here, it is never
// re-probed. Sessions are explicit values passed into every resolution
// call, never process-wide singletons, so independent configurations
// (and tests) can coexist.
package config
