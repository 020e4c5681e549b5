// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"chainres/internal/validator"
)

var (
	// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
	ErrInvalidKind = errors.New("invalid tool kind")
)

type (
	// Kind identifies the logical role a tool fills ("cc", "ld",
	// "xcode_dir"). It doubles as the session cache key and as the seed
	// for the environment-variable hint.
	Kind string

	// InvalidKindError is returned when a Kind is blank or contains
	// whitespace. Wraps ErrInvalidKind for errors.Is() compatibility.
	InvalidKindError struct {
		Value Kind
	}

	// Candidate is one concrete way to satisfy a Kind. Candidates are
	// immutable once constructed; their order within a Table entry is a
	// policy decision (most specific first) and is preserved.
	Candidate struct {
		// CrossPrefix is prepended to Name for cross-compilation
		// toolchains (e.g. "arm-linux-gnueabi-"). When empty, the
		// session's "cross" value applies instead.
		CrossPrefix string

		// Name is the bare executable name.
		Name string

		// Description is a human-readable label for trace output.
		Description string

		// Validate, when set, decides the candidate by itself: it is
		// invoked with CrossPrefix+Name and on success that exact string
		// becomes the resolved value. Failures of any sort downgrade to
		// "candidate not resolved".
		Validate validator.Func
	}

	// Table maps each Kind to its ordered candidate list.
	Table map[Kind][]Candidate
)

// Validate checks the kind constraints.
func (k Kind) Validate() error {
	if strings.TrimSpace(string(k)) == "" || strings.ContainsAny(string(k), " \t") {
		return &InvalidKindError{Value: k}
	}
	return nil
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid tool kind %q: must be non-blank without whitespace", string(e.Value))
}

func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// fullName returns the cross-qualified executable name using prefix as
// the effective cross prefix.
func (c Candidate) fullName(prefix string) string {
	return prefix + c.Name
}

// Kinds returns the table's kinds in sorted order, for deterministic
// whole-table checks.
func (t Table) Kinds() []Kind {
	kinds := make([]Kind, 0, len(t))
	for k := range t {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
