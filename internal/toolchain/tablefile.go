// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	_ "embed"
	"fmt"
	"os"

	"chainres/internal/validator"
	"chainres/pkg/cueutil"
)

//go:embed table_schema.cue
var tableSchema []byte

type (
	// fileValidator is the decoded validator disjunction from a table
	// file: exactly one of Shell or Exec is set.
	fileValidator struct {
		Shell string   `json:"shell,omitempty"`
		Exec  []string `json:"exec,omitempty"`
	}

	// fileCandidate is one decoded candidate entry.
	fileCandidate struct {
		Name        string         `json:"name"`
		Cross       string         `json:"cross,omitempty"`
		Description string         `json:"description,omitempty"`
		Validator   *fileValidator `json:"validator,omitempty"`
	}
)

// LoadTableFile reads a CUE toolchain table file, validates it against
// the embedded schema, and builds the runtime Table. Shell validators
// run in the in-process interpreter; exec validators run the given argv
// with the candidate name appended.
func LoadTableFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read toolchain table: %w", err)
	}
	return parseTable(data, path)
}

func parseTable(data []byte, filename string) (Table, error) {
	decoded, err := cueutil.ParseAndDecode[map[string][]fileCandidate](
		tableSchema, data, "#Table", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}

	table := make(Table, len(*decoded))
	for rawKind, entries := range *decoded {
		kind := Kind(rawKind)
		if err := kind.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		candidates := make([]Candidate, 0, len(entries))
		for _, entry := range entries {
			candidates = append(candidates, Candidate{
				CrossPrefix: entry.Cross,
				Name:        entry.Name,
				Description: entry.Description,
				Validate:    entry.Validator.toFunc(),
			})
		}
		table[kind] = candidates
	}
	return table, nil
}

func (v *fileValidator) toFunc() validator.Func {
	switch {
	case v == nil:
		return nil
	case v.Shell != "":
		return validator.Shell(v.Shell)
	case len(v.Exec) > 0:
		return validator.Exec(v.Exec...)
	default:
		return nil
	}
}
