// SPDX-License-Identifier: MPL-2.0

package toolchain

import "chainres/internal/config"

// Source supplies the toolchain table for a resolution pass. The two
// variants cover static tables and tables computed from the session
// (e.g. candidate lists that depend on the configured target). A source
// is consulted exactly once per CheckAll call.
type Source interface {
	Table(session *config.Session) Table
}

type staticSource struct {
	table Table
}

// StaticSource wraps a fixed table.
func StaticSource(t Table) Source {
	return staticSource{table: t}
}

func (s staticSource) Table(*config.Session) Table {
	return s.table
}

// FuncSource computes the table from the session at check time.
type FuncSource func(session *config.Session) Table

func (f FuncSource) Table(session *config.Session) Table {
	return f(session)
}
