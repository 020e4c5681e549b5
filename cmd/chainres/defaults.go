// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"chainres/internal/config"
	"chainres/internal/toolchain"
)

// defaultSource is the builtin toolchain table used when no table file
// is given. Candidate order is most-specific first and is meaningful:
// the first hit wins.
var defaultSource = toolchain.FuncSource(func(*config.Session) toolchain.Table {
	return toolchain.Table{
		"cc": {
			{Name: "clang", Description: "LLVM C compiler"},
			{Name: "gcc", Description: "GNU C compiler"},
			{Name: "cc", Description: "system C compiler"},
		},
		"cxx": {
			{Name: "clang++", Description: "LLVM C++ compiler"},
			{Name: "g++", Description: "GNU C++ compiler"},
			{Name: "c++", Description: "system C++ compiler"},
		},
		"as": {
			{Name: "as", Description: "assembler"},
		},
		"ld": {
			{Name: "ld", Description: "linker"},
		},
		"ar": {
			{Name: "ar", Description: "static archiver"},
		},
		"strip": {
			{Name: "strip", Description: "symbol stripper"},
		},
		"ranlib": {
			{Name: "ranlib", Description: "archive indexer"},
		},
		"nm": {
			{Name: "nm", Description: "symbol lister"},
		},
	}
})
