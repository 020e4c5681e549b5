// SPDX-License-Identifier: MPL-2.0

package validator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ToolEnvVar carries the candidate name into shell validator scripts.
const ToolEnvVar = "CHAINRES_TOOL"

// Func validates one fully-qualified candidate name. A nil return means
// the name is usable as-is; any error means the candidate did not
// validate (and the resolution engine moves on).
type Func func(ctx context.Context, fullName string) error

// ErrRejected is the generic "validator said no" error used when a
// script or command exits non-zero without further detail.
var ErrRejected = errors.New("candidate rejected by validator")

// Shell builds a validator from a shell snippet, run in the in-process
// interpreter with the candidate name exported as $CHAINRES_TOOL.
// Non-zero exit means the candidate did not validate. The script is
// parsed on every call; returning parse errors as misses keeps broken
// table files from aborting a whole resolution pass.
func Shell(script string) Func {
	return func(ctx context.Context, fullName string) (err error) {
		defer recoverValidator(&err)

		prog, perr := syntax.NewParser().Parse(strings.NewReader(script), "validator")
		if perr != nil {
			return fmt.Errorf("validator script syntax error: %w", perr)
		}

		env := append(os.Environ(), ToolEnvVar+"="+fullName)
		runner, rerr := interp.New(
			interp.Env(expand.ListEnviron(env...)),
			interp.StdIO(nil, io.Discard, io.Discard),
		)
		if rerr != nil {
			return fmt.Errorf("validator interpreter: %w", rerr)
		}

		if rerr := runner.Run(ctx, prog); rerr != nil {
			var status interp.ExitStatus
			if errors.As(rerr, &status) {
				return fmt.Errorf("%w: exit status %d", ErrRejected, int(status))
			}
			return fmt.Errorf("validator script failed: %w", rerr)
		}
		return nil
	}
}

// Exec builds a validator that runs argv with the candidate name
// appended as the final argument. Non-zero exit or a failure to start
// means the candidate did not validate.
func Exec(argv ...string) Func {
	return func(ctx context.Context, fullName string) (err error) {
		defer recoverValidator(&err)

		if len(argv) == 0 {
			return errors.New("validator argv is empty")
		}
		cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], fullName)...)
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
		if rerr := cmd.Run(); rerr != nil {
			return fmt.Errorf("%w: %v", ErrRejected, rerr)
		}
		return nil
	}
}

// Guard wraps an arbitrary user validator so that panics become errors.
// The resolution engine applies this to every candidate validator.
func Guard(fn Func) Func {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, fullName string) (err error) {
		defer recoverValidator(&err)
		return fn(ctx, fullName)
	}
}

func recoverValidator(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("validator panicked: %v", r)
	}
}
