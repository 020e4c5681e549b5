// SPDX-License-Identifier: MPL-2.0

package validator

import (
	"context"
	"errors"
	"testing"
)

func TestShell_ExitZeroValidates(t *testing.T) {
	t.Parallel()
	fn := Shell("true")
	if err := fn(context.Background(), "arm-linux-gnueabi-gcc"); err != nil {
		t.Errorf("expected success, got %v", err)
	}
}

func TestShell_NonZeroExitRejects(t *testing.T) {
	t.Parallel()
	fn := Shell("exit 3")
	err := fn(context.Background(), "cc")
	if !errors.Is(err, ErrRejected) {
		t.Errorf("expected ErrRejected, got %v", err)
	}
}

func TestShell_SeesToolEnvVar(t *testing.T) {
	t.Parallel()
	fn := Shell(`[ "$CHAINRES_TOOL" = "sparc-sun-solaris-as" ]`)
	if err := fn(context.Background(), "sparc-sun-solaris-as"); err != nil {
		t.Errorf("script should see $CHAINRES_TOOL, got %v", err)
	}
	if err := fn(context.Background(), "something-else"); err == nil {
		t.Error("mismatched name should be rejected")
	}
}

func TestShell_SyntaxErrorIsMissNotPanic(t *testing.T) {
	t.Parallel()
	fn := Shell("if then fi (")
	if err := fn(context.Background(), "cc"); err == nil {
		t.Error("broken script should report an error")
	}
}

func TestExec_MissingBinaryRejects(t *testing.T) {
	t.Parallel()
	fn := Exec("chainres-no-such-validator-xyzzy")
	if err := fn(context.Background(), "cc"); !errors.Is(err, ErrRejected) {
		t.Errorf("expected ErrRejected, got %v", err)
	}
}

func TestExec_EmptyArgv(t *testing.T) {
	t.Parallel()
	fn := Exec()
	if err := fn(context.Background(), "cc"); err == nil {
		t.Error("empty argv should error")
	}
}

func TestGuard_RecoversPanics(t *testing.T) {
	t.Parallel()
	fn := Guard(func(context.Context, string) error {
		panic("user validator bug")
	})
	err := fn(context.Background(), "cc")
	if err == nil {
		t.Fatal("panic should surface as an error")
	}
}

func TestGuard_NilPassthrough(t *testing.T) {
	t.Parallel()
	if Guard(nil) != nil {
		t.Error("Guard(nil) should stay nil so absence checks keep working")
	}
}
