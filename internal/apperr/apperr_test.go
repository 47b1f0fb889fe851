package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestUserError(t *testing.T) {
	err := Userf("unknown mode %q", "x")
	if err.Error() != `unknown mode "x"` {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !IsUser(fmt.Errorf("wrapped: %w", err)) {
		t.Fatalf("expected wrapped UserError to be detected")
	}
	if IsUser(errors.New("plain")) {
		t.Fatalf("plain error must not be a UserError")
	}
}

func TestWriteError(t *testing.T) {
	err := error(&WriteError{Path: "out/x.json", Err: fs.ErrPermission})
	if !IsWrite(err) {
		t.Fatalf("expected WriteError")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected Unwrap to expose the OS error")
	}
	if got, want := err.Error(), "write out/x.json: permission denied"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if IsWrite(User("x")) {
		t.Fatalf("UserError must not be a WriteError")
	}
}
