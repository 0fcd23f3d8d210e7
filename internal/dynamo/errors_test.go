package dynamo

import (
	"errors"
	"strings"
	"testing"
)

func TestConvergenceError_Unwrap(t *testing.T) {
	var err error = &ConvergenceError{MaxIter: 500, Last: Vec{0.3}}

	if !errors.Is(err, ErrNoConvergence) {
		t.Error("ConvergenceError should match ErrNoConvergence")
	}

	var cerr *ConvergenceError
	if !errors.As(err, &cerr) {
		t.Fatal("errors.As failed")
	}
	if cerr.MaxIter != 500 {
		t.Errorf("MaxIter = %d, want 500", cerr.MaxIter)
	}
}

func TestConvergenceError_Message(t *testing.T) {
	err := &ConvergenceError{MaxIter: 42, Last: Vec{0.125}}
	msg := err.Error()

	if !strings.Contains(msg, "42") {
		t.Errorf("message %q should report the iteration budget", msg)
	}
	if !strings.Contains(msg, "0.125") {
		t.Errorf("message %q should report the last value", msg)
	}
}
