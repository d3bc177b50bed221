package db

import (
	"context"
	"errors"
	"testing"
)

func TestError_WrapsAndFormats(t *testing.T) {
	err := &Error{Op: OpZAdd, Err: context.DeadlineExceeded}

	if err.Error() != "ZADD: context deadline exceeded" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected errors.Is to see the wrapped error")
	}

	var dbErr *Error
	if !errors.As(error(err), &dbErr) || dbErr.Op != OpZAdd {
		t.Errorf("errors.As failed: %v", dbErr)
	}
}
