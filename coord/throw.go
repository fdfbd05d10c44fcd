package coord

import "github.com/pkg/errors"

// The event loop and its helpers signal fatal conditions with panics
// instead of threading error returns through every arithmetic step. The
// public entry point recovers and converts to an ordinary error.

type coordError struct {
	err error
}

// fatal aborts the current coordination call with err.
func fatal(err error) {
	panic(coordError{err})
}

func fatalf(format string, args ...interface{}) {
	fatal(errors.Errorf(format, args...))
}

// recoverCoordError converts a recovered coordination panic back into an
// error, and re-panics on anything else.
func recoverCoordError(r interface{}) error {
	if r == nil {
		return nil
	}
	if ce, ok := r.(coordError); ok {
		return ce.err
	}
	panic(r)
}
