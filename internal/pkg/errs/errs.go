package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr so that Is(err, markErr) holds while keeping the
// original cause and its stack. Marks are invisible to the standard
// library's errors.Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether target appears in err's chain, including marks
// attached with Mark.
func Is(err error, target error) bool {
	return cr.Is(err, target)
}
