package papertrade

import "errors"

// isErr is a test shorthand for errors.Is.
func isErr(err, target error) bool { return errors.Is(err, target) }
