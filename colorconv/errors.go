package colorconv

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is matched by every parse failure in this package:
//
//	if errors.Is(err, colorconv.ErrInvalidFormat) { ... }
var ErrInvalidFormat = errors.New("invalid color format")

// InvalidFormatError reports a string that does not match the grammar required
// by the requested parse operation.
type InvalidFormatError struct {
	Input   string  // The offending input, unmodified
	Grammar Grammar // The grammar the input was expected to match
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid %s color format: %q", e.Grammar, e.Input)
}

// Is reports whether target is ErrInvalidFormat.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func invalid(input string, g Grammar) error {
	return &InvalidFormatError{Input: input, Grammar: g}
}
