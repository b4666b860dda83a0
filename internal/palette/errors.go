package palette

import "errors"

var (
	// ErrInvalidArgument reports a caller-supplied value outside its domain,
	// such as a palette size of zero or a palette buffer whose length is not
	// a multiple of three.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyColorSet reports that there were no colours to work with.
	ErrEmptyColorSet = errors.New("empty color set")
)
