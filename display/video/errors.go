package video

import (
	"errors"
	"fmt"
)

var ErrInvalidMode = errors.New("not a valid mode")

// FatalError means no usable surface or context could be obtained.
// The process cannot continue after one.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("video: %s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
