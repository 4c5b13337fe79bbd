package cjkfont

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned when the current operating system is
// not one of the platforms with a known candidate list.
var ErrUnsupportedPlatform = errors.New("platform not supported")

// NotFoundError reports that no candidate path on a platform yielded a
// readable font file.
type NotFoundError struct {
	Platform Platform
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no CJK font found on %s", e.Platform)
}

// ReadError reports a failure to read a font file that was expected to be
// readable. Resolve skips unreadable candidates rather than returning it;
// it exists for callers with a stricter policy, such as the probe command,
// that want a candidate which exists but cannot be read reported
// distinctly from one that is absent.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading font file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
