package plot

import (
	"errors"
	"fmt"
)

// ErrSkipPanel is wrapped by panel callbacks whose data is unavailable. The
// composer draws a placeholder for such a panel instead of failing.
var ErrSkipPanel = errors.New("plot: panel skipped")

var errBadCanvas = errors.New("canvas too small")

// RenderBackendError reports a failure of the drawing surface or of writing
// its output.
type RenderBackendError struct {
	Op   string
	Path string
	Err  error
}

func (e *RenderBackendError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("plot: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("plot: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *RenderBackendError) Unwrap() error { return e.Err }
