//go:build !cgo

package window

import (
	"errors"

	"github.com/taigrr/tracer/internal/demo"
)

// Options configures the window.
type Options struct {
	Title string
	Scale int
	FPS   int
}

// Run always fails: the window backend needs cgo.
func Run(_ *demo.Session, _ Options) error {
	return errors.New("window mode requires cgo (build with CGO_ENABLED=1)")
}
