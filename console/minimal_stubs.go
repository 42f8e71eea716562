//go:build minimal

package console

import (
	"errors"

	"github.com/ergochat/inputdog/lib"
)

var errNoReadline = errors.New("readline support disabled at compile time")

func NewReadlineEditor(config lib.Config, out Console, hint string) (Editor, error) {
	return nil, errNoReadline
}
