package utils

import (
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// TerminalSize returns the width and height of the terminal behind fd
func TerminalSize(fd int) (width, height int, err error) {
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrTerminalUnavailable, "[TerminalSize] %v", err)
	}
	return width, height, nil
}

// BoardSize fits a framed board into a terminal of width x height.
// The border takes two columns and the frame plus a trailing line four rows.
func BoardSize(width, height int) (cols, rows int, err error) {
	cols, rows = width-2, height-4
	if cols < 1 || rows < 1 {
		return FallbackCols, FallbackRows, errors.Wrapf(ErrTerminalUnavailable, "[BoardSize] terminal %dx%d too small", width, height)
	}
	return cols, rows, nil
}
