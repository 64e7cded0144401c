package model

import (
	"bufio"
	"io"

	"github.com/jcorbin/anansi/ansi"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/deltalife/utils"
)

var (
	clearScreen = ansi.ED.With('2')
	cursorHome  = ansi.CUP.WithInts(1, 1)

	// bytes written ahead of the top border
	framePrefixLen = len(cursorHome.AppendTo(clearScreen.AppendTo(nil)))
)

const (
	frameBorderEdge   = '|'
	frameBorderFiller = '-'

	// room for one cursor position sequence
	moveSeqLen = len("\x1b[;H") + 2*6
)

// FullFrame serializes the whole board framed by borders, prefixed with screen clear and cursor home
func FullFrame(b *Board) []byte {
	return AppendFullFrame(make([]byte, 0, fullFrameSize(b)), b)
}

// fullFrameSize is the exact length of a full frame, every line ends with a newline
func fullFrameSize(b *Board) int {
	return (b.rows+2)*(b.cols+2) + b.rows + 2 + framePrefixLen
}

// AppendFullFrame appends the full frame of b to buf
func AppendFullFrame(buf []byte, b *Board) []byte {
	buf = clearScreen.AppendTo(buf)
	buf = cursorHome.AppendTo(buf)
	buf = appendBorder(buf, b.cols)
	for r := range b.cells {
		buf = append(buf, frameBorderEdge)
		for _, alive := range b.cells[r] {
			buf = append(buf, glyph(alive))
		}
		buf = append(buf, frameBorderEdge, '\n')
	}
	return appendBorder(buf, b.cols)
}

func appendBorder(buf []byte, cols int) []byte {
	buf = append(buf, frameBorderEdge)
	for range cols {
		buf = append(buf, frameBorderFiller)
	}
	return append(buf, frameBorderEdge, '\n')
}

// PartialFrame emits a cursor-addressed glyph for every changed cell and parks the cursor below the frame
func PartialFrame(b *Board, delta Delta) []byte {
	buf := make([]byte, 0, (len(delta)+1)*(moveSeqLen+1))
	return AppendPartialFrame(buf, b, delta)
}

// AppendPartialFrame appends the partial update for delta to buf.
// Terminal rows and columns are 1-based and shifted by the border.
func AppendPartialFrame(buf []byte, b *Board, delta Delta) []byte {
	for _, p := range delta {
		buf = appendMove(buf, p.Row+2, p.Col+2)
		buf = append(buf, glyph(b.cells[p.Row][p.Col]))
	}
	return appendMove(buf, b.rows+3, 1)
}

func appendMove(buf []byte, row, col int) []byte {
	return ansi.CUP.WithInts(row, col).AppendTo(buf)
}

// TerminalRenderer writes frames to a buffered terminal stream
type TerminalRenderer struct {
	w   *bufio.Writer
	buf []byte
}

// NewTerminalRenderer creates a renderer over w
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{w: bufio.NewWriter(w)}
}

// Frame writes a full frame of the board
func (r *TerminalRenderer) Frame(b *Board) error {
	r.buf = AppendFullFrame(r.buf[:0], b)
	return r.write("Frame")
}

// Paint writes the partial update for delta in a single write
func (r *TerminalRenderer) Paint(b *Board, delta Delta) error {
	r.buf = AppendPartialFrame(r.buf[:0], b, delta)
	return r.write("Paint")
}

// Park moves the cursor below the framed region of b
func (r *TerminalRenderer) Park(b *Board) error {
	r.buf = appendMove(r.buf[:0], b.rows+3, 1)
	return r.write("Park")
}

// Flush pushes buffered output to the terminal
func (r *TerminalRenderer) Flush() error {
	if err := r.w.Flush(); err != nil {
		return errors.Wrapf(utils.ErrIOWriteFailed, "[Flush] %v", err)
	}
	return nil
}

func (r *TerminalRenderer) write(op string) error {
	if _, err := r.w.Write(r.buf); err != nil {
		return errors.Wrapf(utils.ErrIOWriteFailed, "[%s] %v", op, err)
	}
	return nil
}
