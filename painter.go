package menu

import (
	"io"

	colorable "github.com/mattn/go-colorable"
)

const (
	cursorSave    = "\x1b7"
	cursorRestore = "\x1b8"
	cursorDown    = "\x1b[1B"
	eraseDown     = "\x1b[J"
)

// Painter writes a rendered menu to the lines below the cursor and puts the
// cursor back afterwards. Output goes through a colorable writer so ANSI
// sequences survive on legacy Windows consoles.
//
// Painting assumes the host reserved enough lines below the cursor, see
// Menu.RequiredLines and Menu.MinRows. At the bottom margin the terminal
// scrolls and the restored cursor position is off by the scrolled amount.
type Painter struct {
	out io.Writer
}

// NewPainter returns a Painter writing to stdout.
func NewPainter() *Painter {
	return &Painter{out: colorable.NewColorableStdout()}
}

// NewPainterWriter returns a Painter writing to w. The caller is responsible
// for wrapping w if console color translation is needed.
func NewPainterWriter(w io.Writer) *Painter {
	return &Painter{out: w}
}

// NewPlainPainter returns a Painter writing to w with every ANSI escape
// sequence stripped. Useful when output is captured rather than shown on a
// terminal.
func NewPlainPainter(w io.Writer) *Painter {
	return &Painter{out: colorable.NewNonColorable(w)}
}

// Paint draws menuString starting on the line below the cursor, erases any
// residue from a previously painted taller menu, and restores the cursor.
func (p *Painter) Paint(menuString string) error {
	_, err := io.WriteString(p.out, cursorSave+cursorDown+"\r"+menuString+eraseDown+cursorRestore)
	return err
}

// Clear removes a previously painted menu by erasing everything below the
// line the cursor is on.
func (p *Painter) Clear() error {
	_, err := io.WriteString(p.out, cursorSave+cursorDown+"\r"+eraseDown+cursorRestore)
	return err
}
