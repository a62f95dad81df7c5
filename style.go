package menu

import "strconv"

// Color represents terminal foreground or background colors.
type Color int

const (
	// DefaultColor leaves the terminal's configured color untouched.
	DefaultColor Color = iota

	// Low intensity.
	Black
	DarkRed
	DarkGreen
	Brown
	DarkBlue
	Purple
	Cyan
	LightGray

	// High intensity.
	DarkGray
	Red
	Green
	Yellow
	Blue
	Fuchsia
	Turquoise
	White
)

// foregroundCode returns the SGR parameter selecting c as the foreground
// color, or 0 for DefaultColor.
func (c Color) foregroundCode() int {
	switch {
	case c >= Black && c <= LightGray:
		return 30 + int(c-Black)
	case c >= DarkGray && c <= White:
		return 90 + int(c-DarkGray)
	default:
		return 0
	}
}

// Reset is the SGR sequence that returns the terminal to its default
// rendition. Every styled segment the renderer emits is terminated with it.
const Reset = "\x1b[0m"

// Style describes how a run of menu text is rendered. The zero value applies
// no styling at all.
type Style struct {
	FG        Color
	BG        Color
	Bold      bool
	Underline bool
	Reverse   bool
}

// Prefix returns the SGR sequence that switches the terminal to this style,
// or the empty string for the zero Style. The caller is responsible for
// emitting Reset afterwards.
func (s Style) Prefix() string {
	var params []byte
	appendParam := func(code int) {
		if len(params) > 0 {
			params = append(params, ';')
		}
		params = strconv.AppendInt(params, int64(code), 10)
	}

	if s.Bold {
		appendParam(1)
	}
	if s.Underline {
		appendParam(4)
	}
	if s.Reverse {
		appendParam(7)
	}
	if code := s.FG.foregroundCode(); code != 0 {
		appendParam(code)
	}
	if code := s.BG.foregroundCode(); code != 0 {
		appendParam(code + 10)
	}

	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + string(params) + "m"
}
