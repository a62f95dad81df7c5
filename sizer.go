package menu

import (
	istrings "github.com/joeycumines/go-menu/strings"
)

// Default terminal dimensions, used whenever the real size cannot be
// determined.
const (
	DefRowCount = 24
	DefColCount = 80
)

// WinSize represents the width and height of the terminal.
type WinSize struct {
	Row uint16
	Col uint16
}

// WindowSizer reports the terminal size the menu lays itself out for.
type WindowSizer interface {
	GetWinSize() *WinSize
}

// FixedSizer is a WindowSizer that always reports the same size, for hosts
// that manage the terminal themselves and for tests.
type FixedSizer struct {
	Row uint16
	Col uint16
}

// GetWinSize returns the configured dimensions.
func (s FixedSizer) GetWinSize() *WinSize {
	return &WinSize{Row: s.Row, Col: s.Col}
}

var _ WindowSizer = FixedSizer{}

// screenWidthFrom extracts the screen width from sizer, falling back to
// DefColCount when no usable size is available.
func screenWidthFrom(sizer WindowSizer) istrings.Width {
	if sizer == nil {
		return DefColCount
	}
	size := sizer.GetWinSize()
	if size == nil || size.Col == 0 {
		return DefColCount
	}
	return istrings.Width(size.Col)
}
