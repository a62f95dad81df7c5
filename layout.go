package menu

import (
	istrings "github.com/joeycumines/go-menu/strings"
)

// updateLayout recomputes the working column count and column width for the
// given screen width. Any value carrying a description switches the menu to a
// single column spanning the whole screen; otherwise the column width grows
// to fit the widest value plus padding and the column count shrinks to
// whatever the screen can hold.
func (m *Menu) updateLayout(screenWidth istrings.Width) {
	if m.anyDescription() {
		m.workingDetails.columns = 1
		m.workingDetails.width = screenWidth
		m.longestSuggestion = m.longestValueWidth()
		return
	}

	var maxWidth istrings.Width
	for _, v := range m.values {
		if w := istrings.GetWidth(v.Text) + m.defaultDetails.padding; w > maxWidth {
			maxWidth = w
		}
	}

	// Without a fixed column width the screen width split over the default
	// column count serves as the estimate.
	defaultWidth := m.defaultDetails.width
	if defaultWidth <= 0 {
		defaultWidth = screenWidth / istrings.Width(max(m.defaultDetails.columns, 1))
	}

	if maxWidth > defaultWidth {
		m.workingDetails.width = maxWidth
	} else {
		m.workingDetails.width = defaultWidth
	}

	var possibleCols int
	if m.workingDetails.width > 0 {
		possibleCols = int(screenWidth / m.workingDetails.width)
	}
	if possibleCols > m.defaultDetails.columns {
		m.workingDetails.columns = max(m.defaultDetails.columns, 1)
	} else {
		m.workingDetails.columns = possibleCols
	}
}

func (m *Menu) anyDescription() bool {
	for _, v := range m.values {
		if v.Description != "" {
			return true
		}
	}
	return false
}

func (m *Menu) longestValueWidth() istrings.Width {
	var longest istrings.Width
	for _, v := range m.values {
		if w := istrings.GetWidth(v.Text); w > longest {
			longest = w
		}
	}
	return longest
}
