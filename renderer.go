package menu

import (
	"strings"

	"github.com/mattn/go-runewidth"

	istrings "github.com/joeycumines/go-menu/strings"
)

// MenuString renders the menu as a single string ready to be printed.
// Painting one complete string instead of many small writes reduces
// flickering on the terminal. Rows before the scroll window are skipped so
// the cursor row always falls within availableLines. With ANSI coloring
// disabled the selected cell is uppercased and marked with ">" instead.
//
// Rendering never mutates the menu, so repeated calls yield identical
// output.
func (m *Menu) MenuString(availableLines int, ansiColoring bool) string {
	if availableLines < 0 {
		availableLines = 0
	}
	if len(m.values) == 0 {
		return m.noRecordsMsg(ansiColoring)
	}

	// Skip whole rows until the cursor row fits in the window.
	var skip int
	if m.rowPos >= availableLines {
		skipLines := istrings.SaturatingSub(m.rowPos, availableLines) + 1
		skip = skipLines * m.cols()
	}

	start := min(skip, len(m.values))
	end := min(start+availableLines*m.cols(), len(m.values))

	var b strings.Builder
	for i, suggestion := range m.values[start:end] {
		index := i + skip
		column := index % m.cols()
		emptySpace := istrings.SaturatingSub(m.width(), istrings.GetWidth(suggestion.Text))
		b.WriteString(m.createString(suggestion, index, column, emptySpace, ansiColoring))
	}
	return b.String()
}

func (m *Menu) noRecordsMsg(ansiColoring bool) string {
	const msg = "NO RECORDS FOUND"
	if ansiColoring {
		return m.selectedTextStyle.Prefix() + msg + Reset
	}
	return msg
}

// endOfLine terminates the line after the last column of a row.
func (m *Menu) endOfLine(column int) string {
	if column == istrings.SaturatingSub(m.cols(), 1) {
		return "\r\n"
	}
	return ""
}

// createString renders one suggestion cell. In the single-column description
// layout the value is padded to the longest suggestion plus padding and the
// description is truncated to the remaining width.
func (m *Menu) createString(suggestion Suggest, index, column int, emptySpace istrings.Width, ansiColoring bool) string {
	if ansiColoring {
		if index == m.index() {
			if suggestion.Description != "" {
				leftTextSize := int(m.longestSuggestion + m.defaultDetails.padding)
				rightTextSize := istrings.SaturatingSub(int(m.width()), leftTextSize)
				return m.selectedTextStyle.Prefix() +
					runewidth.FillRight(suggestion.Text, leftTextSize) +
					truncateDescription(suggestion.Description, rightTextSize) +
					Reset +
					m.endOfLine(column)
			}
			return m.selectedTextStyle.Prefix() +
				suggestion.Text +
				Reset +
				strings.Repeat(" ", int(emptySpace)) +
				m.endOfLine(column)
		}
		if suggestion.Description != "" {
			leftTextSize := int(m.longestSuggestion + m.defaultDetails.padding)
			rightTextSize := istrings.SaturatingSub(int(m.width()), leftTextSize)
			return m.textStyle.Prefix() +
				runewidth.FillRight(suggestion.Text, leftTextSize) +
				Reset +
				m.descriptionTextStyle.Prefix() +
				truncateDescription(suggestion.Description, rightTextSize) +
				Reset +
				m.endOfLine(column)
		}
		return m.textStyle.Prefix() +
			suggestion.Text +
			Reset +
			m.descriptionTextStyle.Prefix() +
			strings.Repeat(" ", int(emptySpace)) +
			Reset +
			m.endOfLine(column)
	}

	var marker string
	if index == m.index() {
		marker = ">"
	}

	var line string
	if suggestion.Description != "" {
		pad := int(m.longestSuggestion) + istrings.SaturatingSub(int(m.defaultDetails.padding), len(marker))
		line = marker +
			runewidth.FillRight(suggestion.Text, pad) +
			truncateDescription(suggestion.Description, int(emptySpace)) +
			m.endOfLine(column)
	} else {
		line = marker +
			suggestion.Text +
			strings.Repeat(" ", int(istrings.SaturatingSub(emptySpace, istrings.Width(len(marker))))) +
			m.endOfLine(column)
	}

	if index == m.index() {
		return strings.ToUpper(line)
	}
	return line
}

// truncateDescription flattens newlines and cuts the description down to the
// given number of terminal cells, never splitting a grapheme cluster.
func truncateDescription(description string, width int) string {
	description = strings.ReplaceAll(description, "\n", " ")
	w := istrings.Width(max(width, 0))
	if istrings.GetWidth(description) <= w {
		return description
	}
	return string([]rune(description)[:istrings.RuneIndexNthColumn(description, w)])
}
