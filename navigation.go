package menu

import (
	istrings "github.com/joeycumines/go-menu/strings"
)

// index returns the linear value index the cursor points at. It can sit one
// past the populated cells after a wrapped left move; consumers treat an
// out-of-range index as no selection.
func (m *Menu) index() int {
	return m.rowPos*m.cols() + m.colPos
}

// cols returns the effective column count, never below one.
func (m *Menu) cols() int {
	return max(m.workingDetails.columns, 1)
}

// rows returns the number of grid rows occupied by the current values. An
// empty value list still takes one row, reserved for the no-records message.
func (m *Menu) rows() int {
	values := len(m.values)
	if values == 0 {
		return 1
	}
	rows := values / m.cols()
	if values%m.cols() != 0 {
		rows++
	}
	return rows
}

// width returns the effective column width.
func (m *Menu) width() istrings.Width {
	return m.workingDetails.width
}

// resetPosition returns the cursor to the origin.
func (m *Menu) resetPosition() {
	m.colPos = 0
	m.rowPos = 0
}

// moveNext advances the cursor one value, wrapping column, then row, and
// falling back to the origin when the target cell is past the last value.
func (m *Menu) moveNext() {
	newCol := m.colPos + 1
	newRow := m.rowPos

	if newCol >= m.cols() {
		newRow++
		newCol = 0
	}
	if newRow >= m.rows() {
		newRow = 0
		newCol = 0
	}

	if newRow*m.cols()+newCol >= len(m.values) {
		m.resetPosition()
		return
	}
	m.colPos = newCol
	m.rowPos = newRow
}

// movePrevious steps the cursor back one value, wrapping to the previous
// row's last column and from the origin to the end of the grid. Overflow
// into an unpopulated cell lands on the last value's cell instead.
func (m *Menu) movePrevious() {
	newCol := m.colPos - 1
	newRow := m.rowPos
	if newCol < 0 {
		newCol = istrings.SaturatingSub(m.cols(), 1)
		newRow = m.rowPos - 1
		if newRow < 0 {
			newRow = istrings.SaturatingSub(m.rows(), 1)
		}
	}

	if newRow*m.cols()+newCol >= len(m.values) {
		m.colPos = istrings.SaturatingSub(len(m.values)%m.cols(), 1)
		m.rowPos = istrings.SaturatingSub(m.rows(), 1)
		return
	}
	m.colPos = newCol
	m.rowPos = newRow
}

// moveUp moves one row up, wrapping to the last row, or the one before it
// when the same column of the last row is unpopulated.
func (m *Menu) moveUp() {
	if m.rowPos > 0 {
		m.rowPos--
		return
	}
	newRow := istrings.SaturatingSub(m.rows(), 1)
	if newRow*m.cols()+m.colPos >= len(m.values) {
		m.rowPos = istrings.SaturatingSub(newRow, 1)
		return
	}
	m.rowPos = newRow
}

// moveDown moves one row down, wrapping to the top when past the last row or
// onto an unpopulated cell.
func (m *Menu) moveDown() {
	newRow := m.rowPos + 1
	if newRow >= m.rows() || newRow*m.cols()+m.colPos >= len(m.values) {
		m.rowPos = 0
		return
	}
	m.rowPos = newRow
}

// moveLeft moves one column left, wrapping to the last column of the same
// row, except when the cursor sits on the very last value, where it wraps to
// the first column. The wrapped-to cell is not validated against the value
// count.
func (m *Menu) moveLeft() {
	if m.colPos > 0 {
		m.colPos--
		return
	}
	if m.index()+1 == len(m.values) {
		m.colPos = 0
		return
	}
	m.colPos = istrings.SaturatingSub(m.cols(), 1)
}

// moveRight moves one column right, wrapping to the first column when it
// would leave the grid or run past the last value.
func (m *Menu) moveRight() {
	newCol := m.colPos + 1
	if newCol >= m.cols() || m.index()+2 > len(m.values) {
		m.colPos = 0
		return
	}
	m.colPos = newCol
}
