package menu

import (
	"strings"

	istrings "github.com/joeycumines/go-menu/strings"
)

// Span is a half-open byte interval [Start, End) into the host buffer,
// identifying the text a suggestion would replace. Offsets may be stale by
// the time they are used and are clamped to the buffer before any edit.
type Span struct {
	Start istrings.ByteNumber
	End   istrings.ByteNumber
}

// Suggest is one completion candidate as produced by a Completer. The menu
// treats it as immutable for the lifetime of one suggestion set.
type Suggest struct {
	// Text is displayed in the menu and inserted on acceptance.
	Text string
	// Description is optional secondary text. Any suggestion carrying one
	// switches the whole menu to single-column layout.
	Description string
	// Extra is an opaque payload carried through untouched.
	Extra any
	// Span is the buffer region this suggestion replaces.
	Span Span
	// AppendWhitespace inserts a trailing space when the suggestion is
	// accepted.
	AppendWhitespace bool
}

// Completer produces suggestions for text, where pos is the byte offset the
// suggestions should complete at. Calls are synchronous; a slow Completer
// stalls the update cycle.
type Completer interface {
	Complete(text string, pos istrings.ByteNumber) []Suggest
}

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(text string, pos istrings.ByteNumber) []Suggest

func (f CompleterFunc) Complete(text string, pos istrings.ByteNumber) []Suggest {
	return f(text, pos)
}

// UpdateValues refreshes the suggestion set from the completer and resets the
// cursor. In only-buffer-difference mode the completer sees just the text
// typed since activation; an empty difference leaves values and cursor
// untouched. Otherwise the completer sees the whole buffer with newlines
// replaced by spaces, which keeps byte offsets stable while sparing the
// completer from multi-line input.
func (m *Menu) UpdateValues(ed Editor, completer Completer) {
	if m.onlyBufferDifference {
		if m.snapshot == nil {
			return
		}
		start, diff := StringDifference(ed.Text(), *m.snapshot)
		if diff == "" {
			return
		}
		m.values = completer.Complete(diff, start)
		m.resetPosition()
		return
	}

	trimmed := strings.ReplaceAll(ed.Text(), "\n", " ")
	m.values = completer.Complete(trimmed, ed.InsertionPoint())
	m.resetPosition()
}

// CanPartiallyComplete replaces the buffer text under the representative
// suggestion's span with the longest prefix shared by all current
// suggestions, reporting whether it did so. It refuses to shrink or replace
// what the user already typed: the shared prefix must start with the buffer
// text covered by the span. valuesUpdated skips the initial refresh when the
// caller has already performed one. On success the values are refreshed again
// because every span is stale after the edit.
func (m *Menu) CanPartiallyComplete(valuesUpdated bool, ed Editor, completer Completer) bool {
	if !valuesUpdated {
		m.UpdateValues(ed, completer)
	}

	sugg, prefixLen, ok := CommonPrefixSuggestion(m.values)
	if !ok {
		return false
	}
	prefixLen = min(prefixLen, istrings.Len(sugg.Text))
	matching := sugg.Text[:prefixLen]
	if matching == "" {
		return false
	}

	length := ed.Len()
	start := istrings.Clamp(sugg.Span.Start, 0, length)
	end := istrings.Clamp(sugg.Span.End, 0, length)
	if !strings.HasPrefix(matching, ed.Text()[start:end]) {
		return false
	}

	insertionPoint := ed.InsertionPoint()
	ed.Replace(start, end, matching)

	spanLen := istrings.SaturatingSub(end, start)
	var offset istrings.ByteNumber
	if istrings.Len(matching) < spanLen {
		offset = istrings.SaturatingSub(insertionPoint, spanLen-istrings.Len(matching))
	} else {
		offset = insertionPoint + istrings.Len(matching) - spanLen
	}
	ed.SetInsertionPoint(offset)

	m.UpdateValues(ed, completer)

	return true
}

// ReplaceInBuffer splices the currently selected suggestion into the buffer
// at its span and places the insertion point after the inserted text,
// shifting it by the difference between the replacement and the replaced
// range. A cursor that sits past the last value selects nothing and the call
// is a no-op.
func (m *Menu) ReplaceInBuffer(ed Editor) {
	idx := m.index()
	if idx >= len(m.values) {
		return
	}
	sugg := m.values[idx]

	length := ed.Len()
	start := istrings.Clamp(sugg.Span.Start, 0, length)
	end := istrings.Clamp(sugg.Span.End, 0, length)

	value := sugg.Text
	if sugg.AppendWhitespace {
		value += " "
	}

	insertionPoint := ed.InsertionPoint()
	ed.Replace(start, end, value)

	offset := istrings.SaturatingSub(
		insertionPoint+istrings.Len(value),
		istrings.SaturatingSub(end, start),
	)
	ed.SetInsertionPoint(offset)
}
