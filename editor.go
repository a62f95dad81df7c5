package menu

import (
	istrings "github.com/joeycumines/go-menu/strings"
)

// Editor is the buffer surface the menu manipulates. All offsets are byte
// offsets into the current text. Implementations are borrowed for the
// duration of a single call and never retained by the menu.
type Editor interface {
	// Text returns the full buffer contents.
	Text() string
	// Len returns the buffer length in bytes.
	Len() istrings.ByteNumber
	// InsertionPoint returns the current insertion offset.
	InsertionPoint() istrings.ByteNumber
	// SetInsertionPoint moves the insertion offset. Implementations clamp
	// out-of-range offsets to the buffer length.
	SetInsertionPoint(pos istrings.ByteNumber)
	// Replace substitutes the half-open byte range [start, end) with text.
	Replace(start, end istrings.ByteNumber, text string)
}

// LineBuffer is a minimal in-memory Editor, suitable for hosts without their
// own buffer representation and for tests.
type LineBuffer struct {
	text           string
	insertionPoint istrings.ByteNumber
}

// NewLineBuffer returns an empty LineBuffer.
func NewLineBuffer() *LineBuffer {
	return &LineBuffer{}
}

// SetText replaces the buffer contents and moves the insertion point to the
// end of the new text.
func (b *LineBuffer) SetText(text string) {
	b.text = text
	b.insertionPoint = istrings.Len(text)
}

// InsertText inserts text at the insertion point and advances it past the
// inserted text.
func (b *LineBuffer) InsertText(text string) {
	at := b.clamp(b.insertionPoint)
	b.text = b.text[:at] + text + b.text[at:]
	b.insertionPoint = at + istrings.Len(text)
}

// DeleteGraphemeBeforeInsertionPoint removes the user-perceived character
// before the insertion point, so a backspace never splits a grapheme
// cluster or a multibyte rune.
func (b *LineBuffer) DeleteGraphemeBeforeInsertionPoint() {
	at := b.clamp(b.insertionPoint)
	head := b.text[:at]
	n := istrings.GraphemeCountInString(head)
	if n == 0 {
		return
	}
	runeIdx := istrings.RuneIndexNthGrapheme(head, n-1)
	start := istrings.Len(string([]rune(head)[:runeIdx]))
	b.text = b.text[:start] + b.text[at:]
	b.insertionPoint = start
}

func (b *LineBuffer) Text() string { return b.text }

func (b *LineBuffer) Len() istrings.ByteNumber { return istrings.Len(b.text) }

func (b *LineBuffer) InsertionPoint() istrings.ByteNumber { return b.insertionPoint }

func (b *LineBuffer) SetInsertionPoint(pos istrings.ByteNumber) {
	b.insertionPoint = b.clamp(pos)
}

// Replace substitutes the byte range [start, end) with text, clamping the
// range to the buffer and keeping the insertion point inside the new text.
func (b *LineBuffer) Replace(start, end istrings.ByteNumber, text string) {
	start = b.clamp(start)
	end = b.clamp(end)
	if end < start {
		start, end = end, start
	}
	b.text = b.text[:start] + text + b.text[end:]
	b.insertionPoint = b.clamp(b.insertionPoint)
}

func (b *LineBuffer) clamp(pos istrings.ByteNumber) istrings.ByteNumber {
	return istrings.Clamp(pos, 0, istrings.Len(b.text))
}

var _ Editor = (*LineBuffer)(nil)
