// Package strings provides width-aware text helpers for laying out terminal
// output. It is intended to be imported as istrings, to avoid conflicting
// with the standard library package of the same name.
package strings

import (
	"github.com/rivo/uniseg"
)

// Width is the number of terminal columns occupied by some text.
type Width int

// RuneNumber is a count or index expressed in runes.
type RuneNumber int

// GraphemeNumber is a count or index expressed in grapheme clusters,
// the user-perceived characters.
type GraphemeNumber int

// ByteNumber is a count or index expressed in bytes.
type ByteNumber int

// GetWidth returns the number of terminal columns needed to display text.
// Grapheme clusters are measured as a whole, so flags and emoji sequences
// count as a single double-width cell.
func GetWidth(text string) Width {
	return Width(uniseg.StringWidth(text))
}

// Len returns the length of the given string in bytes.
func Len(s string) ByteNumber {
	return ByteNumber(len(s))
}

// GraphemeCountInString returns the number of grapheme clusters in s.
func GraphemeCountInString(s string) GraphemeNumber {
	return GraphemeNumber(uniseg.GraphemeClusterCount(s))
}

// RuneIndexNthGrapheme returns the index of the rune that starts right after
// the first n grapheme clusters of text.
func RuneIndexNthGrapheme(text string, n GraphemeNumber) RuneNumber {
	g := uniseg.NewGraphemes(text)
	var index RuneNumber
	for i := GraphemeNumber(0); i < n && g.Next(); i++ {
		index += RuneNumber(len(g.Runes()))
	}
	return index
}

// RuneIndexNthColumn returns the index of the rune that starts right after
// the first n columns of text. Grapheme clusters are never split.
func RuneIndexNthColumn(text string, n Width) RuneNumber {
	g := uniseg.NewGraphemes(text)
	var index RuneNumber
	var width Width
	for g.Next() {
		width += Width(g.Width())
		if width > n {
			break
		}
		index += RuneNumber(len(g.Runes()))
	}
	return index
}
