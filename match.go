package menu

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	istrings "github.com/joeycumines/go-menu/strings"
)

// CommonPrefixSuggestion returns the first suggestion as the representative
// of the set, together with the byte length of the longest prefix of its
// Text shared by every suggestion. Comparison folds ASCII letter case and
// never splits a rune. ok is false for an empty set.
func CommonPrefixSuggestion(values []Suggest) (sugg Suggest, prefixLen istrings.ByteNumber, ok bool) {
	if len(values) == 0 {
		return Suggest{}, 0, false
	}
	sugg = values[0]
	prefixLen = istrings.Len(sugg.Text)
	for _, v := range values[1:] {
		prefixLen = min(prefixLen, commonPrefixFold(sugg.Text[:prefixLen], v.Text))
	}
	return sugg, prefixLen, true
}

// commonPrefixFold returns the byte length of the longest prefix of a that
// matches b rune for rune under ASCII case folding.
func commonPrefixFold(a, b string) istrings.ByteNumber {
	var n istrings.ByteNumber
	for len(a) > 0 && len(b) > 0 {
		ra, size := utf8.DecodeRuneInString(a)
		rb, _ := utf8.DecodeRuneInString(b)
		if asciiLower(ra) != asciiLower(rb) {
			break
		}
		n += istrings.ByteNumber(size)
		a = a[size:]
		b = b[utf8.RuneLen(rb):]
	}
	return n
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// StringDifference compares newText against oldText and returns the byte
// offset into newText where they diverge together with the divergent region
// of newText, i.e. newText with the longest common prefix and suffix
// trimmed. An empty oldText yields (0, newText); equal inputs yield (0, "").
func StringDifference(newText, oldText string) (istrings.ByteNumber, string) {
	if oldText == "" {
		return 0, newText
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)

	// Walk the edits tracking offsets within newText; the difference spans
	// from the first to the last non-equal edit.
	var pos istrings.ByteNumber
	start := istrings.ByteNumber(-1)
	var end istrings.ByteNumber
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			pos += istrings.Len(d.Text)
		case diffmatchpatch.DiffInsert:
			if start < 0 {
				start = pos
			}
			pos += istrings.Len(d.Text)
			end = pos
		case diffmatchpatch.DiffDelete:
			if start < 0 {
				start = pos
			}
			end = pos
		}
	}

	if start < 0 {
		return 0, ""
	}
	return start, newText[start:end]
}
