package menu

import "strings"

// FilterHasPrefix returns the suggestions whose Text begins with sub.
// An empty sub matches everything and returns suggestions unfiltered.
func FilterHasPrefix(suggestions []Suggest, sub string, ignoreCase bool) []Suggest {
	return filterSuggestions(suggestions, sub, ignoreCase, strings.HasPrefix)
}

// FilterContains returns the suggestions whose Text contains sub.
// An empty sub matches everything and returns suggestions unfiltered.
func FilterContains(suggestions []Suggest, sub string, ignoreCase bool) []Suggest {
	return filterSuggestions(suggestions, sub, ignoreCase, strings.Contains)
}

func filterSuggestions(suggestions []Suggest, sub string, ignoreCase bool, match func(string, string) bool) []Suggest {
	if sub == "" {
		return suggestions
	}
	if ignoreCase {
		sub = strings.ToUpper(sub)
	}
	ret := make([]Suggest, 0, len(suggestions))
	for _, s := range suggestions {
		text := s.Text
		if ignoreCase {
			text = strings.ToUpper(text)
		}
		if match(text, sub) {
			ret = append(ret, s)
		}
	}
	return ret
}
