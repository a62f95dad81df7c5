package menu

import (
	"reflect"
	"testing"
)

func TestFilterHasPrefix(t *testing.T) {
	var scenarioTable = []struct {
		in         []Suggest
		sub        string
		ignoreCase bool
		expected   []Suggest
	}{
		{
			in:       []Suggest{{Text: "echo"}, {Text: "exit"}, {Text: "cat"}},
			sub:      "e",
			expected: []Suggest{{Text: "echo"}, {Text: "exit"}},
		},
		{
			in:       []Suggest{{Text: "echo"}, {Text: "exit"}},
			sub:      "",
			expected: []Suggest{{Text: "echo"}, {Text: "exit"}},
		},
		{
			in:         []Suggest{{Text: "Echo"}, {Text: "exit"}},
			sub:        "EC",
			ignoreCase: true,
			expected:   []Suggest{{Text: "Echo"}},
		},
		{
			in:       []Suggest{{Text: "Echo"}},
			sub:      "ec",
			expected: []Suggest{},
		},
	}

	for i, s := range scenarioTable {
		actual := FilterHasPrefix(s.in, s.sub, s.ignoreCase)
		if !reflect.DeepEqual(actual, s.expected) {
			t.Errorf("[scenario %d] Want %#v, but got %#v\n", i, s.expected, actual)
		}
	}
}

func TestFilterContains(t *testing.T) {
	in := []Suggest{{Text: "build-all"}, {Text: "install"}, {Text: "test"}}

	actual := FilterContains(in, "all", false)
	expected := []Suggest{{Text: "build-all"}, {Text: "install"}}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Want %#v, but got %#v\n", expected, actual)
	}
}
