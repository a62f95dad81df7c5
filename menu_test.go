package menu

import "testing"

func TestNewDefaults(t *testing.T) {
	m := New()

	if m.name != "columnar_menu" {
		t.Errorf("name: want %q, got %q", "columnar_menu", m.name)
	}
	if m.marker != "| " {
		t.Errorf("marker: want %q, got %q", "| ", m.marker)
	}
	if m.defaultDetails.columns != 4 {
		t.Errorf("columns: want 4, got %d", m.defaultDetails.columns)
	}
	if m.defaultDetails.width != 0 {
		t.Errorf("width: want 0, got %d", m.defaultDetails.width)
	}
	if m.defaultDetails.padding != 2 {
		t.Errorf("padding: want 2, got %d", m.defaultDetails.padding)
	}
	if m.minRows != 3 {
		t.Errorf("minRows: want 3, got %d", m.minRows)
	}
	if m.active {
		t.Error("a new menu must be inactive")
	}
	if m.onlyBufferDifference {
		t.Error("buffer difference mode must be off by default")
	}
}

func TestOptions(t *testing.T) {
	style := Style{FG: Blue, Underline: true}
	m := New(
		WithName("completions"),
		WithMarker("? "),
		WithColumns(2),
		WithColumnWidth(16),
		WithColumnPadding(1),
		WithMinRows(5),
		WithTextStyle(style),
		WithSelectedTextStyle(style),
		WithDescriptionTextStyle(style),
		WithOnlyBufferDifference(true),
	)

	if m.Name() != "completions" {
		t.Errorf("Name: got %q", m.Name())
	}
	if m.Indicator() != "? " {
		t.Errorf("Indicator: got %q", m.Indicator())
	}
	if m.defaultDetails.columns != 2 || m.defaultDetails.width != 16 || m.defaultDetails.padding != 1 {
		t.Errorf("column details: got %+v", m.defaultDetails)
	}
	if m.minRows != 5 {
		t.Errorf("minRows: got %d", m.minRows)
	}
	if m.textStyle != style || m.selectedTextStyle != style || m.descriptionTextStyle != style {
		t.Error("styles not applied")
	}
	if !m.onlyBufferDifference {
		t.Error("buffer difference mode not applied")
	}
}

func TestCanQuickComplete(t *testing.T) {
	if !New().CanQuickComplete() {
		t.Error("the columnar menu always supports quick completion")
	}
}

func TestQueueEventTogglesActiveEagerly(t *testing.T) {
	m := New(WithOnlyBufferDifference(true))
	snapshot := "abc"
	m.snapshot = &snapshot

	m.QueueEvent(MenuEvent{Kind: MenuEventActivate})
	if !m.IsActive() {
		t.Error("activation must be visible before the update cycle")
	}

	m.QueueEvent(MenuEvent{Kind: MenuEventDeactivate})
	if m.IsActive() {
		t.Error("deactivation must be visible before the update cycle")
	}
	if m.snapshot != nil {
		t.Error("deactivation must drop the activation snapshot")
	}
}

func TestQueueEventReplacesPending(t *testing.T) {
	m := New()
	m.values = []Suggest{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	ed := NewLineBuffer()
	sizer := FixedSizer{Row: 24, Col: 80}

	m.QueueEvent(MenuEvent{Kind: MenuEventNextElement})
	m.QueueEvent(MenuEvent{Kind: MenuEventMoveDown})
	m.Update(ed, fakeCompleter(), sizer)

	// Only the later MoveDown ran; a single row wraps back to the top.
	if m.colPos != 0 || m.rowPos != 0 {
		t.Errorf("expected origin, got (%d, %d)", m.colPos, m.rowPos)
	}
}

func TestUpdateConsumesOneEvent(t *testing.T) {
	m := New()
	m.values = []Suggest{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	ed := NewLineBuffer()
	sizer := FixedSizer{Row: 24, Col: 80}

	m.QueueEvent(MenuEvent{Kind: MenuEventNextElement})
	m.Update(ed, fakeCompleter(), sizer)
	if m.index() != 1 {
		t.Fatalf("expected index 1, got %d", m.index())
	}

	// No event queued: a second update is a no-op.
	m.Update(ed, fakeCompleter(), sizer)
	if m.index() != 1 {
		t.Errorf("expected index 1 after idle update, got %d", m.index())
	}
}

func TestUpdateActivateRefreshesValues(t *testing.T) {
	m := New()
	ed := NewLineBuffer()
	ed.SetText("bu")
	c := &recordingCompleter{results: []Suggest{{Text: "build"}}}
	sizer := FixedSizer{Row: 24, Col: 80}

	m.QueueEvent(MenuEvent{Kind: MenuEventActivate})
	m.Update(ed, c, sizer)

	if len(c.texts) != 1 {
		t.Fatalf("expected one completer call, got %d", len(c.texts))
	}
	if len(m.Values()) != 1 || m.Values()[0].Text != "build" {
		t.Errorf("values not refreshed: %+v", m.Values())
	}
	if m.snapshot != nil {
		t.Error("no snapshot expected outside buffer difference mode")
	}
}

func TestUpdateActivateAlreadyUpdated(t *testing.T) {
	m := New()
	m.values = []Suggest{{Text: "kept"}}
	m.colPos = 0
	ed := NewLineBuffer()
	c := &recordingCompleter{}
	sizer := FixedSizer{Row: 24, Col: 80}

	m.QueueEvent(MenuEvent{Kind: MenuEventActivate, AlreadyUpdated: true})
	m.Update(ed, c, sizer)

	if len(c.texts) != 0 {
		t.Errorf("completer should not be called, got %v", c.texts)
	}
	if len(m.Values()) != 1 || m.Values()[0].Text != "kept" {
		t.Errorf("values should be untouched: %+v", m.Values())
	}
}

func TestUpdateActivateCapturesSnapshot(t *testing.T) {
	m := New(WithOnlyBufferDifference(true))
	ed := NewLineBuffer()
	ed.SetText("abc")
	sizer := FixedSizer{Row: 24, Col: 80}

	m.QueueEvent(MenuEvent{Kind: MenuEventActivate, AlreadyUpdated: true})
	m.Update(ed, fakeCompleter(), sizer)

	if m.snapshot == nil || *m.snapshot != "abc" {
		t.Fatalf("expected snapshot %q, got %v", "abc", m.snapshot)
	}
}

func TestUpdateEditResetsAndRefreshes(t *testing.T) {
	m := New()
	m.values = []Suggest{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	m.colPos = 2
	ed := NewLineBuffer()
	ed.SetText("x")
	c := &recordingCompleter{results: []Suggest{{Text: "xa"}, {Text: "xb"}}}
	sizer := FixedSizer{Row: 24, Col: 80}

	m.QueueEvent(MenuEvent{Kind: MenuEventEdit})
	m.Update(ed, c, sizer)

	if len(c.texts) != 1 {
		t.Fatalf("expected one completer call, got %d", len(c.texts))
	}
	if m.colPos != 0 || m.rowPos != 0 {
		t.Errorf("cursor should reset, got (%d, %d)", m.colPos, m.rowPos)
	}
	if len(m.Values()) != 2 {
		t.Errorf("values not refreshed: %+v", m.Values())
	}
}

func TestUpdatePageEventsAreNoOps(t *testing.T) {
	for _, kind := range []MenuEventKind{MenuEventPreviousPage, MenuEventNextPage} {
		m := New()
		m.values = []Suggest{{Text: "a"}, {Text: "b"}, {Text: "c"}}
		m.colPos = 1
		ed := NewLineBuffer()
		sizer := FixedSizer{Row: 24, Col: 80}

		m.QueueEvent(MenuEvent{Kind: kind})
		m.Update(ed, fakeCompleter(), sizer)

		if m.colPos != 1 || m.rowPos != 0 {
			t.Errorf("%v: cursor moved to (%d, %d)", kind, m.colPos, m.rowPos)
		}
	}
}

func TestUpdateRunsLayoutBeforeRouting(t *testing.T) {
	m := New()
	for _, text := range []string{"a", "b", "c", "d", "e", "f"} {
		m.values = append(m.values, Suggest{Text: text})
	}
	ed := NewLineBuffer()

	// A narrow screen holds a single column, so NextElement must move one
	// row down rather than one stale column right.
	m.QueueEvent(MenuEvent{Kind: MenuEventNextElement})
	m.Update(ed, fakeCompleter(), FixedSizer{Row: 24, Col: 3})

	if m.cols() != 1 {
		t.Fatalf("expected a single column on a 3-cell screen, got %d", m.cols())
	}
	if m.colPos != 0 || m.rowPos != 1 {
		t.Errorf("expected (0, 1), got (%d, %d)", m.colPos, m.rowPos)
	}
}

func TestMinRows(t *testing.T) {
	var scenarioTable = []struct {
		values   int
		minRows  int
		expected int
	}{
		{values: 10, minRows: 3, expected: 3},
		{values: 2, minRows: 3, expected: 2},
		{values: 0, minRows: 3, expected: 1},
		{values: 10, minRows: 5, expected: 5},
	}

	for i, s := range scenarioTable {
		m := gridMenu(s.values, 1)
		m.minRows = s.minRows
		if got := m.MinRows(); got != s.expected {
			t.Errorf("[scenario %d] Want %d but got %d\n", i, s.expected, got)
		}
	}
}

func TestRequiredLines(t *testing.T) {
	m := gridMenu(7, 3)
	if got := m.RequiredLines(); got != 3 {
		t.Errorf("want 3, got %d", got)
	}
	m = gridMenu(0, 3)
	if got := m.RequiredLines(); got != 1 {
		t.Errorf("want 1, got %d", got)
	}
}

func TestMenuEventKindString(t *testing.T) {
	if got := MenuEventMoveLeft.String(); got != "MoveLeft" {
		t.Errorf("want %q, got %q", "MoveLeft", got)
	}
	if got := MenuEventKind(99).String(); got != "Unknown" {
		t.Errorf("want %q, got %q", "Unknown", got)
	}
}
