package menu

// MenuEventKind identifies one of the closed set of commands a menu accepts.
// The Update dispatch enumerates every kind; adding a kind here without
// extending the dispatch is a bug, caught by the exhaustive switch there.
type MenuEventKind int

const (
	// MenuEventActivate opens the menu. AlreadyUpdated reports whether the
	// caller has refreshed the values itself.
	MenuEventActivate MenuEventKind = iota
	// MenuEventDeactivate closes the menu.
	MenuEventDeactivate
	// MenuEventEdit signals that the buffer changed while the menu was open.
	MenuEventEdit
	// MenuEventNextElement moves the cursor to the next value.
	MenuEventNextElement
	// MenuEventPreviousElement moves the cursor to the previous value.
	MenuEventPreviousElement
	// MenuEventMoveUp moves the cursor one row up.
	MenuEventMoveUp
	// MenuEventMoveDown moves the cursor one row down.
	MenuEventMoveDown
	// MenuEventMoveLeft moves the cursor one column left.
	MenuEventMoveLeft
	// MenuEventMoveRight moves the cursor one column right.
	MenuEventMoveRight
	// MenuEventPreviousPage is accepted but not acted on.
	MenuEventPreviousPage
	// MenuEventNextPage is accepted but not acted on.
	MenuEventNextPage
)

var menuEventKindNames = map[MenuEventKind]string{
	MenuEventActivate:        "Activate",
	MenuEventDeactivate:      "Deactivate",
	MenuEventEdit:            "Edit",
	MenuEventNextElement:     "NextElement",
	MenuEventPreviousElement: "PreviousElement",
	MenuEventMoveUp:          "MoveUp",
	MenuEventMoveDown:        "MoveDown",
	MenuEventMoveLeft:        "MoveLeft",
	MenuEventMoveRight:       "MoveRight",
	MenuEventPreviousPage:    "PreviousPage",
	MenuEventNextPage:        "NextPage",
}

func (k MenuEventKind) String() string {
	if name, ok := menuEventKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// MenuEvent is a single command for the next update cycle. AlreadyUpdated is
// meaningful for Activate and Edit only.
type MenuEvent struct {
	Kind           MenuEventKind
	AlreadyUpdated bool
}
