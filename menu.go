package menu

import (
	"fmt"

	"github.com/joeycumines/go-menu/debug"
	istrings "github.com/joeycumines/go-menu/strings"
)

// defaultColumnDetails are fixed when the menu is created and serve as the
// reference the working details are derived from.
type defaultColumnDetails struct {
	columns int
	// width is the fixed column width, zero meaning derive it from the
	// screen width instead
	width   istrings.Width
	padding istrings.Width
}

// columnDetails are the column conditions the menu actually renders with.
// They change on every update to accommodate the collected values.
type columnDetails struct {
	columns int
	width   istrings.Width
}

// Menu presents completion suggestions in a columnar grid with a movable
// cursor. It caches the values produced by a Completer, reshapes its grid
// each time an event is consumed, and renders itself to a string for the
// host line editor to paint. If any suggestion carries a description the
// menu switches to a single column so the description fits beside the value.
//
// A Menu is not safe for concurrent use.
type Menu struct {
	name   string
	active bool

	textStyle            Style
	selectedTextStyle    Style
	descriptionTextStyle Style

	defaultDetails defaultColumnDetails
	workingDetails columnDetails

	// minimum rows kept visible when the host has fewer lines available
	// than the menu requires
	minRows int

	values []Suggest

	colPos int
	rowPos int

	marker string

	pending *MenuEvent

	longestSuggestion istrings.Width

	// snapshot of the buffer taken on activation, kept only in buffer
	// difference mode
	snapshot *string

	onlyBufferDifference bool
}

// Option configures a Menu created by New.
type Option func(*Menu)

// WithName sets the menu name.
func WithName(name string) Option {
	return func(m *Menu) {
		m.name = name
	}
}

// WithMarker sets the indicator the host prints before the line while the
// menu is active.
func WithMarker(marker string) Option {
	return func(m *Menu) {
		m.marker = marker
	}
}

// WithTextStyle sets the style for unselected values.
func WithTextStyle(style Style) Option {
	return func(m *Menu) {
		m.textStyle = style
	}
}

// WithSelectedTextStyle sets the style for the value under the cursor.
func WithSelectedTextStyle(style Style) Option {
	return func(m *Menu) {
		m.selectedTextStyle = style
	}
}

// WithDescriptionTextStyle sets the style for suggestion descriptions.
func WithDescriptionTextStyle(style Style) Option {
	return func(m *Menu) {
		m.descriptionTextStyle = style
	}
}

// WithColumns sets the default number of columns.
func WithColumns(columns int) Option {
	return func(m *Menu) {
		m.defaultDetails.columns = columns
	}
}

// WithColumnWidth fixes the column width. Zero derives the width from the
// screen width instead.
func WithColumnWidth(width istrings.Width) Option {
	return func(m *Menu) {
		m.defaultDetails.width = width
	}
}

// WithColumnPadding sets the padding between a value and the next column.
func WithColumnPadding(padding istrings.Width) Option {
	return func(m *Menu) {
		m.defaultDetails.padding = padding
	}
}

// WithMinRows sets the minimum number of rows the menu asks the host to keep
// visible.
func WithMinRows(rows int) Option {
	return func(m *Menu) {
		m.minRows = rows
	}
}

// WithOnlyBufferDifference makes the menu complete against only the text
// typed since activation instead of the whole buffer.
func WithOnlyBufferDifference(enabled bool) Option {
	return func(m *Menu) {
		m.onlyBufferDifference = enabled
	}
}

// New returns an inactive Menu configured by the given options.
func New(opts ...Option) *Menu {
	m := &Menu{
		name:   "columnar_menu",
		marker: "| ",
		defaultDetails: defaultColumnDetails{
			columns: 4,
			padding: 2,
		},
		minRows:              3,
		textStyle:            Style{FG: White},
		selectedTextStyle:    Style{FG: Green, Bold: true, Reverse: true},
		descriptionTextStyle: Style{FG: Yellow},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns the menu name.
func (m *Menu) Name() string {
	return m.name
}

// Indicator returns the marker shown while the menu is active.
func (m *Menu) Indicator() string {
	return m.marker
}

// IsActive reports whether the menu is currently shown.
func (m *Menu) IsActive() bool {
	return m.active
}

// CanQuickComplete reports that the menu supports completing immediately
// when a single suggestion remains.
func (m *Menu) CanQuickComplete() bool {
	return true
}

// Values returns the cached suggestions.
func (m *Menu) Values() []Suggest {
	return m.values
}

// Value returns the suggestion under the cursor. ok is false when the cursor
// does not sit on a value.
func (m *Menu) Value() (_ Suggest, ok bool) {
	if i := m.index(); i < len(m.values) {
		return m.values[i], true
	}
	return Suggest{}, false
}

// MinRows returns how many rows the menu asks the host to keep visible, at
// most the rows it actually occupies.
func (m *Menu) MinRows() int {
	return min(m.rows(), m.minRows)
}

// RequiredLines returns the total lines needed to paint every value.
func (m *Menu) RequiredLines() int {
	return m.rows()
}

// QueueEvent stores event for the next Update call, replacing any event
// queued before it. Activation and deactivation flip the active flag right
// away so the host observes the new state before the update cycle runs;
// deactivation also discards the activation snapshot.
func (m *Menu) QueueEvent(event MenuEvent) {
	switch event.Kind {
	case MenuEventActivate:
		m.active = true
	case MenuEventDeactivate:
		m.active = false
		m.snapshot = nil
	}
	m.pending = &event
}

// Update consumes the queued event, if any. The grid is reshaped for the
// current screen size before the event is dispatched, so navigation always
// operates on the geometry the user sees. Without a queued event Update
// does nothing.
func (m *Menu) Update(ed Editor, completer Completer, sizer WindowSizer) {
	if m.pending == nil {
		return
	}
	event := *m.pending
	m.pending = nil

	m.updateLayout(screenWidthFrom(sizer))

	debug.Log("menu event: " + event.Kind.String())

	switch event.Kind {
	case MenuEventActivate:
		m.active = true
		m.resetPosition()

		m.snapshot = nil
		if m.onlyBufferDifference {
			text := ed.Text()
			m.snapshot = &text
		}

		if !event.AlreadyUpdated {
			m.UpdateValues(ed, completer)
		}
	case MenuEventDeactivate:
		m.active = false
	case MenuEventEdit:
		m.resetPosition()

		if !event.AlreadyUpdated {
			m.UpdateValues(ed, completer)
		}
	case MenuEventNextElement:
		m.moveNext()
	case MenuEventPreviousElement:
		m.movePrevious()
	case MenuEventMoveUp:
		m.moveUp()
	case MenuEventMoveDown:
		m.moveDown()
	case MenuEventMoveLeft:
		m.moveLeft()
	case MenuEventMoveRight:
		m.moveRight()
	case MenuEventPreviousPage, MenuEventNextPage:
		// this menu has no concept of pages
	}

	debug.Assert(m.colPos >= 0 && m.rowPos >= 0, func() string {
		return fmt.Sprintf("menu position went negative: col=%d row=%d", m.colPos, m.rowPos)
	})
}
