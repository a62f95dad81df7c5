package main

import (
	"fmt"

	menu "github.com/joeycumines/go-menu"
	istrings "github.com/joeycumines/go-menu/strings"
)

// Scripted walkthrough of only-buffer-difference mode: the completer only
// ever sees the text typed since the menu was activated, not the whole
// buffer. Output is printed plainly, so this runs fine outside a terminal.

var commands = []menu.Suggest{
	{Text: "status", Description: "show the working tree status"},
	{Text: "stash", Description: "stash away local changes"},
	{Text: "show", Description: "show an object"},
	{Text: "switch", Description: "switch branches"},
}

func subcommands(text string, pos istrings.ByteNumber) []menu.Suggest {
	fmt.Printf("completer called with text=%q pos=%d\n", text, pos)
	out := menu.FilterHasPrefix(commands, text, true)
	for i := range out {
		// the typed difference starts at pos and spans the typed text
		out[i].Span = menu.Span{Start: pos, End: pos + istrings.Len(text)}
	}
	return out
}

func main() {
	m := menu.New(
		menu.WithOnlyBufferDifference(true),
		menu.WithColumns(1),
	)
	buf := menu.NewLineBuffer()
	sizer := menu.FixedSizer{Row: 24, Col: 60}

	buf.SetText("git ")
	m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventActivate, AlreadyUpdated: true})
	m.Update(buf, menu.CompleterFunc(subcommands), sizer)

	for _, ch := range []string{"s", "t", "a"} {
		buf.InsertText(ch)
		m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventEdit})
		m.Update(buf, menu.CompleterFunc(subcommands), sizer)

		fmt.Printf("buffer: %q\n", buf.Text())
		fmt.Println(m.MenuString(4, false))
	}

	m.ReplaceInBuffer(buf)
	fmt.Printf("accepted: %q\n", buf.Text())
}
