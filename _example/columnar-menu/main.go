package main

import (
	"flag"
	"fmt"
	"os"

	menu "github.com/joeycumines/go-menu"
	"github.com/joeycumines/go-menu/completer"
	"github.com/joeycumines/go-menu/debug"
	"github.com/joeycumines/go-menu/term"
)

// A tiny line editor wired to the columnar menu: type a path, press tab to
// open file completions, navigate with the arrow keys, accept with enter.
// Run with -no-color to see the plain-text fallback rendering.

const menuLines = 6

func main() {
	noColor := flag.Bool("no-color", false, "render the menu without ANSI colors")
	flag.Parse()

	if err := run(!*noColor); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(coloring bool) error {
	defer debug.Close()

	fd := int(os.Stdin.Fd())
	if err := term.SetRaw(fd); err != nil {
		return err
	}
	defer term.Restore()

	sizer := menu.NewWindowSizer()
	if err := sizer.Open(); err != nil {
		return err
	}
	defer sizer.Close()

	m := menu.New(menu.WithColumns(3))
	buf := menu.NewLineBuffer()
	comp := &completer.FilePathCompleter{IgnoreCase: true}
	painter := menu.NewPainter()

	redraw := func() error {
		prefix := "> "
		if m.IsActive() {
			prefix = m.Indicator()
		}
		fmt.Printf("\r\x1b[K%s%s", prefix, buf.Text())
		if m.IsActive() {
			return painter.Paint(m.MenuString(menuLines, coloring))
		}
		return painter.Clear()
	}

	in := make([]byte, 64)
	for {
		if err := redraw(); err != nil {
			return err
		}
		n, err := os.Stdin.Read(in)
		if err != nil {
			return err
		}
		key := in[:n]

		switch {
		case len(key) == 1 && key[0] == 0x03: // ctrl-c
			fmt.Print("\r\n")
			return painter.Clear()
		case len(key) == 1 && key[0] == '\t':
			if m.IsActive() {
				m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventNextElement})
			} else {
				m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventActivate})
			}
		case len(key) == 1 && (key[0] == '\r' || key[0] == '\n'):
			if m.IsActive() {
				m.ReplaceInBuffer(buf)
				m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventDeactivate})
			} else {
				fmt.Printf("\r\nyou typed: %s\r\n", buf.Text())
				buf.SetText("")
			}
		case len(key) == 1 && (key[0] == 0x7f || key[0] == 0x08): // backspace
			if buf.Len() > 0 {
				buf.DeleteGraphemeBeforeInsertionPoint()
				if m.IsActive() {
					m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventEdit})
				}
			}
		case len(key) == 3 && key[0] == 0x1b && key[1] == '[':
			if m.IsActive() {
				switch key[2] {
				case 'A':
					m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventMoveUp})
				case 'B':
					m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventMoveDown})
				case 'C':
					m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventMoveRight})
				case 'D':
					m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventMoveLeft})
				}
			}
		case len(key) == 1 && key[0] >= 0x20 && key[0] < 0x7f:
			buf.InsertText(string(key))
			if m.IsActive() {
				m.QueueEvent(menu.MenuEvent{Kind: menu.MenuEventEdit})
			}
		}

		m.Update(buf, comp, sizer)
	}
}
