//go:build windows

package menu

import (
	"sync"

	tty "github.com/mattn/go-tty"
)

// WindowsSizer reads the size of the Win32 console.
type WindowsSizer struct {
	mu   sync.RWMutex
	tty  *tty.TTY
	open bool
	err  error // close error
}

// Open acquires the console. It must be called before GetWinSize.
func (p *WindowsSizer) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, err := tty.Open()
	if err != nil {
		return err
	}
	p.tty = t
	p.open = true
	return nil
}

// Close releases the console.
func (p *WindowsSizer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		// return any previous close error
		return p.err
	}
	p.open = false
	p.err = p.tty.Close()
	return p.err
}

func (p *WindowsSizer) getTTY() *tty.TTY {
	p.mu.RLock()
	defer p.mu.RUnlock()
	// WARNING: deliberately doesn't guard on open state
	return p.tty
}

// GetWinSize returns the console dimensions. If the size cannot be read, we
// simply return the default window size as it's our best guess.
func (p *WindowsSizer) GetWinSize() *WinSize {
	t := p.getTTY()
	if t == nil {
		return &WinSize{
			Row: DefRowCount,
			Col: DefColCount,
		}
	}
	w, h, err := t.Size()
	if err != nil {
		return &WinSize{
			Row: DefRowCount,
			Col: DefColCount,
		}
	}
	return &WinSize{
		Row: uint16(h),
		Col: uint16(w),
	}
}

var _ WindowSizer = &WindowsSizer{}

// NewWindowSizer returns a sizer for the console.
func NewWindowSizer() *WindowsSizer {
	return &WindowsSizer{}
}
