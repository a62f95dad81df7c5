//go:build unix

package menu

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// PosixSizer reads the size of the controlling terminal with the TIOCGWINSZ
// ioctl.
type PosixSizer struct {
	fd           int
	open         func(string, int, uint32) (int, error)
	close        func(int) error
	ioctlWinsize func(int, uint) (*unix.Winsize, error)
}

func (t *PosixSizer) initFuncs() {
	if t.open == nil {
		t.open = syscall.Open
	}
	if t.close == nil {
		t.close = syscall.Close
	}
	if t.ioctlWinsize == nil {
		t.ioctlWinsize = unix.IoctlGetWinsize
	}
}

// Open acquires the controlling terminal, falling back to stdin when there
// is none. It must be called before GetWinSize.
func (t *PosixSizer) Open() error {
	t.initFuncs()
	in, err := t.open("/dev/tty", syscall.O_RDONLY, 0)
	if os.IsNotExist(err) {
		in = syscall.Stdin
	} else if err != nil {
		return err
	}
	t.fd = in
	return nil
}

// Close releases the terminal acquired by Open. A stdin fallback is left
// open.
func (t *PosixSizer) Close() error {
	t.initFuncs()
	if t.fd == syscall.Stdin {
		return nil
	}
	return t.close(t.fd)
}

// GetWinSize returns the terminal dimensions. If the ioctl errors, we simply
// return the default window size as it's our best guess.
func (t *PosixSizer) GetWinSize() *WinSize {
	t.initFuncs()
	ws, err := t.ioctlWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil {
		return &WinSize{
			Row: DefRowCount,
			Col: DefColCount,
		}
	}
	return &WinSize{
		Row: ws.Row,
		Col: ws.Col,
	}
}

var _ WindowSizer = &PosixSizer{}

// NewWindowSizer returns a sizer for the controlling terminal.
func NewWindowSizer() *PosixSizer {
	return &PosixSizer{
		open:         syscall.Open,
		close:        syscall.Close,
		ioctlWinsize: unix.IoctlGetWinsize,
	}
}
