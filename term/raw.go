//go:build !windows

// Package term switches the terminal in and out of raw mode.
package term

import (
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

var (
	saveTermios     unix.Termios
	saveTermiosFD   int
	saveTermiosErr  error
	saveTermiosOnce sync.Once
)

// getOriginalTermios captures the terminal attributes of fd the first time
// it runs. Every later call returns a copy of that first snapshot, no matter
// which fd is passed.
func getOriginalTermios(fd int) (*unix.Termios, error) {
	saveTermiosOnce.Do(func() {
		saveTermiosFD = fd
		saveTermiosErr = termios.Tcgetattr(uintptr(fd), &saveTermios)
	})
	if saveTermiosErr != nil {
		return nil, saveTermiosErr
	}
	v := saveTermios
	return &v, nil
}

// SetRaw puts the terminal connected to fd into raw mode.
func SetRaw(fd int) error {
	n, err := getOriginalTermios(fd)
	if err != nil {
		return err
	}

	n.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK |
		unix.ISTRIP | unix.INLCR | unix.IGNCR |
		unix.ICRNL | unix.IXON
	n.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG | unix.ECHONL
	n.Cflag &^= unix.CSIZE | unix.PARENB
	n.Cflag |= unix.CS8 // 8-bit wide, the typical value for displaying characters
	n.Cc[unix.VMIN] = 1
	n.Cc[unix.VTIME] = 0

	return termios.Tcsetattr(uintptr(fd), termios.TCSANOW, n)
}

// Restore resets the terminal whose attributes were captured first.
func Restore() error {
	return RestoreFD(saveTermiosFD)
}

// RestoreFD resets the terminal connected to fd to the captured attributes.
func RestoreFD(fd int) error {
	o, err := getOriginalTermios(fd)
	if err != nil {
		return err
	}
	return termios.Tcsetattr(uintptr(fd), termios.TCSANOW, o)
}
