//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err == nil {
		termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		termios.Iflag |= unix.ICRNL
		unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
	}
}
