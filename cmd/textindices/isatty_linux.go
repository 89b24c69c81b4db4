//go:build linux
// +build linux

package main

import (
	"os"
	"syscall"
	"unsafe"
)

// isTerminal reports whether f refers to a terminal, by asking the kernel for
// its termios settings.
func isTerminal(f *os.File) bool {
	var termios syscall.Termios
	_, _, errno := syscall.Syscall6(syscall.SYS_IOCTL, f.Fd(), syscall.TCGETS, uintptr(unsafe.Pointer(&termios)), 0, 0, 0) // #nosec G103 -- Required for terminal detection
	return errno == 0
}
