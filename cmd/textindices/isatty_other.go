//go:build !linux
// +build !linux

package main

import "os"

// isTerminal is not implemented on this platform; use --color=always to
// force highlighting.
func isTerminal(f *os.File) bool {
	return false
}
