//go:build windows

package corpstrack

import "os"

// processAlive reports whether pid can be opened. On Windows FindProcess
// fails for processes that no longer exist.
func processAlive(pid int) bool {
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	_ = p.Release()
	return true
}
