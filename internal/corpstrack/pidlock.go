package corpstrack

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PIDLockPath returns the default PID lock file path (~/.corpstrack/corpstrack.pid).
func PIDLockPath() string {
	return filepath.Join(stateDir(), "corpstrack.pid")
}

// AcquirePIDLock checks for an existing interactive corpstrack process and
// writes the current PID if no other instance is running.
func AcquirePIDLock() error {
	return acquirePIDLockAt(PIDLockPath())
}

// ReleasePIDLock removes the PID lock file. Safe to call even if the file
// does not exist.
func ReleasePIDLock() {
	_ = os.Remove(PIDLockPath())
}

func acquirePIDLockAt(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create pid dir: %w", err)
	}

	if pid, alive := readPIDLock(path); alive && pid != os.Getpid() {
		return fmt.Errorf("corpstrack is already running (PID: %d)", pid)
	}

	data := []byte(strconv.Itoa(os.Getpid()))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write pid lock: %w", err)
	}
	return nil
}

// readPIDLock reads the PID from the lock file and checks whether that
// process is alive. Returns (pid, true) if alive, (0, false) otherwise.
func readPIDLock(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	if !processAlive(pid) {
		return 0, false // stale PID file
	}
	return pid, true
}
