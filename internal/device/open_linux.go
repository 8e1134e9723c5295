//go:build linux

package device

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func openWrite(path string) (*os.File, error) {
	// O_NOCTTY: /dev/project is a character device and must never become
	// our controlling terminal.
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CLOEXEC|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	f := os.NewFile(uintptr(fd), path)
	if f == nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("os.NewFile failed for %s", path)
	}
	return f, nil
}
