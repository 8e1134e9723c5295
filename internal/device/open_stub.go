//go:build !linux

package device

import "os"

func openWrite(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY, 0)
}
