package device

import (
	"io"
	"os"
)

// Resources opens named byte resources (device nodes, sysfs attributes).
//
// Every handle is expected to be closed by the caller before the next
// operation; nothing here caches or reuses descriptors.
type Resources interface {
	OpenRead(path string) (io.ReadCloser, error)
	OpenWrite(path string) (io.WriteCloser, error)
}

// OS is the Resources implementation backed by the host filesystem.
type OS struct{}

func (OS) OpenRead(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// OpenWrite opens path write-only without O_CREAT/O_TRUNC/O_APPEND.
// Character devices and sysfs attributes must already exist, and some sysfs
// attributes reject truncation flags at open() time.
func (OS) OpenWrite(path string) (io.WriteCloser, error) {
	f, err := openWrite(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
