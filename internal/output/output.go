// Package output drives the computed level to the project device.
//
// Two backends exist: Device writes the percentage to the character device,
// which splits it across the LEDs in the kernel; Sysfs performs the split in
// userspace and writes each LED's duty attribute directly.
package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"projectctl/internal/device"
)

// ErrPercentRange is returned for a level the driver would reject.
var ErrPercentRange = errors.New("output: percent out of range 0..100")

// Writer is implemented by both backends.
type Writer interface {
	Write(pct uint32) error
}

// writeValue opens path, writes v as decimal text plus newline, and closes.
func writeValue(res device.Resources, path string, v uint32) error {
	f, err := res.OpenWrite(path)
	if err != nil {
		return err
	}
	_, werr := io.WriteString(f, strconv.FormatUint(uint64(v), 10)+"\n")
	cerr := f.Close()
	if werr != nil && cerr != nil {
		return errors.Join(werr, cerr)
	}
	if werr != nil {
		return werr
	}
	return cerr
}

// Device is the single-channel backend.
type Device struct {
	res  device.Resources
	path string
}

func NewDevice(res device.Resources, path string) *Device {
	return &Device{res: res, path: path}
}

func (d *Device) Path() string { return d.path }

func (d *Device) Write(pct uint32) error {
	if pct > 100 {
		return fmt.Errorf("%w: %d", ErrPercentRange, pct)
	}
	if err := writeValue(d.res, d.path, pct); err != nil {
		return fmt.Errorf("output: write %d to %s: %w", pct, d.path, err)
	}
	return nil
}

var (
	_ Writer = (*Device)(nil)
	_ Writer = (*Sysfs)(nil)
)
