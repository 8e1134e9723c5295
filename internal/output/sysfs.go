package output

import (
	"fmt"
	"log"
	"path/filepath"

	"projectctl/internal/device"
	"projectctl/internal/level"
)

// Sysfs is the tri-channel backend writing one duty attribute per LED.
type Sysfs struct {
	res   device.Resources
	base  string
	files [3]string
	log   *log.Logger
}

func NewSysfs(res device.Resources, base string, files [3]string, logger *log.Logger) *Sysfs {
	if logger == nil {
		logger = log.Default()
	}
	return &Sysfs{res: res, base: base, files: files, log: logger}
}

func (s *Sysfs) Base() string { return s.base }

// Paths returns the duty attribute path of each channel, in fill order.
func (s *Sysfs) Paths() [3]string {
	var out [3]string
	for i, f := range s.files {
		out[i] = filepath.Join(s.base, f)
	}
	return out
}

// Write splits pct across the three channels and writes them in order.
// The first failing channel aborts the write; later channels are untouched.
func (s *Sysfs) Write(pct uint32) error {
	duties := level.Split(pct)
	s.log.Printf("WRITE sysfs -> %s=%d, %s=%d, %s=%d",
		s.files[0], duties[0],
		s.files[1], duties[1],
		s.files[2], duties[2],
	)

	for i, path := range s.Paths() {
		if err := writeValue(s.res, path, duties[i]); err != nil {
			return fmt.Errorf("output: write %d to %s: %w", duties[i], path, err)
		}
	}
	return nil
}
