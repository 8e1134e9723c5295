// Package press reads the rolling press count exposed by the project device.
package press

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"projectctl/internal/device"
)

// ParseCount parses the device's textual count. Anything that is not an
// unsigned 32-bit decimal integer (after trimming whitespace, with at most
// one leading '+') reads as 0.
func ParseCount(s string) uint32 {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

type Reader struct {
	res  device.Resources
	path string
}

func NewReader(res device.Resources, path string) *Reader {
	return &Reader{res: res, path: path}
}

// ReadCount opens the input resource, reads everything, and closes it again.
// Only open/read failures are reported; unparsable content is a count of 0.
func (r *Reader) ReadCount() (uint32, error) {
	f, err := r.res.OpenRead(r.path)
	if err != nil {
		return 0, fmt.Errorf("press: open %s: %w", r.path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return 0, fmt.Errorf("press: read %s: %w", r.path, err)
	}
	return ParseCount(string(b)), nil
}
