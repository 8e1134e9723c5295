// Package devicetest provides an in-memory device.Resources for tests.
package devicetest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// Mem holds named resources in memory. Writes replace a file's content when
// the handle is closed; character devices registered with SetDevice keep
// returning their read content and only log writes. Missing resources fail
// to open with os.ErrNotExist, like a device node that is not there.
type Mem struct {
	mu        sync.Mutex
	content   map[string]string
	failOpen  map[string]error
	failWrite map[string]error
	devices   map[string]bool
	writes    []Write
	open      int
}

// Write records one completed write, in order.
type Write struct {
	Path string
	Data string
}

func NewMem() *Mem {
	return &Mem{
		content:   make(map[string]string),
		failOpen:  make(map[string]error),
		failWrite: make(map[string]error),
		devices:   make(map[string]bool),
	}
}

// Set creates or replaces a resource.
func (m *Mem) Set(path, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content[path] = data
}

// SetDevice creates a character device whose reads always return
// readContent. Writes go to the driver: they are recorded but never change
// what the next read sees.
func (m *Mem) SetDevice(path, readContent string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content[path] = readContent
	m.devices[path] = true
}

// LastWrite returns the data of the most recent completed write to path.
func (m *Mem) LastWrite(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.writes) - 1; i >= 0; i-- {
		if m.writes[i].Path == path {
			return m.writes[i].Data, true
		}
	}
	return "", false
}

func (m *Mem) Get(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.content[path]
	return s, ok
}

// FailOpen makes every open of path return err.
func (m *Mem) FailOpen(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOpen[path] = err
}

// FailWrite makes writes through handles on path return err.
func (m *Mem) FailWrite(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrite[path] = err
}

func (m *Mem) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Write(nil), m.writes...)
}

// OpenHandles reports handles that were opened but not yet closed.
func (m *Mem) OpenHandles() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Mem) lookup(path string) error {
	if err := m.failOpen[path]; err != nil {
		return &os.PathError{Op: "open", Path: path, Err: err}
	}
	if _, ok := m.content[path]; !ok {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return nil
}

func (m *Mem) OpenRead(path string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.lookup(path); err != nil {
		return nil, err
	}
	m.open++
	return &memReader{m: m, r: bytes.NewReader([]byte(m.content[path]))}, nil
}

func (m *Mem) OpenWrite(path string) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.lookup(path); err != nil {
		return nil, err
	}
	m.open++
	return &memWriter{m: m, path: path, err: m.failWrite[path]}, nil
}

func (m *Mem) release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open--
}

type memReader struct {
	m      *Mem
	r      *bytes.Reader
	closed bool
}

func (r *memReader) Read(p []byte) (int, error) { return r.r.Read(p) }

func (r *memReader) Close() error {
	if r.closed {
		return fmt.Errorf("devicetest: double close")
	}
	r.closed = true
	r.m.release()
	return nil
}

type memWriter struct {
	m      *Mem
	path   string
	buf    bytes.Buffer
	err    error
	closed bool
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, &os.PathError{Op: "write", Path: w.path, Err: w.err}
	}
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	if w.closed {
		return fmt.Errorf("devicetest: double close")
	}
	w.closed = true
	w.m.release()
	if w.err != nil {
		return nil
	}
	w.m.mu.Lock()
	defer w.m.mu.Unlock()
	if !w.m.devices[w.path] {
		w.m.content[w.path] = w.buf.String()
	}
	w.m.writes = append(w.m.writes, Write{Path: w.path, Data: w.buf.String()})
	return nil
}
