// Package control runs the read → compute → write polling loop.
package control

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"projectctl/internal/level"
)

var afterFn = time.After

// CountReader supplies the press count for one cycle.
type CountReader interface {
	ReadCount() (uint32, error)
}

// LevelWriter drives one output level to the actuator.
type LevelWriter interface {
	Write(pct uint32) error
}

type Config struct {
	// Mode is the token shown in the banner (e.g. "--dev").
	Mode string
	// Target describes where output goes, for the banner and trace lines.
	Target string
	// TraceWrite logs "WRITE <pct> -> <target>" after each write. Backends
	// that log their own write summary leave it off.
	TraceWrite bool

	Reader   CountReader
	Writer   LevelWriter
	MaxPress uint32
	Interval time.Duration
	Logger   *log.Logger
}

type Loop struct {
	cfg Config
}

// Cycle is what one Step read, computed, and wrote.
type Cycle struct {
	Count   uint32
	Percent uint32
}

func New(cfg Config) (*Loop, error) {
	if cfg.Reader == nil {
		return nil, errors.New("control: reader is required")
	}
	if cfg.Writer == nil {
		return nil, errors.New("control: writer is required")
	}
	if cfg.MaxPress == 0 {
		return nil, errors.New("control: max press must be > 0")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("control: interval must be > 0")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Loop{cfg: cfg}, nil
}

func (l *Loop) Banner() string {
	return fmt.Sprintf("MODE %s: writing to %s", l.cfg.Mode, l.cfg.Target)
}

// Step runs exactly one cycle. Any I/O error aborts the cycle.
func (l *Loop) Step() (Cycle, error) {
	count, err := l.cfg.Reader.ReadCount()
	if err != nil {
		return Cycle{}, err
	}
	l.cfg.Logger.Printf("READ count = %d", count)

	pct := level.Percent(count, l.cfg.MaxPress)
	l.cfg.Logger.Printf("CALC output = %d%%", pct)

	c := Cycle{Count: count, Percent: pct}
	if err := l.cfg.Writer.Write(pct); err != nil {
		return c, err
	}
	if l.cfg.TraceWrite {
		l.cfg.Logger.Printf("WRITE %d -> %s", pct, l.cfg.Target)
	}
	return c, nil
}

// Run logs the banner and then steps forever, sleeping a constant interval
// after each cycle. It returns the first Step error, or ctx.Err() once ctx
// is done.
func (l *Loop) Run(ctx context.Context) error {
	l.cfg.Logger.Print(l.Banner())
	for {
		if _, err := l.Step(); err != nil {
			return err
		}
		select {
		case <-afterFn(l.cfg.Interval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
