package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"projectctl/internal/config"
	"projectctl/internal/control"
	"projectctl/internal/device"
	"projectctl/internal/output"
	"projectctl/internal/press"
)

func main() {
	mode, msg := dispatch(os.Args)
	if msg != "" {
		// Argument mistakes are not failures: print guidance and exit 0.
		fmt.Fprintln(os.Stderr, msg)
		return
	}

	cfg := config.Default(mode)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	loop, err := newLoop(cfg, device.OS{}, logger)
	if err != nil {
		log.Fatalf("control loop init failed: %v", err)
	}

	// No signal handling: the loop runs until killed or an I/O error.
	if err := loop.Run(context.Background()); err != nil {
		log.Fatalf("control loop stopped: %v", err)
	}
}

// dispatch picks the mode from the command line. When no mode is selected it
// returns the message to print on stderr instead.
func dispatch(args []string) (config.Mode, string) {
	if len(args) != 2 {
		prog := "projectctl"
		if len(args) > 0 && args[0] != "" {
			prog = filepath.Base(args[0])
		}
		return "", fmt.Sprintf("Usage: %s [%s | %s]", prog, config.ModeDevice, config.ModeSysfs)
	}
	mode, err := config.ParseMode(args[1])
	if err != nil {
		return "", fmt.Sprintf("Unrecognized argument '%s'. Use %s or %s.", args[1], config.ModeDevice, config.ModeSysfs)
	}
	return mode, ""
}

func newLoop(cfg config.Config, res device.Resources, logger *log.Logger) (*control.Loop, error) {
	lc := control.Config{
		Mode:     string(cfg.Mode),
		Reader:   press.NewReader(res, cfg.DevicePath),
		MaxPress: cfg.MaxPress,
		Interval: cfg.PollInterval,
		Logger:   logger,
	}
	switch cfg.Mode {
	case config.ModeDevice:
		w := output.NewDevice(res, cfg.DevicePath)
		lc.Writer = w
		lc.Target = w.Path()
		lc.TraceWrite = true
	case config.ModeSysfs:
		w := output.NewSysfs(res, cfg.SysfsBase, cfg.LEDFiles, logger)
		lc.Writer = w
		lc.Target = w.Base() + "/<led?_duty>"
	default:
		return nil, fmt.Errorf("unsupported mode %q", cfg.Mode)
	}
	return control.New(lc)
}
