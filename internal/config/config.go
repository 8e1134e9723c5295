package config

import (
	"fmt"
	"time"
)

// Fixed locations exposed by the project kernel module.
const (
	DevicePath = "/dev/project"
	SysfsBase  = "/sys/class/project/project"
)

// LEDFiles are the per-channel duty attributes under SysfsBase, in fill order.
var LEDFiles = [3]string{"led1_duty", "led2_duty", "led3_duty"}

const (
	// MaxPress is the press count treated as fully loaded (100%).
	MaxPress uint32 = 110
	// PollInterval is the constant sleep between loop cycles.
	PollInterval = 500 * time.Millisecond
)

// Mode selects the output backend.
type Mode string

const (
	ModeDevice Mode = "--dev"
	ModeSysfs  Mode = "--sys"
)

// ParseMode maps a command-line token to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDevice, ModeSysfs:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unrecognized mode %q", s)
	}
}

type Config struct {
	Mode Mode

	// DevicePath is read for the press count and, in device mode, written
	// with the output percentage.
	DevicePath string
	SysfsBase  string
	LEDFiles   [3]string

	MaxPress     uint32
	PollInterval time.Duration
}

// Default returns the production configuration for mode.
func Default(mode Mode) Config {
	return Config{
		Mode:         mode,
		DevicePath:   DevicePath,
		SysfsBase:    SysfsBase,
		LEDFiles:     LEDFiles,
		MaxPress:     MaxPress,
		PollInterval: PollInterval,
	}
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeDevice, ModeSysfs:
	case "":
		return fmt.Errorf("mode is required")
	default:
		return fmt.Errorf("mode %q is not one of %s, %s", c.Mode, ModeDevice, ModeSysfs)
	}
	if c.DevicePath == "" {
		return fmt.Errorf("device_path is required")
	}
	if c.Mode == ModeSysfs {
		if c.SysfsBase == "" {
			return fmt.Errorf("sysfs_base is required in %s mode", ModeSysfs)
		}
		for i, f := range c.LEDFiles {
			if f == "" {
				return fmt.Errorf("led_files[%d] is required in %s mode", i, ModeSysfs)
			}
		}
	}
	if c.MaxPress == 0 {
		return fmt.Errorf("max_press must be > 0")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be > 0")
	}
	return nil
}
