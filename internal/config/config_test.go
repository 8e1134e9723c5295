package config

import (
	"testing"
	"time"
)

func requireErrEq(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("error=%q want %q", err.Error(), want)
	}
}

func TestParseMode(t *testing.T) {
	for _, tok := range []string{"--dev", "--sys"} {
		m, err := ParseMode(tok)
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", tok, err)
		}
		if string(m) != tok {
			t.Fatalf("mode=%q want %q", m, tok)
		}
	}
}

func TestParseMode_Unrecognized(t *testing.T) {
	_, err := ParseMode("--fan")
	requireErrEq(t, err, `unrecognized mode "--fan"`)
}

func TestDefault_UsesFixedPaths(t *testing.T) {
	cfg := Default(ModeSysfs)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if cfg.DevicePath != "/dev/project" {
		t.Fatalf("device=%q", cfg.DevicePath)
	}
	if cfg.SysfsBase != "/sys/class/project/project" {
		t.Fatalf("sysfs base=%q", cfg.SysfsBase)
	}
	if cfg.LEDFiles != [3]string{"led1_duty", "led2_duty", "led3_duty"} {
		t.Fatalf("led files=%v", cfg.LEDFiles)
	}
	if cfg.MaxPress != 110 {
		t.Fatalf("max press=%d want 110", cfg.MaxPress)
	}
	if cfg.PollInterval != 500*time.Millisecond {
		t.Fatalf("interval=%s want 500ms", cfg.PollInterval)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "MissingMode",
			mutate: func(c *Config) { c.Mode = "" },
			want:   "mode is required",
		},
		{
			name:   "UnknownMode",
			mutate: func(c *Config) { c.Mode = "--gpio" },
			want:   `mode "--gpio" is not one of --dev, --sys`,
		},
		{
			name:   "MissingDevice",
			mutate: func(c *Config) { c.DevicePath = "" },
			want:   "device_path is required",
		},
		{
			name:   "MissingSysfsBase",
			mutate: func(c *Config) { c.SysfsBase = "" },
			want:   "sysfs_base is required in --sys mode",
		},
		{
			name:   "MissingLEDFile",
			mutate: func(c *Config) { c.LEDFiles[2] = "" },
			want:   "led_files[2] is required in --sys mode",
		},
		{
			name:   "ZeroMaxPress",
			mutate: func(c *Config) { c.MaxPress = 0 },
			want:   "max_press must be > 0",
		},
		{
			name:   "ZeroInterval",
			mutate: func(c *Config) { c.PollInterval = 0 },
			want:   "poll_interval must be > 0",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default(ModeSysfs)
			tc.mutate(&cfg)
			requireErrEq(t, cfg.Validate(), tc.want)
		})
	}
}

func TestValidate_DeviceModeIgnoresSysfs(t *testing.T) {
	cfg := Default(ModeDevice)
	cfg.SysfsBase = ""
	cfg.LEDFiles = [3]string{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
}
