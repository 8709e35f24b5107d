package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"omega2-pwm/internal/devmem"
)

// Config is the optional board profile. Default() is a usable configuration
// for a stock Omega2 with the PWM pads already muxed.
type Config struct {
	MemDevice string        `yaml:"mem_device"`
	Pinmux    []PinmuxEntry `yaml:"pinmux"`
}

// PinmuxEntry is one read-modify-write against a SoC pinmux register,
// applied before the matching channel is enabled: the bits under Mask are
// cleared and replaced with Value.
type PinmuxEntry struct {
	Channel int    `yaml:"channel"`
	Address uint32 `yaml:"address"`
	Mask    uint32 `yaml:"mask"`
	Value   uint32 `yaml:"value"`
}

// Default returns the built-in profile used when no config file is given.
func Default() Config {
	return Config{MemDevice: devmem.DefaultPath}
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.MemDevice == "" {
		cfg.MemDevice = devmem.DefaultPath
	}

	for i, p := range cfg.Pinmux {
		if p.Channel < 0 || p.Channel > 3 {
			return Config{}, fmt.Errorf("pinmux[%d].channel must be 0..3", i)
		}
		if p.Address == 0 {
			return Config{}, fmt.Errorf("pinmux[%d].address is required", i)
		}
		if p.Mask == 0 {
			return Config{}, fmt.Errorf("pinmux[%d].mask is required", i)
		}
		if p.Value&^p.Mask != 0 {
			return Config{}, fmt.Errorf("pinmux[%d].value does not fit in mask", i)
		}
	}

	return cfg, nil
}

// ForChannel returns the pinmux entries that apply to a channel.
func (c Config) ForChannel(channel int) []PinmuxEntry {
	var out []PinmuxEntry
	for _, p := range c.Pinmux {
		if p.Channel == channel {
			out = append(out, p)
		}
	}
	return out
}
