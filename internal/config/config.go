package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Cycle struct {
	PeriodMs   int      `yaml:"period_ms"`
	StepDeg    float64  `yaml:"step_deg"`
	Saturation *float64 `yaml:"saturation,omitempty"`
	Luminosity *float64 `yaml:"luminosity,omitempty"`
}

type Config struct {
	Driver     string `yaml:"driver"` // "gpio" | "spi" | "sim"
	Pin        string `yaml:"pin"`    // e.g. GPIO18, or an SPI port name
	Brightness *int   `yaml:"brightness,omitempty"`
	FreqKHz    int    `yaml:"freq_khz"`
	Addr       string `yaml:"addr"`
	Color      string `yaml:"color,omitempty"`

	Cycle Cycle `yaml:"cycle"`
}

// Default returns the settings used when no file overrides them.
func Default() *Config {
	br := 128
	sat, lum := 99.0, 50.0
	return &Config{
		Driver:     "sim",
		Pin:        "GPIO18",
		Brightness: &br,
		FreqKHz:    800,
		Cycle: Cycle{
			PeriodMs:   50,
			StepDeg:    2,
			Saturation: &sat,
			Luminosity: &lum,
		},
	}
}

// Effective overlays file onto the flag values. The file wins for hardware
// and cycle settings it actually sets; color and addr given as flags win over
// the file. simOnly forces the simulator. file may be nil.
func Effective(flags Config, file *Config, simOnly bool) *Config {
	e := flags.clone()
	if file != nil {
		e.Driver = firstNonEmpty(file.Driver, e.Driver)
		e.Pin = firstNonEmpty(file.Pin, e.Pin)
		e.Color = firstNonEmpty(e.Color, file.Color)
		e.Addr = firstNonEmpty(e.Addr, file.Addr)
		if file.Brightness != nil {
			e.Brightness = intp(*file.Brightness)
		}
		if file.FreqKHz > 0 {
			e.FreqKHz = file.FreqKHz
		}
		if file.Cycle.PeriodMs > 0 {
			e.Cycle.PeriodMs = file.Cycle.PeriodMs
		}
		if file.Cycle.StepDeg != 0 {
			e.Cycle.StepDeg = file.Cycle.StepDeg
		}
		if file.Cycle.Saturation != nil {
			e.Cycle.Saturation = floatp(*file.Cycle.Saturation)
		}
		if file.Cycle.Luminosity != nil {
			e.Cycle.Luminosity = floatp(*file.Cycle.Luminosity)
		}
	}
	if simOnly {
		e.Driver = "sim"
	}
	return e
}

func (c Config) clone() *Config {
	if c.Brightness != nil {
		c.Brightness = intp(*c.Brightness)
	}
	if c.Cycle.Saturation != nil {
		c.Cycle.Saturation = floatp(*c.Cycle.Saturation)
	}
	if c.Cycle.Luminosity != nil {
		c.Cycle.Luminosity = floatp(*c.Cycle.Luminosity)
	}
	return &c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func firstNonEmpty(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func intp(v int) *int { return &v }
func floatp(v float64) *float64 { return &v }
