package asciiprint

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the parameters of one conversion. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Ramp     int    `yaml:"ramp"`
	RampName string `yaml:"rampName,omitempty"` // Overrides Ramp when set

	Rotate     int     `yaml:"rotate"` // 0 or 1, in half turns
	Mirror     int     `yaml:"mirror"` // 0 or 1
	Contrast   float64 `yaml:"contrast"`
	Brightness float64 `yaml:"brightness"`

	Pages        int     `yaml:"pages"`
	Pitch        int     `yaml:"pitch"`        // Characters per inch
	RowFrequency int     `yaml:"rowFrequency"` // Rows per inch
	PageWidth    float64 `yaml:"pageWidth"`    // Inches
	Gap          int     `yaml:"gap"`          // Inches on each side of a page join

	Filter     string `yaml:"filter"`
	Dither     bool   `yaml:"dither"`
	FullHeight bool   `yaml:"fullHeight"`
}

// DefaultConfig is a 10 pitch, 6 lines per inch teleprinter printing on one
// 8 inch wide page.
func DefaultConfig() Config {
	return Config{
		Ramp:         DefaultRamp,
		Contrast:     1.0,
		Brightness:   1.0,
		Pages:        1,
		Pitch:        10,
		RowFrequency: 6,
		PageWidth:    8.0,
		Filter:       DefaultFilter,
	}
}

// LoadConfig reads a YAML printer profile. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, &ConfigError{Field: "config file " + path, Reason: err.Error()}
	}
	return cfg, nil
}

// SaveConfig writes cfg as a YAML printer profile.
func SaveConfig(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// Validate rejects parameters that cannot describe a printable page.
// Contrast and brightness may be negative: a negative contrast inverts the
// image around its mean and a negative brightness prints blank paper.
func (cfg Config) Validate() error {
	switch {
	case cfg.Rotate != 0 && cfg.Rotate != 1:
		return &ConfigError{Field: "rotate", Reason: fmt.Sprintf("%d is not 0 or 1", cfg.Rotate)}
	case cfg.Mirror != 0 && cfg.Mirror != 1:
		return &ConfigError{Field: "mirror", Reason: fmt.Sprintf("%d is not 0 or 1", cfg.Mirror)}
	case !finite(cfg.Contrast):
		return &ConfigError{Field: "contrast", Reason: fmt.Sprintf("%g is not a finite number", cfg.Contrast)}
	case !finite(cfg.Brightness):
		return &ConfigError{Field: "brightness", Reason: fmt.Sprintf("%g is not a finite number", cfg.Brightness)}
	case cfg.Pages < 1:
		return &ConfigError{Field: "pages", Reason: fmt.Sprintf("%d is less than 1", cfg.Pages)}
	case cfg.Pitch < 1:
		return &ConfigError{Field: "pitch", Reason: fmt.Sprintf("%d is less than 1", cfg.Pitch)}
	case cfg.RowFrequency < 1:
		return &ConfigError{Field: "row frequency", Reason: fmt.Sprintf("%d is less than 1", cfg.RowFrequency)}
	case !finite(cfg.PageWidth) || cfg.PageWidth <= 0:
		return &ConfigError{Field: "page width", Reason: fmt.Sprintf("%g is not positive", cfg.PageWidth)}
	case cfg.Gap < 0:
		return &ConfigError{Field: "gap", Reason: fmt.Sprintf("%d is negative", cfg.Gap)}
	}
	if _, ok := resamplers[cfg.Filter]; !ok {
		return &ConfigError{Field: "filter", Reason: fmt.Sprintf("unknown filter %q", cfg.Filter)}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// SelectRamp resolves the configured ramp, by name if one is given.
func (cfg Config) SelectRamp() (Ramp, error) {
	if cfg.RampName != "" {
		r, _, err := RampByName(cfg.RampName)
		return r, err
	}
	return SelectRamp(cfg.Ramp)
}

func (cfg Config) encoderOpts() []EncoderOpt {
	var opts []EncoderOpt
	if cfg.FullHeight {
		opts = append(opts, WithFullHeight())
	}
	if cfg.Dither {
		opts = append(opts, WithDiffusion())
	}
	return opts
}
