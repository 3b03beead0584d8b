// Package config loads the optional palantir.yaml file holding the base
// theme and logging settings used by the palantir tool.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/palantir-ui/palantir/pkg/errors"
	"github.com/palantir-ui/palantir/pkg/geometry"
	"github.com/palantir-ui/palantir/pkg/graphics"
	"github.com/palantir-ui/palantir/pkg/style"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "palantir.yaml"

// Config represents palantir.yaml.
type Config struct {
	Theme ThemeConfig `yaml:"theme"`
	Log   LogConfig   `yaml:"log"`
}

// ThemeConfig overrides fields of style.Default. Unset fields keep their
// defaults. Edge lists use the shorthand of geometry.EdgesOf.
type ThemeConfig struct {
	FontSize        *uint32   `yaml:"font_size,omitempty" validate:"omitempty,min=1,max=1024"`
	Color           string    `yaml:"color,omitempty" validate:"omitempty,color_value"`
	BackgroundColor string    `yaml:"background_color,omitempty" validate:"omitempty,color_value"`
	BorderColor     string    `yaml:"border_color,omitempty" validate:"omitempty,color_value"`
	Padding         []float32 `yaml:"padding,omitempty" validate:"omitempty,min=1,max=4"`
	Margin          []float32 `yaml:"margin,omitempty" validate:"omitempty,min=1,max=4"`
	BorderWidth     []float32 `yaml:"border_width,omitempty" validate:"omitempty,min=1,max=4,dive,gte=0"`
	BorderRadius    *float32  `yaml:"border_radius,omitempty" validate:"omitempty,gte=0"`
	VAlign          string    `yaml:"v_align,omitempty" validate:"omitempty,oneof=stretch start center end"`
	HAlign          string    `yaml:"h_align,omitempty" validate:"omitempty,oneof=stretch start center end"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level   string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// LoadOptional reads palantir.yaml from dir if present. A missing file yields
// an empty Config.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Load reads, parses and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: "config.Load", Kind: errors.KindConfig, Err: fmt.Errorf("read %s: %w", path, err)}
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.Error{Op: "config.Parse", Kind: errors.KindConfig, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return &errors.Error{Op: "config.Validate", Kind: errors.KindConfig, Err: describeValidation(err)}
	}
	return nil
}

// Style resolves the theme overrides onto style.Default.
func (t ThemeConfig) Style() (style.Style, error) {
	s := style.Default()

	if t.FontSize != nil {
		s.FontSize = *t.FontSize
	}
	colors := []struct {
		value string
		dst   *graphics.Color
	}{
		{t.Color, &s.Color},
		{t.BackgroundColor, &s.BackgroundColor},
		{t.BorderColor, &s.BorderColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := graphics.ParseColor(c.value)
		if err != nil {
			return s, &errors.Error{Op: "config.Theme", Kind: errors.KindParsing, Err: err}
		}
		*c.dst = parsed
	}
	if len(t.Padding) > 0 {
		s.Padding = geometry.EdgesOf(t.Padding...)
	}
	if len(t.Margin) > 0 {
		s.Margin = geometry.EdgesOf(t.Margin...)
	}
	if len(t.BorderWidth) > 0 {
		s.BorderWidth = geometry.EdgesOf(t.BorderWidth...)
	}
	if t.BorderRadius != nil {
		s.BorderRadius = *t.BorderRadius
	}
	if t.VAlign != "" {
		s.VAlign, _ = geometry.ParseAlign(t.VAlign)
	}
	if t.HAlign != "" {
		s.HAlign, _ = geometry.ParseAlign(t.HAlign)
	}
	return s, nil
}

// FindProjectRoot walks up from the current directory to the nearest
// directory holding palantir.yaml, or returns the current directory.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func describeValidation(err error) error {
	msgs := validationMessages(err)
	if len(msgs) == 0 {
		return err
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
