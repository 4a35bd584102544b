// Package config loads the simulation config file. JSON follows the layout of
// the historical config.json; files ending in .yaml or .yml are read as YAML
// with the same keys.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"entropy/internal/diffusion"
	"entropy/internal/sims/entropy"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "config.json"

// ErrInvalidFile marks values the core never sees but the drivers need.
var ErrInvalidFile = errors.New("config: invalid file")

// File mirrors the on-disk configuration.
type File struct {
	// Dims is (height, width).
	Dims            [2]int  `json:"dims" yaml:"dims"`
	Hotspots        int     `json:"hotspots" yaml:"hotspots"`
	SleepIntervalMs int     `json:"sleep_interval_ms" yaml:"sleep_interval_ms"`
	Heat            float64 `json:"heat" yaml:"heat"`
	SizeFactor      int     `json:"size_factor" yaml:"size_factor"`

	Variant   string  `json:"variant,omitempty" yaml:"variant,omitempty"`
	Seed      int64   `json:"seed,omitempty" yaml:"seed,omitempty"`
	MaxEnergy float64 `json:"max_energy,omitempty" yaml:"max_energy,omitempty"`
	Palette   string  `json:"palette,omitempty" yaml:"palette,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() File {
	d := entropy.DefaultConfig()
	return File{
		Dims:            [2]int{d.Diffusion.Height, d.Diffusion.Width},
		Hotspots:        d.Diffusion.Hotspots,
		SleepIntervalMs: 0,
		Heat:            d.Diffusion.Heat,
		SizeFactor:      4,
		Variant:         string(diffusion.VariantContinuous),
		Seed:            d.Seed,
		MaxEnergy:       d.MaxEnergy,
		Palette:         d.Palette,
	}
}

// Load reads path on top of Default. Unknown keys are rejected.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&f)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	}
	if err != nil {
		return f, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f, nil
}

// LoadOptional behaves like Load but returns Default when path does not exist.
func LoadOptional(path string) (File, error) {
	f, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return f, err
}

// Height returns the grid height.
func (f File) Height() int { return f.Dims[0] }

// Width returns the grid width.
func (f File) Width() int { return f.Dims[1] }

// SleepInterval returns the pause between rendered frames.
func (f File) SleepInterval() time.Duration {
	return time.Duration(f.SleepIntervalMs) * time.Millisecond
}

// SimName maps the variant onto a registered simulation name.
func (f File) SimName() (string, error) {
	v, err := diffusion.ParseVariant(f.Variant)
	if err != nil {
		return "", err
	}
	if v == diffusion.VariantDiscrete {
		return entropy.NameDiscrete, nil
	}
	return entropy.NameContinuous, nil
}

// Map renders the simulation keys in the form accepted by the sim factories.
func (f File) Map() map[string]string {
	m := map[string]string{
		"h":        strconv.Itoa(f.Height()),
		"w":        strconv.Itoa(f.Width()),
		"hotspots": strconv.Itoa(f.Hotspots),
		"heat":     strconv.FormatFloat(f.Heat, 'f', -1, 64),
		"seed":     strconv.FormatInt(f.Seed, 10),
	}
	if f.MaxEnergy != 0 {
		m["max_energy"] = strconv.FormatFloat(f.MaxEnergy, 'f', -1, 64)
	}
	if f.Palette != "" {
		m["palette"] = f.Palette
	}
	return m
}

// Validate checks the driver-facing values and the variant's diffusion
// parameters, so a bad file fails before any window opens.
func (f File) Validate() error {
	if f.SizeFactor < 1 {
		return fmt.Errorf("%w: size_factor must be at least 1, got %d", ErrInvalidFile, f.SizeFactor)
	}
	if f.SleepIntervalMs < 0 {
		return fmt.Errorf("%w: sleep_interval_ms must not be negative, got %d", ErrInvalidFile, f.SleepIntervalMs)
	}
	v, err := diffusion.ParseVariant(f.Variant)
	if err != nil {
		return err
	}
	d := diffusion.Config{Height: f.Height(), Width: f.Width(), Hotspots: f.Hotspots, Heat: f.Heat}
	return d.Validate(v)
}
