package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"entropy/internal/diffusion"
	"entropy/internal/sims/entropy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"dims": [60, 80],
		"hotspots": 12,
		"sleep_interval_ms": 16,
		"heat": 0.3,
		"size_factor": 5
	}`)
	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, f.Height())
	assert.Equal(t, 80, f.Width())
	assert.Equal(t, 12, f.Hotspots)
	assert.Equal(t, 16*time.Millisecond, f.SleepInterval())
	assert.Equal(t, 0.3, f.Heat)
	assert.Equal(t, 5, f.SizeFactor)
	assert.Equal(t, "continuous", f.Variant, "missing keys keep their defaults")
	require.NoError(t, f.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "dims: [10, 20]\nhotspots: 4\nheat: 0.9\nsize_factor: 2\nvariant: discrete\npalette: turbo\n")
	f, err := Load(path)
	require.NoError(t, err)

	name, err := f.SimName()
	require.NoError(t, err)
	assert.Equal(t, entropy.NameDiscrete, name)
	assert.Equal(t, "turbo", f.Palette)
	assert.Equal(t, [2]int{10, 20}, f.Dims)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "config.json", `{"dims": [4, 4], "hotspot": 2}`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "config.yml", "dims: [4, 4]\nhotspot: 2\n"))
	assert.Error(t, err)
}

func TestLoadOptional(t *testing.T) {
	f, err := LoadOptional(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), f)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	f := Default()
	require.NoError(t, f.Validate())

	bad := f
	bad.SizeFactor = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidFile)

	bad = f
	bad.SleepIntervalMs = -5
	assert.ErrorIs(t, bad.Validate(), ErrInvalidFile)

	bad = f
	bad.Dims = [2]int{0, 10}
	assert.ErrorIs(t, bad.Validate(), diffusion.ErrInvalidDimensions)

	bad = f
	bad.Hotspots = f.Height()*f.Width() + 1
	assert.ErrorIs(t, bad.Validate(), diffusion.ErrInvalidHotspots)

	bad = f
	bad.Variant = "discrete"
	bad.Heat = 1.2
	assert.ErrorIs(t, bad.Validate(), diffusion.ErrInvalidHeat)

	bad = f
	bad.Variant = "fluid"
	assert.ErrorIs(t, bad.Validate(), diffusion.ErrUnknownVariant)
}

func TestMapFeedsFactories(t *testing.T) {
	f := Default()
	f.Dims = [2]int{7, 9}
	f.Hotspots = 3
	f.Palette = "magma"

	c, err := entropy.FromMap(f.Map())
	require.NoError(t, err)
	assert.Equal(t, diffusion.Config{Height: 7, Width: 9, Hotspots: 3, Heat: f.Heat}, c.Diffusion)
	assert.Equal(t, "magma", c.Palette)
	assert.Equal(t, f.Seed, c.Seed)
	assert.Equal(t, f.MaxEnergy, c.MaxEnergy)
}
