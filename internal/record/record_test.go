package record

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"entropy/internal/core"
	"entropy/internal/diffusion"
	"entropy/internal/render"
	"entropy/internal/sims/entropy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld(t *testing.T) *entropy.World[float64] {
	t.Helper()
	cfg := entropy.DefaultConfig()
	cfg.Diffusion = diffusion.Config{Height: 8, Width: 10, Hotspots: 3}
	w, err := entropy.NewContinuous(cfg)
	require.NoError(t, err)
	return w
}

func TestRunRecordsEnergyAndFrames(t *testing.T) {
	world := newWorld(t)
	path := filepath.Join(t.TempDir(), "run.avi")
	video, err := NewVideo(path, 10, 8, 2, 24, world.Palette())
	require.NoError(t, err)

	res, err := Run(world, 5, 12, video)
	require.NoError(t, err)
	require.NoError(t, video.Close())

	assert.Equal(t, 12, res.Steps)
	assert.Len(t, res.Energies, 13)
	assert.Equal(t, 13, video.Frames())
	assert.InDelta(t, 100.0, res.Initial, 1e-9)
	assert.InDelta(t, res.Initial, res.Final, 1e-9)
	assert.Less(t, res.RelativeDrift(), 1e-9)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[:4]))
}

func TestRunDiscreteReportsLeak(t *testing.T) {
	cfg := entropy.DefaultConfig()
	cfg.Diffusion = diffusion.Config{Height: 10, Width: 10, Hotspots: 10, Heat: 0.3}
	world, err := entropy.NewDiscrete(cfg)
	require.NoError(t, err)

	res, err := Run(world, 3, 6, nil)
	require.NoError(t, err)
	assert.Less(t, res.Final, res.Initial)
	assert.Positive(t, res.MaxDrift)
}

type silentSim struct{}

func (silentSim) Name() string    { return "silent" }
func (silentSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (silentSim) Reset(int64)     {}
func (silentSim) Step()           {}
func (silentSim) Cells() []uint8  { return []uint8{0} }

func TestRunRequiresEnergyReporter(t *testing.T) {
	_, err := Run(silentSim{}, 1, 1, nil)
	assert.Error(t, err)
}

func TestWriteEnergyChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEnergyChart(&buf, "energy", []float64{10, 9.5, 9, 9.2}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "chart should be a PNG")

	assert.Error(t, WriteEnergyChart(&buf, "energy", []float64{1}))
}

func TestSaveHistogram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.png")
	require.NoError(t, SaveHistogram(path, "final energy", []float64{0, 0.5, 1, 1, 2.5}, 4))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, SaveHistogram(path, "empty", nil, 4))
}

func TestTrace(t *testing.T) {
	out := Trace([]float64{1, 2, 3, 2, 1}, "Total energy")
	assert.True(t, strings.Contains(out, "Total energy"))
	assert.Empty(t, Trace(nil, "x"))
}

func TestVideoFrameMatchesPalette(t *testing.T) {
	palette := render.HuePalette()
	path := filepath.Join(t.TempDir(), "tiny.avi")
	video, err := NewVideo(path, 2, 2, 0, 0, palette)
	require.NoError(t, err)
	require.NoError(t, video.AddFrame([]uint8{0, 255, 128, 64}))
	require.NoError(t, video.Close())
	assert.Equal(t, 1, video.Frames())
}
