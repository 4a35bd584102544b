// Package record exports headless runs: an MJPEG video of the rendered
// frames, a chart of total energy per step, a histogram of the final cell
// energies and a terminal trace.
package record

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"

	"entropy/internal/render"

	"github.com/icza/mjpeg"
)

// Video writes palette-indexed frames into an AVI (MJPEG) file.
type Video struct {
	w, h, scale int
	palette     []color.RGBA

	writer mjpeg.AviWriter
	buf    bytes.Buffer
	opts   jpeg.Options
	frames int
}

// NewVideo creates path and prepares it for frames of a w x h grid magnified
// by scale.
func NewVideo(path string, w, h, scale, fps int, palette []color.RGBA) (*Video, error) {
	if scale < 1 {
		scale = 1
	}
	if fps < 1 {
		fps = 1
	}
	writer, err := mjpeg.New(path, int32(w*scale), int32(h*scale), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("record: create video %s: %w", path, err)
	}
	return &Video{
		w:       w,
		h:       h,
		scale:   scale,
		palette: palette,
		writer:  writer,
		opts:    jpeg.Options{Quality: 85},
	}, nil
}

// AddFrame renders cells and appends them as one frame.
func (v *Video) AddFrame(cells []uint8) error {
	img := render.Image(cells, v.w, v.h, v.scale, v.palette)
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &v.opts); err != nil {
		return fmt.Errorf("record: encode frame %d: %w", v.frames, err)
	}
	if err := v.writer.AddFrame(v.buf.Bytes()); err != nil {
		return fmt.Errorf("record: add frame %d: %w", v.frames, err)
	}
	v.frames++
	return nil
}

// Frames returns how many frames were written.
func (v *Video) Frames() int { return v.frames }

// Close finalizes the AVI index.
func (v *Video) Close() error {
	if err := v.writer.Close(); err != nil {
		return fmt.Errorf("record: close video: %w", err)
	}
	return nil
}
