package render

import (
	"image"
	"image/color"
)

// Image renders palette-indexed cells of a w x h grid into a new RGBA image,
// magnifying each cell to a scale x scale block.
func Image(cells []uint8, w, h, scale int, palette []color.RGBA) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	if len(cells) != w*h {
		return img
	}
	if scale == 1 {
		fillPaletteRGBA(img.Pix, cells, palette)
		return img
	}

	row := make([]byte, 4*w)
	for y := 0; y < h; y++ {
		fillPaletteRGBA(row, cells[y*w:(y+1)*w], palette)
		for sy := 0; sy < scale; sy++ {
			dst := img.Pix[(y*scale+sy)*img.Stride:]
			for x := 0; x < w; x++ {
				px := row[x*4 : x*4+4]
				for sx := 0; sx < scale; sx++ {
					copy(dst[(x*scale+sx)*4:], px)
				}
			}
		}
	}
	return img
}
