package render

import "image/color"

// MaskRGBA converts a boolean mask into RGBA pixels in buf: set entries get
// on, the rest are transparent.
func MaskRGBA(buf []byte, mask []bool, on color.RGBA) {
	for i, set := range mask {
		base := i * 4
		if set {
			buf[base+0] = on.R
			buf[base+1] = on.G
			buf[base+2] = on.B
			buf[base+3] = on.A
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
