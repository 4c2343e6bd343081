package hal

import (
	"image"
	"image/color"
)

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGB565 packs an 8-bit colour into the framebuffer encoding.
func RGB565(c color.RGBA) uint16 { return rgb565(c.R, c.G, c.B) }

// BlitImage copies img into fb with its top-left corner at (x, y). Pixels
// falling outside the framebuffer are clipped. Alpha is ignored.
func BlitImage(fb Framebuffer, img image.Image, x, y int) {
	if fb == nil || img == nil || fb.Format() != PixelFormatRGB565 {
		return
	}
	buf := fb.Buffer()
	if buf == nil {
		return
	}
	w, h, stride := fb.Width(), fb.Height(), fb.StrideBytes()

	b := img.Bounds()
	rgba, _ := img.(*image.RGBA)
	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		dy := y + sy - b.Min.Y
		if dy < 0 || dy >= h {
			continue
		}
		row := dy * stride
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			dx := x + sx - b.Min.X
			if dx < 0 || dx >= w {
				continue
			}
			var c color.RGBA
			if rgba != nil {
				c = rgba.RGBAAt(sx, sy)
			} else {
				c = color.RGBAModel.Convert(img.At(sx, sy)).(color.RGBA)
			}
			pixel := rgb565(c.R, c.G, c.B)
			off := row + dx*2
			if off+1 >= len(buf) {
				continue
			}
			buf[off] = byte(pixel)
			buf[off+1] = byte(pixel >> 8)
		}
	}
}

// Snapshot converts the framebuffer into an RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return nil
	}
	w, h, stride := fb.Width(), fb.Height(), fb.StrideBytes()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	var src []byte
	if hf, ok := fb.(*hostFramebuffer); ok {
		src = make([]byte, len(hf.buf))
		hf.snapshotRGB565(src)
	} else {
		src = fb.Buffer()
	}
	convertRGB565(img.Pix, src, w, h, stride)
	return img
}

func convertRGB565(dst, src []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*stride + x*2
			if i+1 >= len(src) {
				return
			}
			r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
			j := (y*w + x) * 4
			dst[j+0] = r
			dst[j+1] = g
			dst[j+2] = b
			dst[j+3] = 0xFF
		}
	}
}
