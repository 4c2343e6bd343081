package app

// Framebuffer drawing for the modal prompt.

import (
	"image/color"

	"galaxyplot/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	colorBackdrop = color.RGBA{R: 0xD8, G: 0xD8, B: 0xD8, A: 0xFF}
	colorDialog   = color.RGBA{R: 0xF4, G: 0xF4, B: 0xF4, A: 0xFF}
	colorBorder   = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	colorTitleBG  = color.RGBA{R: 0x2B, G: 0x57, B: 0x97, A: 0xFF}
	colorTitleFG  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorText     = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
	colorFieldBG  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorHint     = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
)

const (
	dialogWidth  = 460
	dialogHeight = 150
	dialogPad    = 12
)

type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := hal.RGB565(c)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w, h := d.fb.Width(), d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := hal.RGB565(c)
	lo, hi := byte(pixel), byte(pixel>>8)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func (d *fbDisplay) strokeRectangle(x, y, width, height int16, c color.RGBA) {
	d.FillRectangle(x, y, width, 1, c)
	d.FillRectangle(x, y+height-1, width, 1, c)
	d.FillRectangle(x, y, 1, height, c)
	d.FillRectangle(x+width-1, y, 1, height, c)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// textFont is a monospace font, so one advance fits every rune.
type textFont struct {
	face   tinyfont.Fonter
	width  int16
	height int16
	ascent int16
}

func newTextFont(face tinyfont.Fonter, height, ascent int16) textFont {
	_, outboxWidth := tinyfont.LineWidth(face, "0")
	return textFont{face: face, width: int16(outboxWidth), height: height, ascent: ascent}
}

var (
	bodyFont  = newTextFont(&freemono.Regular9pt7b, 18, 13)
	titleFont = newTextFont(&freemono.Bold9pt7b, 18, 13)
)

// drawText writes s with its top-left corner at (x, y), clipped to cols runes.
func (f textFont) drawText(d *fbDisplay, x, y int16, s string, c color.RGBA, cols int) {
	if cols <= 0 {
		return
	}
	tinyfont.WriteLine(d, f.face, x, y+f.ascent, fitRunes(s, cols), c)
}

func (f textFont) cols(px int16) int {
	if f.width <= 0 {
		return 0
	}
	return int(px / f.width)
}

func fitRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}

// drawPrompt renders p as a dialog centred on the framebuffer.
func drawPrompt(d *fbDisplay, p *prompt) {
	sw, sh := d.Size()
	if sw <= 0 || sh <= 0 {
		return
	}
	d.FillRectangle(0, 0, sw, sh, colorBackdrop)

	w := int16(dialogWidth)
	if w > sw-2 {
		w = sw - 2
	}
	h := int16(dialogHeight)
	if h > sh-2 {
		h = sh - 2
	}
	x := (sw - w) / 2
	y := (sh - h) / 2

	d.FillRectangle(x, y, w, h, colorDialog)
	d.strokeRectangle(x, y, w, h, colorBorder)

	barH := titleFont.height + 8
	d.FillRectangle(x+1, y+1, w-2, barH, colorTitleBG)
	innerW := w - 2*dialogPad
	titleFont.drawText(d, x+dialogPad, y+5, p.title, colorTitleFG, titleFont.cols(innerW))

	ty := y + barH + dialogPad
	bodyFont.drawText(d, x+dialogPad, ty, p.text, colorText, bodyFont.cols(innerW))

	fy := ty + bodyFont.height + 8
	fh := bodyFont.height + 8
	d.FillRectangle(x+dialogPad, fy, innerW, fh, colorFieldBG)
	d.strokeRectangle(x+dialogPad, fy, innerW, fh, colorBorder)

	fieldCols := bodyFont.cols(innerW - 8)
	visible, cursorCol := scrollInput(p.input, p.cursor, fieldCols)
	bodyFont.drawText(d, x+dialogPad+4, fy+4, visible, colorText, fieldCols)
	cx := x + dialogPad + 4 + int16(cursorCol)*bodyFont.width
	d.FillRectangle(cx, fy+3, 1, fh-6, colorText)

	hy := fy + fh + 8
	bodyFont.drawText(d, x+dialogPad, hy, "[Enter] OK   [Esc] Cancel", colorHint, bodyFont.cols(innerW))
}

// scrollInput returns the slice of input that fits in cols runes while
// keeping the cursor visible, and the cursor column inside it.
func scrollInput(input []rune, cursor, cols int) (string, int) {
	if cols <= 1 {
		return "", 0
	}
	start := 0
	if cursor >= cols {
		start = cursor - cols + 1
	}
	end := start + cols
	if end > len(input) {
		end = len(input)
	}
	return string(input[start:end]), cursor - start
}
