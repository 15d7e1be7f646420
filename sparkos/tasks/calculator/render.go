package calculator

import (
	"image/color"

	"sparkcalc/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colBackground = color.RGBA{R: 0x12, G: 0x14, B: 0x1A, A: 0xFF}
	colHeader     = color.RGBA{R: 0x1C, G: 0x22, B: 0x2E, A: 0xFF}
	colDisplay    = color.RGBA{R: 0xC8, G: 0xD8, B: 0xB0, A: 0xFF}
	colDisplayInk = color.RGBA{R: 0x20, G: 0x28, B: 0x18, A: 0xFF}
	colErrorInk   = color.RGBA{R: 0xB0, G: 0x20, B: 0x20, A: 0xFF}
	colText       = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colDim        = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colKey        = color.RGBA{R: 0x2B, G: 0x33, B: 0x44, A: 0xFF}
	colKeyOp      = color.RGBA{R: 0x3A, G: 0x4E, B: 0x6E, A: 0xFF}
	colKeyClear   = color.RGBA{R: 0x6E, G: 0x3A, B: 0x3A, A: 0xFF}
	colKeyPressed = color.RGBA{R: 0x9A, G: 0xC6, B: 0xFF, A: 0xFF}
)

var (
	fontSmall   tinyfont.Fonter = &proggy.TinySZ8pt7b
	fontKey     tinyfont.Fonter = &freemono.Bold9pt7b
	fontDisplay tinyfont.Fonter = &freemono.Bold12pt7b
	fontNarrow  tinyfont.Fonter = &freemono.Regular9pt7b
)

const (
	headerH  = 20
	displayH = 54
	padding  = 4
)

func (t *Task) render() {
	if t.fb == nil {
		return
	}
	w, h := t.fb.Width(), t.fb.Height()

	t.fillRect(0, 0, w, h, colBackground)

	t.fillRect(0, 0, w, headerH, colHeader)
	t.drawText(fontSmall, padding, 6, t.dateText, colText)
	tw := textWidth(fontSmall, t.timeText)
	t.drawText(fontSmall, w-padding-tw, 6, t.timeText, colText)
	if t.audioOn {
		t.drawText(fontSmall, w/2-6, 6, "))", colKeyPressed)
	}

	dy := headerH + padding
	t.fillRect(padding, dy, w-2*padding, displayH, colDisplay)
	t.drawText(fontSmall, padding*2, dy+4, truncateToWidth(fontSmall, t.expression(), w-4*padding), colDisplayInk)

	ink := colDisplayInk
	if t.acc.Err() != nil {
		ink = colErrorInk
	}
	f := fontDisplay
	if textWidth(f, t.display) > w-4*padding {
		f = fontNarrow
	}
	t.drawText(f, w-2*padding-textWidth(f, t.display), dy+displayH-int(f.GetYAdvance())-2, t.display, ink)

	tapeY := dy + displayH + padding
	tapeH := t.tape.height()
	t.tape.render(&regionDisplayer{fbDisplayer: fbDisplayer{fb: t.fb}, x0: padding, y0: int16(tapeY), w: int16(w - 2*padding), h: int16(tapeH)})

	ky := tapeY + tapeH + padding
	t.buttons = layoutButtons(padding, ky, w-2*padding, h-ky-padding)
	for _, b := range t.buttons {
		bg := colKey
		switch {
		case b.id == t.pressedID:
			bg = colKeyPressed
		case b.id == "ac" || b.id == "ce":
			bg = colKeyClear
		case buttonOps[b.id] != 0 || b.id == "equal":
			bg = colKeyOp
		}
		t.fillRect(b.x, b.y, b.w, b.h, bg)
		lw := textWidth(fontKey, b.label)
		t.drawText(fontKey, b.x+(b.w-lw)/2, b.y+(b.h-int(fontKey.GetYAdvance()))/2, b.label, colText)
	}

	_ = t.fb.Present()
}

func (t *Task) expression() string {
	s := ""
	for i, tok := range t.acc.Sequence() {
		if i > 0 {
			s += " "
		}
		s += tok.String()
	}
	return s
}

func (t *Task) fillRect(x, y, w, h int, c color.RGBA) {
	hal.FillRectRGB565(t.fb, x, y, w, h, hal.RGB565(c.R, c.G, c.B))
}

// drawText draws s with its top-left corner at (x, y).
func (t *Task) drawText(f tinyfont.Fonter, x, y int, s string, c color.RGBA) {
	d := &fbDisplayer{fb: t.fb}
	baseline := int16(f.GetYAdvance()) * 3 / 4
	tinyfont.WriteLine(d, f, int16(x), int16(y)+baseline, s, c)
}

func textWidth(f tinyfont.Fonter, s string) int {
	_, w := tinyfont.LineWidth(f, s)
	return int(w)
}

func truncateToWidth(f tinyfont.Fonter, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if textWidth(f, s) <= maxW {
		return s
	}
	// Keep the tail: the newest tokens matter most.
	r := []rune(s)
	for len(r) > 0 {
		r = r[1:]
		if textWidth(f, "…"+string(r)) <= maxW {
			return "…" + string(r)
		}
	}
	return ""
}

type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

// regionDisplayer exposes a clipped sub-rectangle of the framebuffer as a
// terminal display.
type regionDisplayer struct {
	fbDisplayer
	x0, y0 int16
	w, h   int16
}

func (d *regionDisplayer) Size() (x, y int16) { return d.w, d.h }

func (d *regionDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		return
	}
	d.fbDisplayer.SetPixel(d.x0+x, d.y0+y, c)
}

func (d *regionDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x1 := min(x+width, d.w)
	y1 := min(y+height, d.h)
	x = max(x, 0)
	y = max(y, 0)
	if x >= x1 || y >= y1 {
		return nil
	}
	hal.FillRectRGB565(d.fb, int(d.x0+x), int(d.y0+y), int(x1-x), int(y1-y), hal.RGB565(c.R, c.G, c.B))
	return nil
}

// SetScroll is a no-op; the tape never writes past its last row.
func (d *regionDisplayer) SetScroll(line int16) {}

func (d *regionDisplayer) SetRotation(rotation drivers.Rotation) error { return nil }
