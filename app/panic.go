package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"unicode/utf8"

	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	panicFontHeight = 10
	panicFontOffset = 7
)

// installPanicHandler logs a task panic with its stack and paints it on
// the framebuffer. done receives the panic once the screen is drawn.
func installPanicHandler(h hal.HAL, done chan<- kernel.PanicInfo) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		lines := panicLines(info)
		if l := h.Logger(); l != nil {
			l.Log(slog.LevelError, "SparkCalc panic: "+info.String())
			for _, line := range lines[3:] {
				l.Log(slog.LevelError, line)
			}
		}
		if disp := h.Display(); disp != nil {
			if fb := disp.Framebuffer(); fb != nil {
				paintPanic(fb, lines)
			}
		}
		select {
		case done <- info:
		default:
		}
	})
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		"SparkCalc panic:",
		fmt.Sprintf("task: %d", info.TaskID),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	}
	return lines
}

func paintPanic(fb hal.Framebuffer, lines []string) {
	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	font := &proggy.TinySZ8pt7b
	_, outbox := tinyfont.LineWidth(font, "0")
	cols := max(fb.Width()/max(int(outbox), 1), 1)
	d := panicDisplay{fb: fb}
	fg := color.RGBA{A: 0xFF}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+panicFontHeight > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, int16(y+panicFontOffset), chunk, fg)
			y += panicFontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d panicDisplay) Display() error { return nil }

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
