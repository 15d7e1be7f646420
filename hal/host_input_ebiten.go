//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyNumpadEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeyDelete, KeyDelete},
	{ebiten.KeyHome, KeyHome},
	{ebiten.KeyEnd, KeyEnd},
}

func (k *hostKeyboard) poll() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) ||
		ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight)

	if ctrl {
		emitCtrl := func(key ebiten.Key, r rune) {
			if inpututil.IsKeyJustPressed(key) {
				k.inject(KeyEvent{Press: true, Rune: r})
			}
		}
		emitCtrl(ebiten.KeyC, 0x03)
		emitCtrl(ebiten.KeyV, 0x16)
	} else {
		for _, r := range ebiten.AppendInputChars(nil) {
			k.inject(KeyEvent{Press: true, Rune: r})
		}
	}

	for _, m := range keyMap {
		if inpututil.IsKeyJustPressed(m.key) {
			k.inject(KeyEvent{Code: m.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(m.key) {
			k.inject(KeyEvent{Code: m.code, Press: false})
		}
	}
}

// poll reports left-button transitions in framebuffer coordinates; Layout
// keeps the logical screen equal to the framebuffer size.
func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.inject(PointerEvent{X: x, Y: y, Button: 1, Press: true})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.inject(PointerEvent{X: x, Y: y, Button: 1, Press: false})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		p.inject(PointerEvent{X: tx, Y: ty, Button: 1, Press: true})
	}
}
