package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
)

func rects(n int) []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, n)
	for i := range out {
		out[i] = canvas.NewRectangle(color.Black)
	}
	return out
}

func TestSquareGridLayout(t *testing.T) {
	size := fyne.NewSize(300, 300)

	t.Run("SideThree", func(t *testing.T) {
		objs := rects(5)
		(&squareGridLayout{side: 3}).Layout(objs, size)

		for _, o := range objs {
			assert.Equal(t, fyne.NewSize(100, 100), o.Size())
		}
		assert.Equal(t, fyne.NewPos(0, 0), objs[0].Position())
		assert.Equal(t, fyne.NewPos(200, 0), objs[2].Position())
		assert.Equal(t, fyne.NewPos(100, 100), objs[4].Position())
	})

	t.Run("SingleTileFillsArea", func(t *testing.T) {
		objs := rects(1)
		(&squareGridLayout{side: 1}).Layout(objs, size)
		assert.Equal(t, size, objs[0].Size())
	})

	t.Run("OverflowAddsRows", func(t *testing.T) {
		// 30 tiles at side 5 need 6 rows.
		objs := rects(30)
		(&squareGridLayout{side: 5}).Layout(objs, size)

		assert.Equal(t, fyne.NewSize(60, 50), objs[0].Size())
		last := objs[29]
		assert.Equal(t, fyne.NewPos(240, 250), last.Position())
	})

	t.Run("ZeroSideTreatedAsOne", func(t *testing.T) {
		objs := rects(1)
		(&squareGridLayout{}).Layout(objs, size)
		assert.Equal(t, size, objs[0].Size())
	})
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x54, G: 0x5D, B: 0x79, A: 0xff}, parseHexColor("#545D79"))
	assert.Equal(t, color.NRGBA{R: 0xe6, G: 0x4a, B: 0x33, A: 0xff}, parseHexColor("#e64a33"))
	assert.Equal(t, tileFallback, parseHexColor("red"))
	assert.Equal(t, tileFallback, parseHexColor("#GGGGGG"))
}
