package ui

import (
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/birthday-week/internal/config"
	"github.com/tartampluch/birthday-week/internal/engine"
)

var (
	tileTextColor   = color.White
	tileBorderColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66}
	tileFallback    = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// squareGridLayout splits the available area into side × side cells, one tile per
// cell, filled row by row. When there are more tiles than cells, extra rows are
// added and every row gets shorter so all tiles stay inside the area.
type squareGridLayout struct {
	side int
}

func (l *squareGridLayout) rows(count int) int {
	side := max(l.side, 1)
	return max(side, (count+side-1)/side)
}

func (l *squareGridLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	side := max(l.side, 1)
	cell := fyne.NewSize(size.Width/float32(side), size.Height/float32(l.rows(len(objects))))

	for i, o := range objects {
		row, col := i/side, i%side
		o.Move(fyne.NewPos(float32(col)*cell.Width, float32(row)*cell.Height))
		o.Resize(cell)
	}
}

func (l *squareGridLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(config.DayColumnMinWidth, config.DayContentMinHeight)
}

// personTile is one colored square showing initials. Hovering reports the full name.
type personTile struct {
	widget.BaseWidget

	tile    engine.Tile
	onHover func(string)
	onLeave func()
}

func newPersonTile(t engine.Tile, onHover func(string), onLeave func()) *personTile {
	p := &personTile{tile: t, onHover: onHover, onLeave: onLeave}
	p.ExtendBaseWidget(p)
	return p
}

func (p *personTile) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(parseHexColor(p.tile.Color))
	bg.StrokeColor = tileBorderColor
	bg.StrokeWidth = 1

	text := canvas.NewText(p.tile.Initials, tileTextColor)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = config.TileTextSize

	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewCenter(text)))
}

func (p *personTile) MouseIn(*desktop.MouseEvent) {
	if p.onHover != nil {
		p.onHover(p.tile.Name)
	}
}

func (p *personTile) MouseMoved(*desktop.MouseEvent) {}

func (p *personTile) MouseOut() {
	if p.onLeave != nil {
		p.onLeave()
	}
}

// dayColumnView renders one weekday: a header and either the tile grid or an
// empty-day message. Hovering the column reports every name of the day.
type dayColumnView struct {
	widget.BaseWidget

	header  *widget.Label
	content *fyne.Container
	empty   *widget.Label
	tooltip string

	onHover func(string)
	onLeave func()
}

func newDayColumnView(onHover func(string), onLeave func()) *dayColumnView {
	c := &dayColumnView{
		header:  widget.NewLabel(""),
		empty:   widget.NewLabel(""),
		onHover: onHover,
		onLeave: onLeave,
	}
	c.header.Alignment = fyne.TextAlignCenter
	c.header.TextStyle = fyne.TextStyle{Bold: true}
	c.empty.TextStyle = fyne.TextStyle{Italic: true}
	c.content = container.New(layout.NewCenterLayout(), c.empty)
	c.ExtendBaseWidget(c)
	return c
}

// SetColumn swaps the column content for a new layout of the day.
func (c *dayColumnView) SetColumn(col engine.DayColumn, header, noBirthdays string) {
	c.header.SetText(header)
	c.tooltip = col.Tooltip

	if col.Empty {
		c.empty.SetText(noBirthdays)
		c.content.Layout = layout.NewCenterLayout()
		c.content.Objects = []fyne.CanvasObject{c.empty}
	} else {
		tiles := make([]fyne.CanvasObject, len(col.Tiles))
		for i, t := range col.Tiles {
			tiles[i] = newPersonTile(t, c.onHover, c.onLeave)
		}
		c.content.Layout = &squareGridLayout{side: col.Side}
		c.content.Objects = tiles
	}
	c.content.Refresh()
}

func (c *dayColumnView) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	body := container.NewBorder(c.header, nil, nil, nil, c.content)
	return widget.NewSimpleRenderer(container.NewStack(bg, body))
}

func (c *dayColumnView) MouseIn(*desktop.MouseEvent) {
	if c.tooltip == "" {
		if c.onLeave != nil {
			c.onLeave()
		}
		return
	}
	if c.onHover != nil {
		c.onHover(c.tooltip)
	}
}

func (c *dayColumnView) MouseMoved(*desktop.MouseEvent) {}

func (c *dayColumnView) MouseOut() {
	if c.onLeave != nil {
		c.onLeave()
	}
}

// parseHexColor reads a "#RRGGBB" palette entry.
func parseHexColor(s string) color.Color {
	c := color.NRGBA{A: 0xff}
	if len(s) != 7 {
		slog.Warn(config.MsgBadHexColor, config.LogKeyComponent, config.CompUI, config.LogKeyValue, s)
		return tileFallback
	}
	if _, err := fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B); err != nil {
		slog.Warn(config.MsgBadHexColor,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, s,
			config.LogKeyError, err)
		return tileFallback
	}
	return c
}
