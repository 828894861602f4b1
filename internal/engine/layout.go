package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/tartampluch/birthday-week/internal/config"
)

// Tile is one colored square in a weekday column.
type Tile struct {
	Index    int
	Name     string
	Initials string
	Color    string
}

// DayColumn is the render model of one weekday.
type DayColumn struct {
	Weekday string
	Empty   bool

	// Tooltip lists every name of the bucket, comma separated.
	Tooltip string

	// Side is the number of tiles per row and per column of the square grid.
	Side  int
	Tiles []Tile
}

// LayoutColumns turns the buckets into seven columns, Sunday first.
func LayoutColumns(b WeekdayBuckets) []DayColumn {
	columns := make([]DayColumn, 0, len(Weekdays))
	for _, d := range Weekdays {
		entries := b[d.String()]
		col := DayColumn{
			Weekday: d.String(),
			Empty:   len(entries) == 0,
			Side:    GridSide(len(entries)),
			Tiles:   make([]Tile, len(entries)),
		}

		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
			col.Tiles[i] = Tile{
				Index:    i,
				Name:     e.Name,
				Initials: Initials(e.Name),
				Color:    TileColor(i),
			}
		}
		col.Tooltip = strings.Join(names, config.TooltipSeparator)

		columns = append(columns, col)
	}
	return columns
}

// GridSide returns how many tiles share a row for a bucket of count entries.
func GridSide(count int) int {
	for _, step := range config.GridThresholds {
		if count <= step.MaxCount {
			return step.Side
		}
	}
	return config.GridSideMax
}

// TileColor cycles through the palette.
func TileColor(index int) string {
	n := len(config.TilePalette)
	return config.TilePalette[((index%n)+n)%n]
}

// Initials concatenates the first letter of each whitespace separated word.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}
