package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-week/internal/config"
	"github.com/tartampluch/birthday-week/internal/engine"
)

func TestGridSide_Thresholds(t *testing.T) {
	tests := []struct {
		count int
		side  int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
		{16, 4},
		{17, 5},
		{25, 5},
		{100, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.side, engine.GridSide(tt.count), "count %d", tt.count)
	}
}

func TestTileColor_Cycles(t *testing.T) {
	for i := 0; i < 12; i++ {
		assert.Equal(t, config.TilePalette[i%5], engine.TileColor(i))
	}
	assert.Equal(t, "#545D79", engine.TileColor(0))
	assert.Equal(t, "#545D79", engine.TileColor(5))
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Alice Smith":        "AS",
		"jon snow":           "js",
		"Missandei":          "M",
		"  Daario   Naharis": "DN",
		"Émile Zola":         "ÉZ",
		"Brienne of Tarth":   "BoT",
		"":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, engine.Initials(in), "initials of %q", in)
	}
}

func TestLayoutColumns(t *testing.T) {
	records := []engine.BirthdayRecord{
		{Name: "Alice Smith", Birthday: "1990-03-10"},
		{Name: "Bob Stone", Birthday: "03/10/1980"},
	}
	buckets := engine.BuildCalendar(records, 2024, time.UTC)

	columns := engine.LayoutColumns(buckets)

	require.Len(t, columns, 7)
	assert.Equal(t, "Sunday", columns[0].Weekday)
	assert.Equal(t, "Saturday", columns[6].Weekday)

	sunday := columns[0]
	assert.False(t, sunday.Empty)
	assert.Equal(t, 2, sunday.Side)
	assert.Equal(t, "Alice Smith, Bob Stone", sunday.Tooltip)
	require.Len(t, sunday.Tiles, 2)
	assert.Equal(t, engine.Tile{Index: 0, Name: "Alice Smith", Initials: "AS", Color: "#545D79"}, sunday.Tiles[0])
	assert.Equal(t, engine.Tile{Index: 1, Name: "Bob Stone", Initials: "BS", Color: "#8AB721"}, sunday.Tiles[1])

	for _, col := range columns[1:] {
		assert.True(t, col.Empty, col.Weekday)
		assert.Empty(t, col.Tooltip)
		assert.Empty(t, col.Tiles)
		assert.Equal(t, 1, col.Side)
	}
}
