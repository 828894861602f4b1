package engine_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-week/internal/engine"
)

func TestParseBirthDate_Formats(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   engine.BirthDate
		format string
	}{
		{
			name:   "Slash layout is month first",
			input:  "03/10/1990",
			want:   engine.BirthDate{Format: engine.FormatMonthDayYear, Year: 1990, Month: time.March, Day: 10},
			format: "MM/DD/YYYY",
		},
		{
			name:   "Dash layout is year first",
			input:  "1990-03-10",
			want:   engine.BirthDate{Format: engine.FormatYearMonthDay, Year: 1990, Month: time.March, Day: 10},
			format: "YYYY-MM-DD",
		},
		{
			name:  "Unpadded components",
			input: "3/7/2001",
			want:  engine.BirthDate{Format: engine.FormatMonthDayYear, Year: 2001, Month: time.March, Day: 7},
		},
		{
			name:  "Surrounding spaces are tolerated",
			input: " 2001 - 12 - 31 ",
			want:  engine.BirthDate{Format: engine.FormatYearMonthDay, Year: 2001, Month: time.December, Day: 31},
		},
		{
			name:  "Two digit year before pivot",
			input: "01/02/07",
			want:  engine.BirthDate{Format: engine.FormatMonthDayYear, Year: 2007, Month: time.January, Day: 2},
		},
		{
			name:  "Two digit year after pivot",
			input: "01/02/90",
			want:  engine.BirthDate{Format: engine.FormatMonthDayYear, Year: 1990, Month: time.January, Day: 2},
		},
		{
			name:  "Leap day",
			input: "2000-02-29",
			want:  engine.BirthDate{Format: engine.FormatYearMonthDay, Year: 2000, Month: time.February, Day: 29},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ParseBirthDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.format != "" {
				assert.Equal(t, tt.format, got.Format.String())
			}
		})
	}
}

func TestParseBirthDate_Unrecognized(t *testing.T) {
	inputs := []string{
		"",
		"March 10 1990",
		"19900310",
		"1990-03",
		"03/10",
		"1990-03-10-01",
		"aa/bb/cccc",
		"1990-13-01",
		"1990-00-10",
		"02/32/1990",
		"02/00/1990",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := engine.ParseBirthDate(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, engine.ErrUnrecognizedDate))
		})
	}
}

func TestBirthDate_InAndAge(t *testing.T) {
	bd, err := engine.ParseBirthDate("2000-02-29")
	require.NoError(t, err)

	// 2024 keeps Feb 29.
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), bd.In(2024, time.UTC))
	// 2025 has no Feb 29, the date rolls over to Mar 1.
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), bd.In(2025, time.UTC))

	// Plain year difference, no matter the day of year.
	assert.Equal(t, 25, bd.AgeIn(2025))
	assert.Equal(t, -1, bd.AgeIn(1999))
}
