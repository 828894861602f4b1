package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/birthday-week/internal/config"
)

// ErrUnrecognizedDate is returned for birthdays that match neither supported layout.
var ErrUnrecognizedDate = errors.New(config.ErrDateUnrecognized)

// DateFormat tags which layout a birthday string was written in.
type DateFormat int

const (
	FormatUnknown      DateFormat = iota
	FormatMonthDayYear            // MM/DD/YYYY
	FormatYearMonthDay            // YYYY-MM-DD
)

// String implements fmt.Stringer.
func (f DateFormat) String() string {
	switch f {
	case FormatMonthDayYear:
		return "MM/DD/YYYY"
	case FormatYearMonthDay:
		return "YYYY-MM-DD"
	default:
		return "unknown"
	}
}

// BirthDate is a parsed birthday together with the layout it came from.
type BirthDate struct {
	Format DateFormat
	Year   int
	Month  time.Month
	Day    int
}

// ParseBirthDate detects the layout of value and extracts its components.
// A slash selects MM/DD/YYYY; otherwise a dash selects YYYY-MM-DD.
func ParseBirthDate(value string) (BirthDate, error) {
	var (
		format DateFormat
		sep    string
	)
	switch {
	case strings.Contains(value, config.SepMonthDayYear):
		format, sep = FormatMonthDayYear, config.SepMonthDayYear
	case strings.Contains(value, config.SepYearMonthDay):
		format, sep = FormatYearMonthDay, config.SepYearMonthDay
	default:
		return BirthDate{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
	}

	parts := strings.Split(value, sep)
	if len(parts) != config.DateComponents {
		return BirthDate{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return BirthDate{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
		}
		nums[i] = n
	}

	d := BirthDate{Format: format}
	if format == FormatMonthDayYear {
		d.Month, d.Day, d.Year = time.Month(nums[0]), nums[1], expandTwoDigitYear(parts[2], nums[2])
	} else {
		d.Year, d.Month, d.Day = nums[0], time.Month(nums[1]), nums[2]
	}

	if d.Month < config.MinMonth || d.Month > config.MaxMonth || d.Day < config.MinDay || d.Day > config.MaxDay {
		return BirthDate{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
	}
	return d, nil
}

// expandTwoDigitYear maps "90" to 1990 and "07" to 2007, the way generic
// date parsing reads short years in the slash layout.
func expandTwoDigitYear(raw string, year int) int {
	if len(strings.TrimSpace(raw)) > 2 || year < 0 || year > config.TwoDigitYearMax {
		return year
	}
	if year < config.TwoDigitYearPivot {
		return config.TwoDigitCenturyLow + year
	}
	return config.TwoDigitCenturyHigh + year
}

// In places the birthday in year. Feb 29 rolls over to Mar 1 in non-leap years.
func (d BirthDate) In(year int, loc *time.Location) time.Time {
	return time.Date(year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AgeIn is the plain year difference; it ignores whether the birthday has
// already passed within year.
func (d BirthDate) AgeIn(year int) int {
	return year - d.Year
}
