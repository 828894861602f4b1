package engine

import (
	"log/slog"
	"sort"
	"time"

	"github.com/tartampluch/birthday-week/internal/config"
)

// BuildCalendar places every record into the bucket of the weekday its birthday
// falls on in year, then sorts each bucket by age.
// Records with an unrecognized birthday are skipped; the rest of the build goes on.
func BuildCalendar(records []BirthdayRecord, year int, loc *time.Location) WeekdayBuckets {
	if loc == nil {
		loc = time.Local
	}
	buckets := NewWeekdayBuckets()
	skipped := 0

	for _, r := range records {
		bd, err := ParseBirthDate(r.Birthday)
		if err != nil {
			skipped++
			slog.Debug(config.MsgSkippedRecord,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, r.Name,
				config.LogKeyValue, r.Birthday,
			)
			continue
		}

		occurrence := bd.In(year, loc)
		day := occurrence.Weekday().String()
		buckets[day] = append(buckets[day], CalendarEntry{
			Name:             r.Name,
			Age:              bd.AgeIn(year),
			OriginalBirthday: r.Birthday,
			Occurrence:       occurrence,
		})
	}

	for _, entries := range buckets {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Age < entries[j].Age
		})
	}

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyYear, year,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyRecords, len(records)),
			slog.Int(config.LogKeyPlaced, len(records)-skipped),
			slog.Int(config.LogKeySkipped, skipped),
		),
	)
	return buckets
}
