package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/birthday-week/internal/config"
)

// SummaryFormatter renders an event title. The UI injects a localized one.
type SummaryFormatter func(name string, age int) string

// DefaultSummary is the English fallback used when no formatter is injected.
// A negative age (born after the selected year) omits the age.
func DefaultSummary(name string, age int) string {
	switch {
	case age < 0:
		return fmt.Sprintf(config.FallbackSummary, name)
	case age == 0:
		return fmt.Sprintf(config.FallbackSummaryBirth, name)
	default:
		return fmt.Sprintf(config.FallbackSummaryAge, name, age)
	}
}

// EncodeICS exports the snapshot's year as an iCalendar feed: one all-day event
// per calendar entry, tagged with its weekday.
func EncodeICS(snap Snapshot, now time.Time, format SummaryFormatter) ([]byte, error) {
	if format == nil {
		format = DefaultSummary
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, d := range Weekdays {
		day := d.String()
		for _, e := range snap.Buckets[day] {
			event := ical.NewEvent()
			event.Props.SetText(config.PropUID, entryUID(e, snap.Year))
			event.Props.SetText(config.PropSummary, format(e.Name, e.Age))
			event.Props.SetText(config.PropCategories, day)
			event.Props.Set(dtStampProp)

			dtStartProp := ical.NewProp(config.PropDTStart)
			dtStartProp.SetDate(e.Occurrence)
			event.Props.Set(dtStartProp)

			cal.Children = append(cal.Children, event.Component)
		}
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgFeedGenerated,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyYear, snap.Year,
		config.LogKeyEvents, len(cal.Children),
	)
	return buf.Bytes(), nil
}

// entryUID is deterministic so calendar clients keep events stable across edits.
func entryUID(e CalendarEntry, year int) string {
	input := fmt.Sprintf(config.FormatHashInput, e.Name, e.OriginalBirthday, config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), year, config.ICalDomain)
}
