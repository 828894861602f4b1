package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/birthday-week/internal/config"
)

// ErrNoVCards reports a stream in which not a single card could be decoded.
var ErrNoVCards = errors.New(config.ErrNoVCards)

// DecodeVCards converts a vCard stream into birthday records.
// Cards without a usable BDAY, or whose BDAY has no year, are skipped.
// A stream without any decodable card returns ErrNoVCards.
func DecodeVCards(ctx context.Context, r io.Reader) ([]BirthdayRecord, error) {
	decoder := vcard.NewDecoder(r)
	records := []BirthdayRecord{}
	cards := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompImporter,
				config.LogKeyError, err)
			continue
		}
		cards++

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, yearKnown, err := parseVCardDate(bday.Value)
		if err != nil || !yearKnown {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompImporter,
				config.LogKeyValue, bday.Value)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Name(); n != nil {
			if full := joinNonEmpty(n.GivenName, n.FamilyName); full != "" {
				name = full
			}
		}

		records = append(records, BirthdayRecord{
			Name:     name,
			Birthday: birthDate.Format(config.DateFormatFullDash),
		})
	}

	if cards == 0 {
		return nil, ErrNoVCards
	}
	return records, nil
}

// parseVCardDate handles the vCard BDAY layouts. The boolean reports whether
// the value carried a year.
func parseVCardDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
