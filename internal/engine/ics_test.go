package engine_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-week/internal/config"
	"github.com/tartampluch/birthday-week/internal/engine"
)

func TestEncodeICS_EventsForSelectedYear(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	data, err := engine.EncodeICS(store.Snapshot(), now, nil)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	// Events follow weekday order: Sunday (Alice) then Wednesday (Bob).
	summary, err := events[0].Props.Text(config.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Birthday: Alice Smith (34)", summary)

	category, err := events[0].Props.Text(config.PropCategories)
	require.NoError(t, err)
	assert.Equal(t, "Sunday", category)

	start := events[0].Props.Get(config.PropDTStart)
	require.NotNil(t, start)
	assert.Equal(t, "20240310", start.Value)

	uid, err := events[1].Props.Text(config.PropUID)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(uid, "-2024@"+config.ICalDomain), uid)
}

func TestEncodeICS_StableUIDs(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first, err := engine.EncodeICS(store.Snapshot(), now, nil)
	require.NoError(t, err)
	second, err := engine.EncodeICS(store.Snapshot(), now, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncodeICS_CustomFormatter(t *testing.T) {
	store := newTestStore(t)

	data, err := engine.EncodeICS(store.Snapshot(), time.Now(), func(name string, age int) string {
		return "Anniversaire " + name
	})
	require.NoError(t, err)

	assert.Contains(t, string(data), "SUMMARY:Anniversaire Alice Smith")
}

func TestEncodeICS_EmptyCalendarIsStub(t *testing.T) {
	store := newTestStore(t)
	store.SetText("{not valid")

	data, err := engine.EncodeICS(store.Snapshot(), time.Now(), nil)
	require.NoError(t, err)

	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestDefaultSummary(t *testing.T) {
	assert.Equal(t, "Birthday: Alice (30)", engine.DefaultSummary("Alice", 30))
	assert.Equal(t, "Birthday: Baby (birth)", engine.DefaultSummary("Baby", 0))
	assert.Equal(t, "Birthday: Future", engine.DefaultSummary("Future", -3))
}
