package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tartampluch/birthday-week/internal/config"
)

// Snapshot is a consistent view of the store: inputs plus everything derived from them.
type Snapshot struct {
	Text    string
	Year    int
	Records []BirthdayRecord
	Buckets WeekdayBuckets
	Columns []DayColumn
}

// buildKey identifies a build; equal keys always produce equal buckets.
type buildKey struct {
	text string
	year int
}

// Store holds the editable inputs (raw JSON text and selected year) and the
// calendar derived from them. Both the desktop window and the local web page
// edit the same store, so it is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	loc   *time.Location
	key   buildKey
	built bool
	snap  Snapshot

	listenersMu sync.Mutex
	listeners   []func(Snapshot)
}

// NewStore seeds the editor with records pretty-printed as JSON and selects the
// clock's current year.
func NewStore(seed []BirthdayRecord, clock Clock, loc *time.Location) *Store {
	if clock == nil {
		clock = RealClock{}
	}
	if loc == nil {
		loc = time.Local
	}

	text, err := EncodeRecords(seed)
	if err != nil {
		slog.Error(config.ErrRecordsEncode,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyError, err,
		)
	}

	s := &Store{loc: loc}
	s.rebuild(func(k *buildKey) { *k = buildKey{text: text, year: clock.Now().Year()} })
	return s
}

// Text returns the current raw editor content.
func (s *Store) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key.text
}

// Year returns the selected year.
func (s *Store) Year() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key.year
}

// Snapshot returns the latest build.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// SetText replaces the raw editor content and rebuilds the calendar.
func (s *Store) SetText(text string) {
	s.update(func(k *buildKey) { k.text = text })
}

// SetYear selects another year and rebuilds the calendar.
func (s *Store) SetYear(year int) {
	s.update(func(k *buildKey) { k.year = year })
}

// Set replaces both inputs at once, rebuilding at most one time.
func (s *Store) Set(text string, year int) {
	s.update(func(k *buildKey) { *k = buildKey{text: text, year: year} })
}

// Subscribe registers fn to be called with every new snapshot.
// Listeners run outside the store lock, on the goroutine that made the change.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) update(mutate func(*buildKey)) {
	snap, changed := s.rebuild(mutate)
	if !changed {
		return
	}

	s.listenersMu.Lock()
	listeners := make([]func(Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// rebuild applies mutate to the current inputs and recomputes records and
// buckets from scratch, unless the inputs match the last build.
func (s *Store) rebuild(mutate func(*buildKey)) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.key
	mutate(&key)

	if s.built && s.key == key {
		slog.Debug(config.MsgCalendarReused,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyYear, key.year,
		)
		return s.snap, false
	}

	start := time.Now()
	records := ParseRecords(key.text)
	buckets := BuildCalendar(records, key.year, s.loc)

	s.key = key
	s.built = true
	s.snap = Snapshot{
		Text:    key.text,
		Year:    key.year,
		Records: records,
		Buckets: buckets,
		Columns: LayoutColumns(buckets),
	}

	placed := buckets.Total()
	slog.Info(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyYear, key.year,
		config.LogKeyRecords, len(records),
		config.LogKeyPlaced, placed,
		config.LogKeySkipped, len(records)-placed,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return s.snap, true
}

// YearOptions lists the years offered by the selector, oldest first.
func YearOptions(clock Clock) []int {
	if clock == nil {
		clock = RealClock{}
	}
	current := clock.Now().Year()
	if current < config.MinSelectableYear {
		return []int{config.MinSelectableYear}
	}
	years := make([]int, 0, current-config.MinSelectableYear+1)
	for y := config.MinSelectableYear; y <= current; y++ {
		years = append(years, y)
	}
	return years
}
