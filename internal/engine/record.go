package engine

import "time"

// BirthdayRecord is one person as typed by the user in the JSON editor.
type BirthdayRecord struct {
	Name string `json:"name"`

	// Birthday is either MM/DD/YYYY or YYYY-MM-DD.
	Birthday string `json:"birthday"`
}

// CalendarEntry is a record placed into a weekday bucket for a given year.
type CalendarEntry struct {
	Name             string
	Age              int
	OriginalBirthday string

	// Occurrence is the birthday moved into the selected year.
	Occurrence time.Time
}

// WeekdayBuckets maps each English weekday name (Sunday..Saturday) to its entries,
// sorted ascending by age.
type WeekdayBuckets map[string][]CalendarEntry

// Weekdays lists the bucket keys in display order.
var Weekdays = []time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// NewWeekdayBuckets returns buckets with all seven days present and empty.
func NewWeekdayBuckets() WeekdayBuckets {
	b := make(WeekdayBuckets, len(Weekdays))
	for _, d := range Weekdays {
		b[d.String()] = []CalendarEntry{}
	}
	return b
}

// Total counts the entries across every bucket.
func (b WeekdayBuckets) Total() int {
	n := 0
	for _, entries := range b {
		n += len(entries)
	}
	return n
}
