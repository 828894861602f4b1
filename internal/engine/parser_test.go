package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-week/internal/engine"
)

func TestParseRecords_Valid(t *testing.T) {
	text := `[
  {"name": "Alice Smith", "birthday": "1990-03-10"},
  {"name": "Bob Stone", "birthday": "12/25/1980", "extra": true}
]`

	records := engine.ParseRecords(text)

	assert.Equal(t, []engine.BirthdayRecord{
		{Name: "Alice Smith", Birthday: "1990-03-10"},
		{Name: "Bob Stone", Birthday: "12/25/1980"},
	}, records)
}

func TestParseRecords_FailsSoft(t *testing.T) {
	inputs := map[string]string{
		"Truncated":        "{not valid",
		"Empty":            "",
		"Object":           `{"name": "Alice", "birthday": "1990-03-10"}`,
		"WrongFieldType":   `[{"name": "Alice", "birthday": 19900310}]`,
		"TrailingGarbage":  `[] []`,
		"PlainText":        "Alice 1990-03-10",
		"UnterminatedList": `[{"name": "Alice", "birthday": "1990-03-10"}`,
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			var records []engine.BirthdayRecord
			require.NotPanics(t, func() { records = engine.ParseRecords(in) })
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestParseRecords_NullIsEmpty(t *testing.T) {
	records := engine.ParseRecords("null")
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestInvalidJSON_YieldsEmptyCalendar(t *testing.T) {
	buckets := engine.BuildCalendar(engine.ParseRecords("{not valid"), 2024, time.UTC)

	require.Len(t, buckets, 7)
	assert.Zero(t, buckets.Total())
}

func TestEncodeRecords_RoundTripsThroughEditor(t *testing.T) {
	text, err := engine.EncodeRecords([]engine.BirthdayRecord{{Name: "Alice Smith", Birthday: "1990-03-10"}})
	require.NoError(t, err)

	assert.Equal(t, "[\n  {\n    \"name\": \"Alice Smith\",\n    \"birthday\": \"1990-03-10\"\n  }\n]", text)

	empty, err := engine.EncodeRecords(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}

func TestSampleRecords_FreshCopies(t *testing.T) {
	a := engine.SampleRecords()
	b := engine.SampleRecords()
	require.NotEmpty(t, a)

	a[0].Name = "Changed"
	assert.NotEqual(t, a[0].Name, b[0].Name, "callers must not share the sample slice")

	for _, r := range b {
		_, err := engine.ParseBirthDate(r.Birthday)
		assert.NoError(t, err, "sample %q must use a supported layout", r.Name)
	}
}
