package engine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-week/internal/engine"
)

func TestDecodeVCards(t *testing.T) {
	vcards := `BEGIN:VCARD
VERSION:4.0
FN:John Doe
BDAY:1990-01-01
END:VCARD
BEGIN:VCARD
VERSION:3.0
N:Stark;Arya;;;
BDAY:19961125
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:No Year
BDAY:--0607
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:No Birthday
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Garbage Date
BDAY:someday
END:VCARD`

	records, err := engine.DecodeVCards(context.Background(), strings.NewReader(vcards))
	require.NoError(t, err)

	assert.Equal(t, []engine.BirthdayRecord{
		{Name: "John Doe", Birthday: "1990-01-01"},
		{Name: "Arya Stark", Birthday: "1996-11-25"},
	}, records)
}

func TestDecodeVCards_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.DecodeVCards(ctx, strings.NewReader("BEGIN:VCARD\nVERSION:3.0\nFN:A\nEND:VCARD"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeVCards_NoCards(t *testing.T) {
	for _, input := range []string{"", "just some notes", `{"name": "Alice"}`} {
		_, err := engine.DecodeVCards(context.Background(), strings.NewReader(input))
		assert.ErrorIs(t, err, engine.ErrNoVCards, "input %q", input)
	}
}
