package engine

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tartampluch/birthday-week/internal/config"
)

// ParseRecords decodes a JSON array of records.
// Invalid input never fails the caller: it is logged and yields an empty list.
func ParseRecords(text string) []BirthdayRecord {
	records, err := decodeRecords([]byte(text))
	if err != nil {
		slog.Warn(config.MsgInvalidJSON,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyError, err,
		)
		return []BirthdayRecord{}
	}
	return records
}

// decodeRecords is the strict variant used by imports, where a bad payload must
// be reported instead of silently clearing the editor.
func decodeRecords(data []byte) ([]BirthdayRecord, error) {
	var records []BirthdayRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrRecordsParse, err)
	}
	if records == nil {
		records = []BirthdayRecord{}
	}
	return records, nil
}

// EncodeRecords serializes records the way the editor displays them.
func EncodeRecords(records []BirthdayRecord) (string, error) {
	if records == nil {
		records = []BirthdayRecord{}
	}
	data, err := json.MarshalIndent(records, "", config.JSONIndent)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrRecordsEncode, err)
	}
	return string(data), nil
}
