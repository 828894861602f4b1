package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tartampluch/birthday-week/internal/config"
)

// ErrSourceTooLarge reports an import source above the importer's size limit.
var ErrSourceTooLarge = errors.New(config.ErrSourceTooLarge)

// ErrNoBirthdays reports a vCard source that yields no usable record.
var ErrNoBirthdays = errors.New(config.ErrNoBirthdays)

// SourceConfig describes where an import reads its data from.
type SourceConfig struct {
	Mode      string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath string // Path to a .json or .vcf file
	WebURL    string // Remote JSON or vCard address
	WebUser   string // HTTP Basic Auth Username
	WebPass   string // HTTP Basic Auth Password
}

// Importer loads birthday data from a file or URL and returns editor text.
type Importer struct {
	Fetcher SourceFetcher
	// MaxSize caps the bytes read from any source; zero means config.MaxHTTPResponseSize.
	MaxSize int64
}

// Import reads the configured source. A JSON array is validated and returned as
// is; anything else is decoded as vCard and returned as pretty-printed records.
func (i *Importer) Import(ctx context.Context, cfg SourceConfig) (string, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompImporter,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgImportStarted)

	reader, err := i.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%s: %w", config.ErrSourceRead, err)
	}
	// Best effort close on a read-only stream.
	defer func() { _ = reader.Close() }()

	limit := i.MaxSize
	if limit <= 0 {
		limit = config.MaxHTTPResponseSize
	}
	// Read one byte past the limit to tell a full-size source from an oversized one.
	data, err := io.ReadAll(io.LimitReader(reader, limit+1))
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrSourceRead, err)
	}
	if int64(len(data)) > limit {
		return "", ErrSourceTooLarge
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, count, err := convertSource(ctx, data)
	if err != nil {
		return "", err
	}

	log.Info(config.MsgImportDone,
		config.LogKeyRecords, count,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return text, nil
}

// acquireStream opens the appropriate data source based on configuration.
func (i *Importer) acquireStream(ctx context.Context, cfg SourceConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if i.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return i.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// convertSource sniffs the payload: a leading '[' means JSON records.
func convertSource(ctx context.Context, data []byte) (string, int, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == config.JSONArrayPrefix {
		records, err := decodeRecords(trimmed)
		if err != nil {
			return "", 0, fmt.Errorf("%s: %w", config.ErrSourceJSON, err)
		}
		return string(trimmed), len(records), nil
	}

	records, err := DecodeVCards(ctx, bytes.NewReader(data))
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	// Replacing the editor with an empty list would silently drop its content.
	if len(records) == 0 {
		return "", 0, ErrNoBirthdays
	}
	text, err := EncodeRecords(records)
	if err != nil {
		return "", 0, err
	}
	return text, len(records), nil
}
