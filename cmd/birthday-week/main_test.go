package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-week/internal/config"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("birthday-week", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr string
	}{
		{"Defaults", nil, options{}, ""},
		{"Version", []string{"-version"}, options{showVersion: true}, ""},
		{"HeadlessWithPort", []string{"-headless", "-port", "19000", "-debug"}, options{headless: true, port: "19000", debug: true}, ""},
		{"PortNotNumber", []string{"-port", "http"}, options{}, config.ErrPortNumber},
		{"PortOutOfRange", []string{"-port", "70000"}, options{}, config.ErrPortRange},
		{"UnknownFlag", []string{"-tray"}, options{}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(newFlagSet(), tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewStore_SeedsSamples(t *testing.T) {
	snap := newStore().Snapshot()
	assert.NotEmpty(t, snap.Records)
	assert.Len(t, snap.Columns, config.DaysPerWeek)
}
