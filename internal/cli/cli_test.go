package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/mnafees/chopper/v2/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := ParseFlags([]string{"pong.ch8"})
	require.NoError(t, err)

	want := options.New()
	want.Input = "pong.ch8"
	assert.Equal(t, want, opts)
	assert.Equal(t, options.FrontendSDL, opts.Frontend)
	assert.Equal(t, 1, opts.Speed)
	assert.Equal(t, time.Second/60, opts.Period)
}

func TestParseFlags(t *testing.T) {
	opts, err := ParseFlags([]string{
		"-frontend", "TERM",
		"-speed", "10",
		"-period", "100ms",
		"-scale", "8",
		"-seed", "42",
		"-trace", "-disasm", "-stats",
		"-memviz", "state.dot",
		"pong.ch8",
	})
	require.NoError(t, err)

	assert.Equal(t, "pong.ch8", opts.Input)
	assert.Equal(t, options.FrontendTerminal, opts.Frontend)
	assert.Equal(t, 10, opts.Speed)
	assert.Equal(t, 100*time.Millisecond, opts.Period)
	assert.Equal(t, 8, opts.Scale)
	assert.Equal(t, int64(42), opts.Seed)
	assert.True(t, opts.Trace)
	assert.True(t, opts.Disasm)
	assert.True(t, opts.Stats)
	assert.Equal(t, "state.dot", opts.MemViz)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no program", []string{}, true},
		{"two programs", []string{"a.ch8", "b.ch8"}, true},
		{"unknown flag", []string{"-fast", "a.ch8"}, true},
		{"flag after program", []string{"a.ch8", "-q"}, true},
		{"bad frontend", []string{"-frontend", "gl", "a.ch8"}, false},
		{"zero speed", []string{"-speed", "0", "a.ch8"}, false},
		{"negative period", []string{"-period", "-1s", "a.ch8"}, false},
		{"zero scale", []string{"-scale", "0", "a.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			require.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}

func TestUsageError_ShowUsage(t *testing.T) {
	_, err := ParseFlags(nil)
	var usageErr *UsageError
	require.True(t, errors.As(err, &usageErr))

	var buf bytes.Buffer
	usageErr.ShowUsage(&buf)
	assert.Contains(t, buf.String(), "usage: chopper [options] <CHIP-8 program>")
	assert.Contains(t, buf.String(), "-speed")
	assert.Contains(t, buf.String(), "-frontend")
}
