package config

import (
	"testing"

	"github.com/mnafees/chopper/v2/internal/options"
	"github.com/stretchr/testify/assert"
)

func TestCreateLogger(t *testing.T) {
	opts := options.New()
	assert.NotNil(t, CreateLogger(opts))

	opts.Quiet = true
	assert.NotNil(t, CreateLogger(opts))

	opts.Trace = true
	assert.NotNil(t, CreateLogger(opts))
}
