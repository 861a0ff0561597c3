package internal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StopsOnQuit(t *testing.T) {
	keys := &quitKeypad{quitAfter: 5}
	vm, err := NewC8VM(NewFramebuffer(), keys, WithLogger(log.NewTestLogger(t)))
	require.NoError(t, err)
	require.NoError(t, vm.LoadBytes(program(0x7001, 0x1200)))

	err = Run(context.Background(), vm, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 5, keys.polls)
	// JP and ADD alternate, one instruction per cycle
	assert.Equal(t, uint8(3), vm.regV[0])
}

func TestRun_ReturnsFatalError(t *testing.T) {
	vm, _, _ := newTestVM(t, 0x6001, 0x00EE)

	err := Run(context.Background(), vm, time.Millisecond)
	assert.True(t, errors.Is(err, ErrStackUnderflow))
}

func TestRun_Cancelled(t *testing.T) {
	vm, _, _ := newTestVM(t, 0x1200)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, vm, time.Hour)
	assert.NoError(t, err)
}
