package internal

import (
	"context"
	"time"
)

// Run is the main application loop. It cycles the VM once per period until
// the VM halts, a fatal error occurs or the context is cancelled.
func Run(ctx context.Context, vm *C8VM, period time.Duration) error {
	if period <= 0 {
		period = TimerFrequency
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		running, err := vm.Cycle()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
