package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelay(t *testing.T) {
	s := Simulator{Base: 10 * time.Millisecond, Jitter: 5 * time.Millisecond}
	for range 100 {
		d := s.Delay()
		assert.GreaterOrEqual(t, d, 10*time.Millisecond)
		assert.Less(t, d, 15*time.Millisecond)
	}

	assert.Zero(t, None.Delay())
	assert.Zero(t, Simulator{Base: -time.Second}.Delay())
}

func TestWait_None(t *testing.T) {
	assert.NoError(t, None.Wait(context.Background()))
}

func TestWait_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, Default.Wait(ctx), context.Canceled)
	assert.ErrorIs(t, None.Wait(ctx), context.Canceled)
}

func TestWait_Deadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, Simulator{Base: time.Hour}.Wait(ctx), context.DeadlineExceeded)
}
