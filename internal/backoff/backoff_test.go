package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelay_Doubling(t *testing.T) {
	base := 1000 * time.Millisecond
	limit := 900000 * time.Millisecond

	assert.Equal(t, 1000*time.Millisecond, Delay(base, limit, 0))
	assert.Equal(t, 2000*time.Millisecond, Delay(base, limit, 1))
	assert.Equal(t, 4000*time.Millisecond, Delay(base, limit, 2))
	assert.Equal(t, 8000*time.Millisecond, Delay(base, limit, 3))
}

func TestDelay_Cap(t *testing.T) {
	base := time.Second
	limit := 15 * time.Minute

	// 2^20 seconds is far beyond the cap
	assert.Equal(t, limit, Delay(base, limit, 20))

	// base already above the cap
	assert.Equal(t, limit, Delay(time.Hour, limit, 0))
}

func TestDelay_NonDecreasing(t *testing.T) {
	base := 500 * time.Millisecond
	limit := 15 * time.Minute

	prev := time.Duration(0)
	for n := 0; n < 64; n++ {
		d := Delay(base, limit, n)
		assert.GreaterOrEqual(t, d, prev, "attempt %d", n)
		assert.LessOrEqual(t, d, limit, "attempt %d", n)
		prev = d
	}
}

func TestDelay_OverflowSafe(t *testing.T) {
	// huge attempt counts must not wrap around into negative delays
	assert.Equal(t, DefaultCap, Delay(time.Second, 0, 1000))
}

func TestDelay_ZeroBase(t *testing.T) {
	assert.Equal(t, time.Duration(0), Delay(0, time.Minute, 5))
}
