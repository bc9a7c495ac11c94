package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.InDelta(t, 1.0/60.0, New(60).Step(), 1e-15)
	assert.InDelta(t, 1.0/30.0, New(30).Step(), 1e-15)
	assert.InDelta(t, 1.0/60.0, New(0).Step(), 1e-15, "falls back to default")
}

func TestAccumulator_FirstAdvancePrimes(t *testing.T) {
	a := New(60)

	assert.Equal(t, 0, a.Advance(5*time.Second))
	assert.Equal(t, 0.0, a.Remainder())
}

func TestAccumulator_StepCountMatchesFloor(t *testing.T) {
	a := New(60)
	a.Advance(0)

	elapsed := []time.Duration{
		0,
		time.Millisecond,
		10 * time.Millisecond,
		17 * time.Millisecond,
		33300 * time.Microsecond,
		50 * time.Millisecond,
		100 * time.Millisecond,
		250 * time.Millisecond,
		1003 * time.Millisecond,
		4200 * time.Microsecond,
	}

	var now time.Duration
	for _, e := range elapsed {
		prev := now
		now += e
		got := a.Advance(now)

		// steps so far are floor(total * rate) computed in integers
		want := int(int64(now)*60/int64(time.Second) - int64(prev)*60/int64(time.Second))
		require.Equal(t, want, got, "elapsed %v at %v", e, now)
		require.Less(t, a.Remainder(), a.Step())
		require.GreaterOrEqual(t, a.Remainder(), 0.0)
	}
}

func TestAccumulator_ExactMultiples(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    int
	}{
		{time.Second, 60},
		{50 * time.Millisecond, 3},
		{100 * time.Millisecond, 6},
		{566666667 * time.Nanosecond, 34}, // 34/60 s rounded to the nanosecond
		{566666667 * time.Nanosecond, 34},
	}

	a := New(60)
	a.Advance(0)
	var now time.Duration
	for _, c := range cases {
		now += c.elapsed
		assert.Equal(t, c.want, a.Advance(now), "elapsed %v", c.elapsed)
	}
	assert.Equal(t, uint64(60+3+6+34+34), a.TotalSteps())
}

func TestAccumulator_NeverDropsTime(t *testing.T) {
	a := New(60)
	a.Advance(0)

	var now time.Duration
	steps := 0
	for i := 0; i < 1000; i++ {
		now += 7*time.Millisecond + time.Duration(i%5)*3*time.Millisecond
		steps += a.Advance(now)
	}

	assert.Equal(t, int(int64(now)*60/int64(time.Second)), steps)
	assert.InDelta(t, now.Seconds(), float64(steps)*a.Step()+a.Remainder(), 1e-9)
	assert.Equal(t, uint64(steps), a.TotalSteps())
}

func TestAccumulator_Advance(t *testing.T) {
	a := New(60)
	a.Advance(0)

	t.Run("one frame at 60Hz", func(t *testing.T) {
		assert.Equal(t, 1, a.Advance(17*time.Millisecond))
	})

	t.Run("carry produces a step later", func(t *testing.T) {
		a := New(60)
		a.Advance(0)
		assert.Equal(t, 0, a.Advance(10*time.Millisecond))
		assert.Equal(t, 1, a.Advance(20*time.Millisecond))
	})

	t.Run("fast display yields zero-step frames", func(t *testing.T) {
		a := New(60)
		a.Advance(0)
		total := 0
		for ms := 7; ms <= 70; ms += 7 {
			total += a.Advance(time.Duration(ms) * time.Millisecond)
		}
		assert.Equal(t, 4, total) // 70ms / 16.67ms
	})

	t.Run("backwards timestamp counts as zero", func(t *testing.T) {
		a := New(60)
		a.Advance(time.Second)
		assert.Equal(t, 0, a.Advance(500*time.Millisecond))
		assert.Equal(t, 1, a.Advance(517*time.Millisecond))
	})
}

func TestAccumulator_UnboundedCatchUp(t *testing.T) {
	a := New(60)
	a.Advance(0)

	assert.Equal(t, 600, a.Advance(10*time.Second+time.Millisecond))
}

func TestAccumulator_MaxFrameTime(t *testing.T) {
	a := New(60)
	a.MaxFrameTime = 255 * time.Millisecond
	a.Advance(0)

	assert.Equal(t, 15, a.Advance(10*time.Second))
}

func TestAccumulator_Reset(t *testing.T) {
	a := New(60)
	a.Advance(0)
	a.Advance(10 * time.Millisecond)
	require.Greater(t, a.Remainder(), 0.0)

	a.Reset()
	assert.Equal(t, 0.0, a.Remainder())
	assert.Equal(t, 0, a.Advance(time.Hour), "primes again after reset")
}
