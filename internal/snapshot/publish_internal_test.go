package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFibonacciBackOff(t *testing.T) {
	t.Run("delays grow as the sum of the previous two", func(t *testing.T) {
		b := newFibonacciBackOff(time.Second)

		var delays []time.Duration
		for i := 0; i < 9; i++ {
			delays = append(delays, b.NextBackOff())
		}

		require.Equal(t, []time.Duration{
			1 * time.Second,
			1 * time.Second,
			2 * time.Second,
			3 * time.Second,
			5 * time.Second,
			8 * time.Second,
			13 * time.Second,
			21 * time.Second,
			34 * time.Second,
		}, delays)
	})

	t.Run("reset restarts the schedule", func(t *testing.T) {
		b := newFibonacciBackOff(time.Millisecond)
		b.NextBackOff()
		b.NextBackOff()
		b.NextBackOff()

		b.Reset()
		require.Equal(t, time.Millisecond, b.NextBackOff())
		require.Equal(t, time.Millisecond, b.NextBackOff())
		require.Equal(t, 2*time.Millisecond, b.NextBackOff())
	})
}
