package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationStaysWithinBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := Duration(time.Second, DefaultJitter)
		assert.GreaterOrEqual(t, got, time.Second)
		assert.LessOrEqual(t, got, 1500*time.Millisecond)
	}
}

func TestDurationWithoutFactor(t *testing.T) {
	assert.Equal(t, time.Second, Duration(time.Second, 0))
	assert.Equal(t, time.Duration(0), Duration(0, DefaultJitter))
}

func TestExponentialBackoffIsCapped(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, ExponentialBackoff(100*time.Millisecond, time.Second, 0, 0))
	assert.Equal(t, 400*time.Millisecond, ExponentialBackoff(100*time.Millisecond, time.Second, 2, 0))
	assert.Equal(t, time.Second, ExponentialBackoff(100*time.Millisecond, time.Second, 10, 0))
}
