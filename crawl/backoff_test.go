package crawl_test

import (
	"testing"
	"time"

	"github.com/jwach/adoc/crawl"
	"github.com/stretchr/testify/assert"
)

func TestBackoff_Next(t *testing.T) {
	t.Parallel()

	t.Run("delays grow multiplicatively", func(t *testing.T) {
		t.Parallel()

		b := crawl.Backoff{
			Initial:    time.Second,
			Multiplier: 2,
			MaxElapsed: time.Minute,
		}

		d0, ok := b.Next(0, 0)
		assert.True(t, ok)
		assert.Equal(t, time.Second, d0)

		d1, ok := b.Next(1, 0)
		assert.True(t, ok)
		assert.Equal(t, 2*time.Second, d1)

		d2, ok := b.Next(2, 0)
		assert.True(t, ok)
		assert.Equal(t, 4*time.Second, d2)
	})

	t.Run("gives up once elapsed reaches the ceiling", func(t *testing.T) {
		t.Parallel()

		b := crawl.Backoff{
			Initial:    time.Second,
			Multiplier: 2,
			MaxElapsed: 10 * time.Second,
		}

		_, ok := b.Next(0, 10*time.Second)
		assert.False(t, ok)

		_, ok = b.Next(0, 11*time.Second)
		assert.False(t, ok)
	})

	t.Run("gives up when the delay would cross the ceiling", func(t *testing.T) {
		t.Parallel()

		b := crawl.Backoff{
			Initial:    4 * time.Second,
			Multiplier: 2,
			MaxElapsed: 10 * time.Second,
		}

		// 8s elapsed + 4s delay > 10s budget
		_, ok := b.Next(0, 8*time.Second)
		assert.False(t, ok)

		// 5s elapsed + 4s delay <= 10s budget
		d, ok := b.Next(0, 5*time.Second)
		assert.True(t, ok)
		assert.Equal(t, 4*time.Second, d)
	})

	t.Run("zero ceiling means no budget", func(t *testing.T) {
		t.Parallel()

		b := crawl.Backoff{Initial: time.Second, Multiplier: 2}

		d, ok := b.Next(5, 24*time.Hour)
		assert.True(t, ok)
		assert.Equal(t, 32*time.Second, d)
	})
}

func TestDefaultBackoff(t *testing.T) {
	t.Parallel()

	b := crawl.DefaultBackoff(30 * time.Second)

	assert.Equal(t, crawl.DefaultInitialDelay, b.Initial)
	assert.Equal(t, crawl.DefaultMultiplier, b.Multiplier)
	assert.Equal(t, 30*time.Second, b.MaxElapsed)
}
