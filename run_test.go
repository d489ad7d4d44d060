package soundboard_test

import (
	"testing"
	"time"

	"github.com/DJCoolVR/soundboard"
	"github.com/stretchr/testify/assert"
)

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid run", func(t *testing.T) {
		t.Parallel()

		r := &soundboard.Run{StartedAt: start, FinishedAt: start.Add(time.Minute)}
		assert.NoError(t, r.Validate())
	})

	t.Run("missing start", func(t *testing.T) {
		t.Parallel()

		r := &soundboard.Run{FinishedAt: start}
		assert.Equal(t, soundboard.EINVALID, soundboard.ErrorCode(r.Validate()))
	})

	t.Run("finish before start", func(t *testing.T) {
		t.Parallel()

		r := &soundboard.Run{StartedAt: start, FinishedAt: start.Add(-time.Second)}
		assert.Equal(t, soundboard.EINVALID, soundboard.ErrorCode(r.Validate()))
	})
}
