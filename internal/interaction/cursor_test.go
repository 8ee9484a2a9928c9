package interaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestModeScale(t *testing.T) {
	assert.Equal(t, 1.0, ModeDefault.Scale())
	assert.Equal(t, 1.5, ModeHover.Scale())
	assert.Equal(t, 0.8, ModePressed.Scale())
}

func TestCursorSettlesWithoutOvershoot(t *testing.T) {
	c := NewCursor(DefaultConfig())
	pointer := vec(400, 300)
	target := c.Target(pointer)
	assert.Equal(t, vec(390, 290), target)

	peak := 0.0
	frames := 0
	for ; frames < 120; frames++ {
		c.Step(cursorFrameTime, pointer, ModeHover)
		peak = max(peak, c.Position().X())
		if abs(c.Position().X()-target.X()) < 0.5 {
			break
		}
	}
	// Settles within a few hundred milliseconds.
	assert.Less(t, frames, 30)
	assert.LessOrEqual(t, peak, target.X()+0.01*target.X())

	for range 60 {
		c.Step(cursorFrameTime, pointer, ModeHover)
	}
	assert.InDelta(t, 390, c.Position().X(), 0.01)
	assert.InDelta(t, 290, c.Position().Y(), 0.01)
	assert.InDelta(t, 1.5, c.Scale(), 0.01)
}

func TestCursorLongFrameIsCapped(t *testing.T) {
	a, b := NewCursor(DefaultConfig()), NewCursor(DefaultConfig())
	a.Step(time.Minute, vec(100, 100), ModeDefault)
	for range maxCursorSteps {
		b.Step(cursorFrameTime, vec(100, 100), ModeDefault)
	}
	assert.Equal(t, b.Position(), a.Position())
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
