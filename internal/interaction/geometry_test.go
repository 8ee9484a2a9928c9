package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagneticOffset(t *testing.T) {
	button := Rect{Left: 100, Top: 100, Width: 200, Height: 50}

	t.Run("centre is at rest", func(t *testing.T) {
		assert.Equal(t, vec(0, 0), MagneticOffset(button.Center(), button, 0.2))
	})

	t.Run("top-left corner pulls up and left", func(t *testing.T) {
		off := MagneticOffset(vec(100, 100), button, 0.2)
		assert.InDelta(t, -20, off.X(), 1e-9)
		assert.InDelta(t, -5, off.Y(), 1e-9)
	})

	t.Run("scales linearly with damping", func(t *testing.T) {
		a := MagneticOffset(vec(250, 110), button, 0.2)
		b := MagneticOffset(vec(250, 110), button, 0.3)
		assert.InDelta(t, a.X()*1.5, b.X(), 1e-9)
		assert.InDelta(t, a.Y()*1.5, b.Y(), 1e-9)
	})

	t.Run("bounded by half the box", func(t *testing.T) {
		off := MagneticOffset(vec(300, 150), button, 0.2)
		assert.InDelta(t, 20, off.X(), 1e-9)
		assert.InDelta(t, 5, off.Y(), 1e-9)
	})
}

func TestTiltFor(t *testing.T) {
	card := Rect{Left: 0, Top: 0, Width: 400, Height: 300}

	assert.Equal(t, Tilt{}, TiltFor(card.Center(), card, 20))

	tilt := TiltFor(vec(0, 0), card, 20)
	assert.InDelta(t, -7.5, tilt.RotateX, 1e-9)
	assert.InDelta(t, 10, tilt.RotateY, 1e-9)

	tilt = TiltFor(vec(400, 300), card, 20)
	assert.InDelta(t, 7.5, tilt.RotateX, 1e-9)
	assert.InDelta(t, -10, tilt.RotateY, 1e-9)
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{Top: 100, Height: 200}, true},
		{"straddles bottom", Rect{Top: 700, Height: 200}, true},
		{"straddles top", Rect{Top: -100, Height: 150}, true},
		{"below", Rect{Top: 800, Height: 200}, false},
		{"above", Rect{Top: -300, Height: 300}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Intersects(800))
		})
	}
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Width: 10, Height: 10}
	assert.True(t, r.Contains(vec(10, 10)))
	assert.True(t, r.Contains(vec(20, 20)))
	assert.False(t, r.Contains(vec(9.9, 15)))
	assert.False(t, r.Contains(vec(15, 20.1)))
}

func TestParallaxOffset(t *testing.T) {
	assert.Equal(t, -50.0, ParallaxOffset(100, 0.5))
	assert.Equal(t, 0.0, ParallaxOffset(0, 0.5))
	assert.Equal(t, "translateY(-50px)", translateY(ParallaxOffset(100, 0.5)))
	assert.Equal(t, "translateY(0px)", translateY(ParallaxOffset(0, 0.5)))
}

func TestTransformFormatting(t *testing.T) {
	assert.Equal(t, "translate(-20px, -5px)", translate(vec(-20, -5)))
	assert.Equal(t, "translate(0.1px, 0px)", translate(vec(0.1000000001, -0.0000001)))
	assert.Equal(t,
		"perspective(1000px) rotateX(-7.5deg) rotateY(10deg) translateZ(10px)",
		tiltTransform(Tilt{RotateX: -7.5, RotateY: 10}, 1000, 10))
}
