package effects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinexu/portfolio/internal/interaction"
)

const frame = 10 * time.Millisecond

func run(d interaction.Decoration, total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		d.Advance(frame)
	}
}

func TestTypewriterCycle(t *testing.T) {
	tw := NewTypewriter([]string{"Go.", "Hi"},
		WithSpeeds(100*time.Millisecond, 50*time.Millisecond),
		WithBackDelay(200*time.Millisecond))
	assert.Equal(t, interaction.RoleTyped, tw.Role())
	assert.Equal(t, "", tw.Text())

	run(tw, 150*time.Millisecond)
	assert.Equal(t, "G", tw.Text())

	run(tw, 160*time.Millisecond)
	assert.Equal(t, "Go.", tw.Text())

	// Held for the back delay.
	run(tw, 150*time.Millisecond)
	assert.Equal(t, "Go.", tw.Text())

	// Backspaced, then the next line starts.
	run(tw, 300*time.Millisecond)
	assert.NotEqual(t, "Go.", tw.Text())
	run(tw, 200*time.Millisecond)
	assert.Equal(t, "Hi", tw.Text())
}

func TestTypewriterHandlesRunes(t *testing.T) {
	tw := NewTypewriter([]string{"héllo"}, WithSpeeds(10*time.Millisecond, 10*time.Millisecond))
	run(tw, 20*time.Millisecond)
	assert.Equal(t, "hé", tw.Text())
}

func TestTypewriterEmpty(t *testing.T) {
	tw := NewTypewriter(nil)
	tw.Advance(time.Second)
	assert.Equal(t, "", tw.Text())
}

func TestBounceLoopsForever(t *testing.T) {
	b := NewBounce(10, 2*time.Second)
	assert.Equal(t, interaction.RoleScrollIndicator, b.Role())

	run(b, time.Second)
	assert.InDelta(t, 10, b.Offset(), 0.2)

	run(b, time.Second)
	assert.InDelta(t, 0, b.Offset(), 0.2)

	for range 5 {
		run(b, time.Second)
		assert.InDelta(t, 10, b.Offset(), 0.2)
		run(b, time.Second)
		assert.InDelta(t, 0, b.Offset(), 0.2)
	}

	run(b, 500*time.Millisecond)
	assert.Greater(t, b.Offset(), 1.0)
	assert.Less(t, b.Offset(), 9.0)
}

func TestTechIconColours(t *testing.T) {
	icon := NewTechIcon("#7bdaf5ff", "not-a-colour")
	def := NewTechIcon(DefaultPrimaryColor, DefaultAccentColor)
	assert.Equal(t, def.Color().Hex(), icon.Color().Hex())

	// Mix stays within [0.2, 0.8].
	for range 700 {
		icon.Advance(frame)
		m := icon.Mix()
		require.GreaterOrEqual(t, m, 0.2-1e-9)
		require.LessOrEqual(t, m, 0.8+1e-9)
	}
}

func TestTechIconLightensTowardsWhite(t *testing.T) {
	icon := NewTechIcon("#000000", "#000000")
	assert.Equal(t, "#333333", icon.Color().Hex())
}

func TestTechIconMutations(t *testing.T) {
	icon := NewTechIcon(DefaultPrimaryColor, DefaultAccentColor)
	muts := icon.Mutations(nil)
	require.Len(t, muts, 2)
	assert.Equal(t, interaction.SetTransform, muts[0].Kind)
	assert.Equal(t, "matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1)", muts[0].Value)
	assert.Equal(t, interaction.SetColor, muts[1].Kind)
}
