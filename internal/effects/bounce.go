package effects

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tinexu/portfolio/internal/interaction"
)

// Bounce moves the scroll indicator down and back up, forever.
type Bounce struct {
	seq    *gween.Sequence
	offset float64
}

// NewBounce returns a bounce of the given height in pixels completing one
// round trip per period.
func NewBounce(height float64, period time.Duration) *Bounce {
	half := float32(period.Seconds() / 2)
	seq := gween.NewSequence(
		gween.New(0, float32(height), half, ease.InOutSine),
		gween.New(float32(height), 0, half, ease.InOutSine),
	)
	seq.SetLoop(-1)
	return &Bounce{seq: seq}
}

func (b *Bounce) Role() interaction.Role { return interaction.RoleScrollIndicator }

func (b *Bounce) Advance(elapsed time.Duration) {
	v, _, _ := b.seq.Update(float32(elapsed.Seconds()))
	b.offset = float64(v)
}

// Offset returns the current vertical offset in pixels.
func (b *Bounce) Offset() float64 { return b.offset }

func (b *Bounce) Mutations(el interaction.Element) []interaction.Mutation {
	return []interaction.Mutation{{Target: el, Kind: interaction.SetTransform, Value: "translateY(" + px(b.offset) + ")"}}
}
