//go:build js && wasm

package dombridge

import (
	"go.uber.org/zap"

	"github.com/tinexu/portfolio/internal/interaction"
)

// Renderer writes patches to the live page.
type Renderer struct {
	log *zap.Logger
}

func NewRenderer(log *zap.Logger) *Renderer { return &Renderer{log: log} }

func (r *Renderer) Apply(p interaction.Patch) {
	for _, m := range p {
		el, ok := m.Target.(*element)
		if !ok {
			r.log.Warn("mutation target is not a DOM element", zap.String("key", m.Target.Key()))
			continue
		}
		switch m.Kind {
		case interaction.SetTransform:
			el.v.Get("style").Set("transform", m.Value)
		case interaction.AddClass:
			el.v.Get("classList").Call("add", m.Value)
		case interaction.RemoveClass:
			el.v.Get("classList").Call("remove", m.Value)
		case interaction.SetText:
			el.v.Set("textContent", m.Value)
		case interaction.SetColor:
			el.v.Get("style").Set("color", m.Value)
		}
	}
}
