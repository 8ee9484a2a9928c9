// Package effects holds the page's self-driven decorations. Each one is an
// interaction.Decoration advanced by the controller's frame events.
package effects

import (
	"math"
	"strconv"
)

func px(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
