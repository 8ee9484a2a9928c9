package effects

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tinexu/portfolio/internal/interaction"
)

// Fallback theme colours for the tech icon.
const (
	DefaultPrimaryColor = "#7bdaf5"
	DefaultAccentColor  = "#f583bc"
)

const (
	iconLighten = 0.2
	// iconUnitPx converts scene units to CSS pixels for the bob.
	iconUnitPx = 40
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// TechIcon is the decorative spinning icon. Its two colours are fixed when it
// is built; afterwards it only depends on elapsed time.
type TechIcon struct {
	from, to colorful.Color
	elapsed  time.Duration
}

// NewTechIcon lightens the theme's primary and accent colours towards white.
// Colours that do not parse fall back to the defaults.
func NewTechIcon(primary, accent string) *TechIcon {
	return &TechIcon{
		from: themeColor(primary, DefaultPrimaryColor).BlendRgb(white, iconLighten),
		to:   themeColor(accent, DefaultAccentColor).BlendRgb(white, iconLighten),
	}
}

// themeColor parses a CSS hex colour, dropping an alpha channel.
func themeColor(s, fallback string) colorful.Color {
	s = strings.TrimSpace(s)
	if len(s) == 9 {
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil || len(s) != 7 && len(s) != 4 {
		c, _ = colorful.Hex(fallback)
	}
	return c
}

func (i *TechIcon) Role() interaction.Role { return interaction.RoleTechIcon }

func (i *TechIcon) Advance(elapsed time.Duration) { i.elapsed += elapsed }

// Mix returns the interpolation weight between the two colours, which
// oscillates within [0.2, 0.8].
func (i *TechIcon) Mix() float64 {
	return (math.Sin(i.elapsed.Seconds())+1)/2*0.6 + 0.2
}

// Color returns the current icon colour.
func (i *TechIcon) Color() colorful.Color {
	return i.from.BlendRgb(i.to, i.Mix())
}

// Matrix returns the icon's model transform: a bob along y, then rotation
// about x and y.
func (i *TechIcon) Matrix() mgl32.Mat4 {
	t := i.elapsed.Seconds()
	bob := float32(-math.Sin(t*2) * 0.2 * iconUnitPx)
	return mgl32.Translate3D(0, bob, 0).
		Mul4(mgl32.HomogRotate3DX(float32(t * 0.5))).
		Mul4(mgl32.HomogRotate3DY(float32(t * 0.3)))
}

func (i *TechIcon) Mutations(el interaction.Element) []interaction.Mutation {
	return []interaction.Mutation{
		{Target: el, Kind: interaction.SetTransform, Value: matrix3d(i.Matrix())},
		{Target: el, Kind: interaction.SetColor, Value: i.Color().Hex()},
	}
}

// matrix3d formats m for CSS; both are column-major.
func matrix3d(m mgl32.Mat4) string {
	var b strings.Builder
	b.WriteString("matrix3d(")
	for k, v := range m {
		if k > 0 {
			b.WriteString(", ")
		}
		r := math.Round(float64(v)*1e4) / 1e4
		if r == 0 {
			r = 0
		}
		b.WriteString(strconv.FormatFloat(r, 'f', -1, 64))
	}
	b.WriteString(")")
	return b.String()
}
