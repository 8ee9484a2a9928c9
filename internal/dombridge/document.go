//go:build js && wasm

// Package dombridge connects the interaction controller to a live browser
// page through syscall/js.
package dombridge

import (
	"syscall/js"

	"github.com/google/uuid"

	"github.com/tinexu/portfolio/internal/interaction"
)

// keyAttr holds the stable key assigned to each element the bridge touches.
const keyAttr = "data-fx-key"

// Selectors maps each controller role to the CSS selector of its regions.
var Selectors = map[interaction.Role]string{
	interaction.RoleInteractive:     "a, button, .project-card, input, textarea",
	interaction.RoleParallax:        ".parallax-element",
	interaction.RoleReveal:          ".reveal-on-scroll",
	interaction.RoleMagnetic:        ".magnetic-button",
	interaction.RoleTilt:            ".hover-3d",
	interaction.RoleNavBar:          "nav.nav",
	interaction.RoleNavLink:         ".nav-links a[data-section]",
	interaction.RoleCursor:          ".custom-cursor",
	interaction.RoleContactForm:     ".contact-form",
	interaction.RoleContactStatus:   ".contact-status",
	interaction.RoleTyped:           "[data-typed]",
	interaction.RoleScrollIndicator: ".scroll-indicator",
	interaction.RoleTechIcon:        ".tech-icon",
}

// Document reads the page through the global window and document objects.
type Document struct {
	window js.Value
	doc    js.Value
}

func NewDocument() *Document {
	w := js.Global()
	return &Document{window: w, doc: w.Get("document")}
}

func (d *Document) Query(role interaction.Role) []interaction.Element {
	sel, ok := Selectors[role]
	if !ok {
		return nil
	}
	nodes := d.doc.Call("querySelectorAll", sel)
	n := nodes.Length()
	out := make([]interaction.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, wrap(nodes.Index(i)))
	}
	return out
}

func (d *Document) ByID(id string) (interaction.Element, bool) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return wrap(v), true
}

func (d *Document) ScrollY() float64 { return d.window.Get("scrollY").Float() }

func (d *Document) ViewportHeight() float64 { return d.window.Get("innerHeight").Float() }

// CSSVar returns the computed value of a custom property on the root
// element, or "" when unset.
func (d *Document) CSSVar(name string) string {
	style := d.window.Call("getComputedStyle", d.doc.Get("documentElement"))
	return style.Call("getPropertyValue", name).String()
}

// element wraps a DOM node. Bounds and Offset read the layout on every call.
type element struct {
	v   js.Value
	key string
}

func wrap(v js.Value) *element {
	key := v.Call("getAttribute", keyAttr)
	if key.IsNull() {
		k := uuid.NewString()
		v.Call("setAttribute", keyAttr, k)
		return &element{v: v, key: k}
	}
	return &element{v: v, key: key.String()}
}

func (e *element) Key() string { return e.key }

func (e *element) Bounds() interaction.Rect {
	r := e.v.Call("getBoundingClientRect")
	return interaction.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *element) Offset() (top, height float64) {
	return e.v.Get("offsetTop").Float(), e.v.Get("offsetHeight").Float()
}

func (e *element) Attr(name string) (string, bool) {
	a := e.v.Call("getAttribute", name)
	if a.IsNull() {
		return "", false
	}
	return a.String(), true
}
