//go:build js && wasm

package dombridge

import (
	"syscall/js"
	"time"

	"github.com/tinexu/portfolio/internal/interaction"
)

// maxFrameGap caps the elapsed time reported after the tab was hidden.
const maxFrameGap = 100 * time.Millisecond

// Events turns browser events into controller events.
type Events struct {
	window js.Value
	doc    js.Value
}

func NewEvents() *Events {
	w := js.Global()
	return &Events{window: w, doc: w.Get("document")}
}

func (e *Events) Listen(t interaction.EventType, fn interaction.Listener) func() {
	switch t {
	case interaction.EventPointerMove:
		return e.on(e.window, "mousemove", t, fn)
	case interaction.EventPointerDown:
		return e.on(e.window, "mousedown", t, fn)
	case interaction.EventPointerUp:
		return e.on(e.window, "mouseup", t, fn)
	case interaction.EventScroll:
		return e.on(e.window, "scroll", t, fn)
	case interaction.EventSubmit:
		return e.onSubmit(fn)
	case interaction.EventFrame:
		return e.frames(fn)
	}
	return nil
}

func (e *Events) on(target js.Value, name string, t interaction.EventType, fn interaction.Listener) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := args[0]
		out := interaction.Event{Type: t, PreventDefault: func() { ev.Call("preventDefault") }}
		if t != interaction.EventScroll {
			out.X = ev.Get("clientX").Float()
			out.Y = ev.Get("clientY").Float()
		}
		fn(out)
		return nil
	})
	target.Call("addEventListener", name, cb)
	return func() {
		target.Call("removeEventListener", name, cb)
		cb.Release()
	}
}

// onSubmit listens on the document so forms added after mount still count.
func (e *Events) onSubmit(fn interaction.Listener) func() {
	sel := Selectors[interaction.RoleContactForm]
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := args[0]
		target := ev.Get("target")
		if target.IsNull() || !target.Call("matches", sel).Bool() {
			return nil
		}
		fn(interaction.Event{
			Type:           interaction.EventSubmit,
			PreventDefault: func() { ev.Call("preventDefault") },
		})
		return nil
	})
	e.doc.Call("addEventListener", "submit", cb)
	return func() {
		e.doc.Call("removeEventListener", "submit", cb)
		cb.Release()
	}
}

// frames drives fn from requestAnimationFrame until released.
func (e *Events) frames(fn interaction.Listener) func() {
	var (
		cb      js.Func
		handle  js.Value
		last    float64
		stopped bool
	)
	cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		if stopped {
			return nil
		}
		now := args[0].Float()
		if last == 0 {
			last = now
		}
		elapsed := time.Duration((now - last) * float64(time.Millisecond))
		last = now
		fn(interaction.Event{Type: interaction.EventFrame, Elapsed: min(elapsed, maxFrameGap)})
		handle = e.window.Call("requestAnimationFrame", cb)
		return nil
	})
	handle = e.window.Call("requestAnimationFrame", cb)
	return func() {
		stopped = true
		e.window.Call("cancelAnimationFrame", handle)
		cb.Release()
	}
}

// Timers schedules callbacks with setTimeout.
type Timers struct {
	window js.Value
}

func NewTimers() *Timers { return &Timers{window: js.Global()} }

func (t *Timers) After(d time.Duration, fn func()) func() {
	var cb js.Func
	done := false
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		done = true
		cb.Release()
		fn()
		return nil
	})
	id := t.window.Call("setTimeout", cb, d.Milliseconds())
	return func() {
		if done {
			return
		}
		done = true
		t.window.Call("clearTimeout", id)
		cb.Release()
	}
}
