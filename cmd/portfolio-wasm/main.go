//go:build js && wasm

// Command portfolio-wasm runs the interaction controller inside the browser.
// It reads its configuration from the page's #fx-config script element.
//
//	GOOS=js GOARCH=wasm go build -o assets/portfolio.wasm ./cmd/portfolio-wasm
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" assets/
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"
	"time"

	"go.uber.org/zap"

	"github.com/tinexu/portfolio/internal/dombridge"
	"github.com/tinexu/portfolio/internal/effects"
	"github.com/tinexu/portfolio/internal/interaction"
)

func readConfig() (interaction.ClientConfig, error) {
	cc := interaction.NewClientConfig(interaction.DefaultConfig(), nil)
	el := js.Global().Get("document").Call("getElementById", "fx-config")
	if el.IsNull() {
		return cc, nil
	}
	raw := strings.TrimSpace(el.Get("textContent").String())
	if raw == "" {
		return cc, nil
	}
	if err := json.Unmarshal([]byte(raw), &cc); err != nil {
		return cc, fmt.Errorf("decode fx-config: %w", err)
	}
	return cc, nil
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cc, err := readConfig()
	if err != nil {
		log.Warn("using default interaction config", zap.Error(err))
	}

	doc := dombridge.NewDocument()
	icon := effects.NewTechIcon(
		strings.TrimSpace(doc.CSSVar("--primary-color")),
		strings.TrimSpace(doc.CSSVar("--accent-color")),
	)
	bounce := effects.NewBounce(cc.BounceHeightPx, time.Duration(cc.BouncePeriodMs)*time.Millisecond)

	opts := []interaction.Option{
		interaction.WithLogger(log),
		interaction.WithDecoration(bounce),
		interaction.WithDecoration(icon),
	}
	if len(cc.Typed) > 0 {
		opts = append(opts, interaction.WithDeferredDecoration(effects.NewTypewriter(cc.Typed)))
	}

	ctrl, err := interaction.New(doc, dombridge.NewRenderer(log), cc.Controller, opts...)
	if err != nil {
		log.Fatal("invalid interaction config", zap.Error(err))
	}
	sub, err := ctrl.Mount(dombridge.NewEvents(), dombridge.NewTimers())
	if err != nil {
		log.Fatal("mount", zap.Error(err))
	}

	js.Global().Call("addEventListener", "pagehide", js.FuncOf(func(js.Value, []js.Value) any {
		sub.Close()
		return nil
	}))

	select {}
}
