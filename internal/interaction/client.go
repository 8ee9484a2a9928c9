package interaction

// ClientConfig is what the page server hands to the browser controller,
// embedded in the page as JSON.
type ClientConfig struct {
	Controller Config   `json:"controller"`
	Typed      []string `json:"typed"`
	// BounceHeightPx and BouncePeriodMs drive the scroll indicator.
	BounceHeightPx float64 `json:"bounceHeightPx"`
	BouncePeriodMs int     `json:"bouncePeriodMs"`
}

// NewClientConfig returns the client configuration for cfg and the typed
// hero lines.
func NewClientConfig(cfg Config, typed []string) ClientConfig {
	return ClientConfig{
		Controller:     cfg,
		Typed:          typed,
		BounceHeightPx: 10,
		BouncePeriodMs: 2000,
	}
}
