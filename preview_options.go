package mdb

// PreviewOption configures Preview.
type PreviewOption func(*previewConfig)

type previewConfig struct {
	osc8   bool
	styles Styles
}

// WithOSC8 enables or disables OSC 8 hyperlinks for Link elements.
func WithOSC8(enabled bool) PreviewOption {
	return func(cfg *previewConfig) {
		cfg.osc8 = enabled
	}
}

// WithTheme styles the preview with t. A nil theme keeps the current one.
func WithTheme(t Theme) PreviewOption {
	return func(cfg *previewConfig) {
		if t != nil {
			cfg.styles = t.Styles()
		}
	}
}

func newPreviewConfig(opts []PreviewOption) previewConfig {
	cfg := previewConfig{styles: DefaultTheme().Styles()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
