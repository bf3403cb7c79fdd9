package emojicap

import (
	"image/color"
	"time"

	"github.com/gogpu/emojicap/backend"
)

// Observer is notified after every Generate call. Implementations must be
// safe for concurrent use. See the metrics package for a Prometheus
// implementation.
type Observer interface {
	ObserveChallenge(elapsed time.Duration, err error)
}

// Option configures a Composer during creation.
//
// Example:
//
//	// Default software rendering
//	c := emojicap.NewComposer(catalog)
//
//	// Canvas backend (import _ "github.com/gogpu/emojicap/backend/canvas")
//	r, _ := backend.Get("canvas")
//	c := emojicap.NewComposer(catalog, emojicap.WithRenderer(r))
type Option func(*composerOptions)

type composerOptions struct {
	renderer   backend.Renderer
	layout     Layout
	background color.NRGBA
	observer   Observer
}

func defaultOptions() composerOptions {
	return composerOptions{
		renderer:   nil, // backend.Default() if nil
		layout:     DefaultLayout,
		background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// WithRenderer sets the rasterization backend.
func WithRenderer(r backend.Renderer) Option {
	return func(o *composerOptions) {
		o.renderer = r
	}
}

// WithLayout overrides the canvas geometry. Non-positive sizes and negative
// spacing keep the default value for that field.
func WithLayout(l Layout) Option {
	return func(o *composerOptions) {
		if l.Width > 0 {
			o.layout.Width = l.Width
		}
		if l.Height > 0 {
			o.layout.Height = l.Height
		}
		if l.Spacing >= 0 {
			o.layout.Spacing = l.Spacing
		}
	}
}

// WithBackground sets the canvas color. Translucent colors are made opaque.
func WithBackground(c color.Color) Option {
	return func(o *composerOptions) {
		bg := color.NRGBAModel.Convert(c).(color.NRGBA)
		bg.A = 255
		o.background = bg
	}
}

// WithObserver registers an observer for Generate calls.
func WithObserver(obs Observer) Option {
	return func(o *composerOptions) {
		o.observer = obs
	}
}
