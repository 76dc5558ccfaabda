package iconforge

import "github.com/gogpu/gg"

// Option configures how an icon is rendered and encoded.
//
// Example:
//
//	// Defaults: white frame on #0066cc, three lines, PNG
//	img, err := iconforge.Render(48)
//
//	// Dark variant
//	img, err := iconforge.Render(48, iconforge.WithBackground(gg.Black))
type Option func(*options)

type options struct {
	background gg.RGBA
	foreground gg.RGBA
	lines      int
	format     Format
	renderer   gg.Renderer
}

func defaultOptions() options {
	return options{
		background: DefaultBackground,
		foreground: DefaultForeground,
		lines:      DefaultLineCount,
		format:     "", // resolved from the file extension if empty
		renderer:   nil,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBackground sets the canvas fill color.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithForeground sets the color of the frame and lines.
func WithForeground(c gg.RGBA) Option {
	return func(o *options) {
		o.foreground = c
	}
}

// WithLineCount sets the number of horizontal lines inside the frame.
func WithLineCount(n int) Option {
	return func(o *options) {
		o.lines = n
	}
}

// WithFormat forces the output format instead of deriving it from the
// file extension.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithRenderer injects the renderer used by the drawing context.
// By default gg's software renderer is used.
func WithRenderer(r gg.Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}
