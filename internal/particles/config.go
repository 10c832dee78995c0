// Package particles describes the decorative particle background: the
// option object handed to the browser engine, and a native simulation of
// the same behavior for the terminal preview.
package particles

import "github.com/Kavindu379/portfolio/internal/ui"

// Palette is the pair of colors a theme gives the background.
type Palette struct {
	Dot  string
	Link string
}

var palettes = map[ui.Theme]Palette{
	ui.Light: {Dot: "#005c97", Link: "#cbd5e0"},
	ui.Dark:  {Dot: "#64ffda", Link: "#233554"},
}

// PaletteFor returns the colors for t. Unknown themes get the dark palette.
func PaletteFor(t ui.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ui.Dark]
}

// Config is the particle background configuration.
type Config struct {
	Count        int
	DensityArea  int
	Shape        string
	Opacity      float64
	Size         float64
	RandomSize   bool
	LinkDistance float64
	LinkOpacity  float64
	LinkWidth    float64
	Speed        float64
	Direction    string
	OutMode      string
	Bounce       bool
	GrabDistance float64
	GrabOpacity  float64
	PushCount    int
	Resize       bool
	Retina       bool
	Palette      Palette
}

// Default returns the page's particle configuration for theme t.
func Default(t ui.Theme) Config {
	return Config{
		Count:        40,
		DensityArea:  800,
		Shape:        "circle",
		Opacity:      0.5,
		Size:         3,
		RandomSize:   true,
		LinkDistance: 150,
		LinkOpacity:  0.4,
		LinkWidth:    1,
		Speed:        1,
		Direction:    "none",
		OutMode:      "out",
		Bounce:       false,
		GrabDistance: 140,
		GrabOpacity:  1,
		PushCount:    4,
		Resize:       true,
		Retina:       true,
		Palette:      PaletteFor(t),
	}
}

// Options renders c as the option object the browser engine reads.
func (c Config) Options() map[string]any {
	return map[string]any{
		"particles": map[string]any{
			"number": map[string]any{
				"value":   c.Count,
				"density": map[string]any{"enable": true, "value_area": c.DensityArea},
			},
			"color":   map[string]any{"value": c.Palette.Dot},
			"shape":   map[string]any{"type": c.Shape},
			"opacity": map[string]any{"value": c.Opacity, "random": false},
			"size":    map[string]any{"value": c.Size, "random": c.RandomSize},
			"line_linked": map[string]any{
				"enable":   true,
				"distance": c.LinkDistance,
				"color":    c.Palette.Link,
				"opacity":  c.LinkOpacity,
				"width":    c.LinkWidth,
			},
			"move": map[string]any{
				"enable":    true,
				"speed":     c.Speed,
				"direction": c.Direction,
				"random":    false,
				"straight":  false,
				"out_mode":  c.OutMode,
				"bounce":    c.Bounce,
			},
		},
		"interactivity": map[string]any{
			"detect_on": "canvas",
			"events": map[string]any{
				"onhover": map[string]any{"enable": true, "mode": "grab"},
				"onclick": map[string]any{"enable": true, "mode": "push"},
				"resize":  c.Resize,
			},
			"modes": map[string]any{
				"grab": map[string]any{
					"distance":    c.GrabDistance,
					"line_linked": map[string]any{"opacity": c.GrabOpacity},
				},
				"push": map[string]any{"particles_nb": c.PushCount},
			},
		},
		"retina_detect": c.Retina,
	}
}

// ForTheme is the options object for t. It has the shape ui.NewThemedEffect wants.
func ForTheme(t ui.Theme) any {
	return Default(t).Options()
}
