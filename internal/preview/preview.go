// Package preview renders the particle background in a terminal, using the
// same configuration the browser receives.
package preview

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Kavindu379/portfolio/internal/particles"
	"github.com/Kavindu379/portfolio/internal/ui"
)

const (
	// Canvas pixels per terminal cell.
	cellW = 8
	cellH = 16

	frameInterval = 16 * time.Millisecond

	dotGlyph  = '•'
	linkGlyph = '·'
)

var backgrounds = map[ui.Theme]string{
	ui.Dark:  "#0a192f",
	ui.Light: "#f4f7fb",
}

// Preview is one terminal rendering of a particle field.
type Preview struct {
	screen tcell.Screen
	field  *particles.Field
	theme  ui.Theme
	sound  *Sound

	pointerX, pointerY float64
	pointerIn          bool
	pressed            bool
}

// New builds a preview on an initialized screen.
func New(screen tcell.Screen, theme ui.Theme, sound *Sound) *Preview {
	cols, rows := screen.Size()
	p := &Preview{screen: screen, theme: theme, sound: sound}
	p.field = particles.NewField(particles.Default(theme), float64(cols*cellW), float64(rows*cellH), nil)
	return p
}

// Theme reports the palette in use.
func (p *Preview) Theme() ui.Theme { return p.theme }

// Field exposes the simulation.
func (p *Preview) Field() *particles.Field { return p.field }

// ToggleTheme swaps the palette without restarting the simulation.
func (p *Preview) ToggleTheme() {
	p.theme = p.theme.Toggle()
	p.field.Config.Palette = particles.PaletteFor(p.theme)
}

// Hover moves the pointer to a cell.
func (p *Preview) Hover(col, row int) {
	p.pointerX, p.pointerY = cellCenter(col, row)
	p.pointerIn = true
}

// Click pushes new particles at a cell.
func (p *Preview) Click(col, row int) {
	x, y := cellCenter(col, row)
	p.field.Push(x, y)
	p.sound.Click()
}

// Resize follows the terminal size.
func (p *Preview) Resize() {
	cols, rows := p.screen.Size()
	p.field.Resize(float64(cols*cellW), float64(rows*cellH))
}

// HandleKey reacts to a key press and reports whether to keep running.
func (p *Preview) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return false
		case 't', 'T':
			p.ToggleTheme()
		}
	}
	return true
}

func (p *Preview) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		col, row := ev.Position()
		p.Hover(col, row)
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !p.pressed {
			p.Click(col, row)
		}
		p.pressed = down
	case *tcell.EventResize:
		p.Resize()
		p.screen.Sync()
	}
	return true
}

// Draw paints one frame.
func (p *Preview) Draw() {
	bg := hexColor(backgrounds[p.theme], tcell.ColorBlack)
	base := tcell.StyleDefault.Background(bg)
	p.screen.SetStyle(base)
	p.screen.Clear()

	palette := p.field.Config.Palette
	dot := hexColor(palette.Dot, tcell.ColorWhite)
	link := hexColor(palette.Link, tcell.ColorGray)
	parts := p.field.Particles

	for _, l := range p.field.Links() {
		a, b := parts[l.A], parts[l.B]
		p.drawLine(a.X, a.Y, b.X, b.Y, base.Foreground(blend(link, bg, l.Opacity)))
	}
	if p.pointerIn {
		for _, g := range p.field.Grab(p.pointerX, p.pointerY) {
			q := parts[g.Index]
			p.drawLine(p.pointerX, p.pointerY, q.X, q.Y, base.Foreground(blend(dot, bg, g.Opacity)))
		}
	}

	dotStyle := base.Foreground(blend(dot, bg, p.field.Config.Opacity*2))
	for _, q := range parts {
		col, row := toCell(q.X, q.Y)
		p.screen.SetContent(col, row, dotGlyph, nil, dotStyle)
	}
	p.screen.Show()
}

func (p *Preview) drawLine(x0, y0, x1, y1 float64, style tcell.Style) {
	c0, r0 := toCell(x0, y0)
	c1, r1 := toCell(x1, y1)
	for _, c := range line(c0, r0, c1, r1) {
		p.screen.SetContent(c[0], c[1], linkGlyph, nil, style)
	}
}

// Run animates until ctx ends or the user quits.
func (p *Preview) Run(ctx context.Context) {
	p.screen.EnableMouse()
	p.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !p.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			p.field.Step(1)
			p.Draw()
		}
	}
}

// Start opens the terminal, runs the preview and restores the terminal.
func Start(ctx context.Context, theme ui.Theme) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	sound := NewSound()
	if err := sound.Init(); err != nil {
		log.Printf("preview: audio unavailable: %v", err)
	}
	defer sound.Close()

	New(screen, theme, sound).Run(ctx)
	return nil
}

func cellCenter(col, row int) (float64, float64) {
	return float64(col*cellW) + cellW/2, float64(row*cellH) + cellH/2
}

func toCell(x, y float64) (int, int) {
	return int(x) / cellW, int(y) / cellH
}

// line walks the cells between two points (Bresenham).
func line(x0, y0, x1, y1 int) [][2]int {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	var out [][2]int
	for {
		out = append(out, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return out
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func hexColor(s string, fallback tcell.Color) tcell.Color {
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// blend mixes fg over bg at the given opacity, clamped to [0,1].
func blend(fg, bg tcell.Color, opacity float64) tcell.Color {
	opacity = max(0, min(1, opacity))
	r1, g1, b1 := fg.RGB()
	r0, g0, b0 := bg.RGB()
	mix := func(f, b int32) int32 {
		return b + int32(float64(f-b)*opacity)
	}
	return tcell.NewRGBColor(mix(r1, r0), mix(g1, g0), mix(b1, b0))
}
