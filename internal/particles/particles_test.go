package particles

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Kavindu379/portfolio/internal/ui"
)

func seeded() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestPaletteFor(t *testing.T) {
	tests := []struct {
		theme ui.Theme
		dot   string
		link  string
	}{
		{ui.Light, "#005c97", "#cbd5e0"},
		{ui.Dark, "#64ffda", "#233554"},
		{ui.Theme("sepia"), "#64ffda", "#233554"},
	}
	for _, tt := range tests {
		p := PaletteFor(tt.theme)
		if p.Dot != tt.dot || p.Link != tt.link {
			t.Errorf("PaletteFor(%s) = %+v", tt.theme, p)
		}
	}
}

func TestOptionsJSON(t *testing.T) {
	raw, err := json.Marshal(ForTheme(ui.Light))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got struct {
		Particles struct {
			Number struct {
				Value int `json:"value"`
			} `json:"number"`
			Color struct {
				Value string `json:"value"`
			} `json:"color"`
			LineLinked struct {
				Distance float64 `json:"distance"`
				Color    string  `json:"color"`
			} `json:"line_linked"`
			Move struct {
				OutMode string `json:"out_mode"`
				Bounce  bool   `json:"bounce"`
			} `json:"move"`
		} `json:"particles"`
		Interactivity struct {
			Events struct {
				OnHover struct {
					Mode string `json:"mode"`
				} `json:"onhover"`
				OnClick struct {
					Mode string `json:"mode"`
				} `json:"onclick"`
			} `json:"events"`
			Modes struct {
				Grab struct {
					Distance float64 `json:"distance"`
				} `json:"grab"`
				Push struct {
					N int `json:"particles_nb"`
				} `json:"push"`
			} `json:"modes"`
		} `json:"interactivity"`
		Retina bool `json:"retina_detect"`
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	p := got.Particles
	if p.Number.Value != 40 || p.Color.Value != "#005c97" || p.LineLinked.Color != "#cbd5e0" {
		t.Errorf("particles block: %+v", p)
	}
	if p.LineLinked.Distance != 150 || p.Move.OutMode != "out" || p.Move.Bounce {
		t.Errorf("movement block: %+v", p)
	}
	i := got.Interactivity
	if i.Events.OnHover.Mode != "grab" || i.Events.OnClick.Mode != "push" {
		t.Errorf("events: %+v", i.Events)
	}
	if i.Modes.Grab.Distance != 140 || i.Modes.Push.N != 4 || !got.Retina {
		t.Errorf("modes: %+v retina=%v", i.Modes, got.Retina)
	}
}

func TestDensityCount(t *testing.T) {
	c := Default(ui.Dark)
	if n := c.DensityCount(1000, 800); n != 40 {
		t.Errorf("reference area: got %d, want 40", n)
	}
	if n := c.DensityCount(2000, 800); n != 80 {
		t.Errorf("double area: got %d, want 80", n)
	}
	if n := c.DensityCount(1, 1); n != 1 {
		t.Errorf("tiny canvas: got %d, want 1", n)
	}
}

func TestStepWrapsOut(t *testing.T) {
	f := &Field{Config: Default(ui.Dark), W: 100, H: 100, rng: seeded()}
	f.Particles = []Particle{{X: 99, Y: 50, VX: 10, Size: 2}}

	f.Step(1)
	if got := f.Particles[0].X; got != -2 {
		t.Errorf("wrapped x: got %v, want -2", got)
	}
	if f.Particles[0].VX != 10 {
		t.Error("wrapping should keep velocity")
	}
}

func TestStepBounces(t *testing.T) {
	cfg := Default(ui.Dark)
	cfg.Bounce = true
	f := &Field{Config: cfg, W: 100, H: 100, rng: seeded()}
	f.Particles = []Particle{{X: 95, Y: 2, VX: 10, VY: -5, Size: 1}}

	f.Step(1)
	p := f.Particles[0]
	if p.X != 95 || p.VX != -10 {
		t.Errorf("x bounce: %+v", p)
	}
	if p.Y != 3 || p.VY != 5 {
		t.Errorf("y bounce: %+v", p)
	}
}

func TestLinksWithinDistance(t *testing.T) {
	f := &Field{Config: Default(ui.Dark), W: 1000, H: 1000, rng: seeded()}
	f.Particles = []Particle{{X: 0, Y: 0}, {X: 90, Y: 120}, {X: 400, Y: 400}}

	links := f.Links()
	if len(links) != 1 {
		t.Fatalf("links = %+v, want exactly one", links)
	}
	l := links[0]
	if l.A != 0 || l.B != 1 {
		t.Errorf("linked pair %d-%d", l.A, l.B)
	}
	// 150 apart is exactly at the limit.
	if l.Opacity != 0 {
		t.Errorf("edge opacity: got %v", l.Opacity)
	}
}

func TestGrab(t *testing.T) {
	f := &Field{Config: Default(ui.Dark), W: 1000, H: 1000, rng: seeded()}
	f.Particles = []Particle{{X: 10, Y: 10}, {X: 500, Y: 500}}

	got := f.Grab(10, 10)
	if len(got) != 1 || got[0].Index != 0 || got[0].Opacity != 1 {
		t.Errorf("grab = %+v", got)
	}
}

func TestPushAddsAtPointer(t *testing.T) {
	f := NewField(Default(ui.Dark), 1000, 800, seeded())
	before := len(f.Particles)

	f.Push(320, 240)
	if len(f.Particles) != before+4 {
		t.Fatalf("particles = %d, want %d", len(f.Particles), before+4)
	}
	for _, p := range f.Particles[before:] {
		if p.X != 320 || p.Y != 240 {
			t.Errorf("pushed particle at %v,%v", p.X, p.Y)
		}
		if speed := math.Hypot(p.VX, p.VY); math.Abs(speed-1) > 1e-9 {
			t.Errorf("speed = %v, want 1", speed)
		}
		if p.Size <= 0 || p.Size > 3 {
			t.Errorf("size = %v", p.Size)
		}
	}
}

func TestStepKeepsParticlesNearCanvas(t *testing.T) {
	f := NewField(Default(ui.Light), 300, 200, seeded())
	for range 1000 {
		f.Step(1)
	}
	for _, p := range f.Particles {
		if p.X < -p.Size-1 || p.X > f.W+p.Size+1 || p.Y < -p.Size-1 || p.Y > f.H+p.Size+1 {
			t.Fatalf("particle escaped: %+v", p)
		}
	}
}
