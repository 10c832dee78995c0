package particles

import (
	"math"
	"math/rand/v2"
)

// Particle is one dot on the field.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

// Link joins two particles. Opacity fades with distance.
type Link struct {
	A, B    int
	Opacity float64
}

// Grabbed is a particle pulled toward the pointer.
type Grabbed struct {
	Index   int
	Opacity float64
}

// Field simulates the background on a W×H canvas.
type Field struct {
	Config    Config
	W, H      float64
	Particles []Particle

	rng *rand.Rand
}

// DensityCount scales the configured count to the canvas area the same
// way the browser engine does: Count particles per DensityArea thousand
// square pixels.
func (c Config) DensityCount(w, h float64) int {
	if c.DensityArea <= 0 {
		return c.Count
	}
	n := int(math.Round(w * h / 1000 * float64(c.Count) / float64(c.DensityArea)))
	if n < 1 {
		n = 1
	}
	return n
}

// NewField fills a w×h canvas. A nil rng uses a time-seeded source.
func NewField(cfg Config, w, h float64, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Field{Config: cfg, W: w, H: h, rng: rng}
	for range cfg.DensityCount(w, h) {
		f.spawn(rng.Float64()*w, rng.Float64()*h)
	}
	return f
}

func (f *Field) spawn(x, y float64) {
	angle := f.rng.Float64() * 2 * math.Pi
	size := f.Config.Size
	if f.Config.RandomSize {
		size = math.Max(0.5, f.rng.Float64()*f.Config.Size)
	}
	f.Particles = append(f.Particles, Particle{
		X:    x,
		Y:    y,
		VX:   math.Cos(angle) * f.Config.Speed,
		VY:   math.Sin(angle) * f.Config.Speed,
		Size: size,
	})
}

// Step advances the simulation by dt frames. Particles leaving the canvas
// re-enter from the opposite edge, or reflect when bouncing is on.
func (f *Field) Step(dt float64) {
	bounce := f.Config.Bounce || f.Config.OutMode == "bounce"
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt

		if bounce {
			p.X, p.VX = reflect(p.X, p.VX, f.W)
			p.Y, p.VY = reflect(p.Y, p.VY, f.H)
			continue
		}
		p.X = wrap(p.X, p.Size, f.W)
		p.Y = wrap(p.Y, p.Size, f.H)
	}
}

func wrap(v, margin, limit float64) float64 {
	switch {
	case v > limit+margin:
		return -margin
	case v < -margin:
		return limit + margin
	}
	return v
}

func reflect(v, vel, limit float64) (float64, float64) {
	switch {
	case v < 0:
		return -v, math.Abs(vel)
	case v > limit:
		return 2*limit - v, -math.Abs(vel)
	}
	return v, vel
}

func dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// Links returns every pair of particles within link distance.
func (f *Field) Links() []Link {
	var links []Link
	d := f.Config.LinkDistance
	for i := range f.Particles {
		for j := i + 1; j < len(f.Particles); j++ {
			a, b := f.Particles[i], f.Particles[j]
			if dd := dist(a.X, a.Y, b.X, b.Y); dd <= d {
				links = append(links, Link{A: i, B: j, Opacity: f.Config.LinkOpacity * (1 - dd/d)})
			}
		}
	}
	return links
}

// Grab returns the particles within grab distance of the pointer.
func (f *Field) Grab(x, y float64) []Grabbed {
	var out []Grabbed
	d := f.Config.GrabDistance
	for i, p := range f.Particles {
		if dd := dist(p.X, p.Y, x, y); dd <= d {
			out = append(out, Grabbed{Index: i, Opacity: f.Config.GrabOpacity * (1 - dd/d)})
		}
	}
	return out
}

// Push adds PushCount particles at the click position.
func (f *Field) Push(x, y float64) {
	for range f.Config.PushCount {
		f.spawn(x, y)
	}
}

// Resize changes the canvas. Particles outside the new bounds wrap back in
// on the next Step.
func (f *Field) Resize(w, h float64) {
	if f.Config.Resize {
		f.W, f.H = w, h
	}
}
