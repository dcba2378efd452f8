// Package particles provides the cosmetic effects layer: particle bursts,
// movement trails, and floating score text. Purely visual; nothing here
// feeds back into game state.
package particles

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/codeventure/hero"
)

// Particle is a single moving dot with a finite lifetime.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Gravity  float64
	Life     int
	MaxLife  int
	Size     float64
	Color    color.RGBA
}

// System owns all live particles.
type System struct {
	particles []*Particle
	rng       *rand.Rand
}

// NewSystem creates an empty particle system.
func NewSystem(rng *rand.Rand) *System {
	return &System{rng: rng}
}

// Count returns the number of live particles.
func (s *System) Count() int {
	return len(s.particles)
}

// EmitBurst scatters particles in all directions from (x, y).
func (s *System) EmitBurst(x, y float64, clr color.RGBA, count int) {
	const speed = 3.0
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		v := speed*0.5 + s.rng.Float64()*speed*0.5
		s.particles = append(s.particles, &Particle{
			X: x, Y: y,
			VX:      math.Cos(angle) * v,
			VY:      math.Sin(angle) * v,
			Life:    20 + s.rng.Intn(21),
			MaxLife: 40,
			Size:    3 + s.rng.Float64()*3,
			Color:   clr,
		})
	}
}

// EmitTrail drops a couple of particles behind a moving hero.
func (s *System) EmitTrail(x, y float64, clr color.RGBA, dir hero.Direction) {
	for i := 0; i < 2; i++ {
		vx := s.rng.Float64() - 0.5
		vy := s.rng.Float64() - 0.5
		switch dir {
		case hero.DirRight:
			vx -= 1.5
		case hero.DirLeft:
			vx += 1.5
		case hero.DirUp:
			vy += 1.5
		case hero.DirDown:
			vy -= 1.5
		}
		s.particles = append(s.particles, &Particle{
			X:       x + (s.rng.Float64()-0.5)*10,
			Y:       y + (s.rng.Float64()-0.5)*10,
			VX:      vx,
			VY:      vy,
			Life:    15,
			MaxLife: 15,
			Size:    4,
			Color:   clr,
		})
	}
}

// EmitCollect plays the gem pickup sparkle: an even ring drifting outward
// with a slight upward pull.
func (s *System) EmitCollect(x, y float64, clr color.RGBA) {
	const count = 12
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi / count * float64(i)
		v := 2 + s.rng.Float64()*2
		s.particles = append(s.particles, &Particle{
			X: x, Y: y,
			VX:      math.Cos(angle) * v,
			VY:      math.Sin(angle) * v,
			Gravity: -0.1,
			Life:    25,
			MaxLife: 25,
			Size:    5,
			Color:   clr,
		})
	}
}

// EmitSpin rings the hero with multicolored particles moving outward.
func (s *System) EmitSpin(x, y float64) {
	colors := []color.RGBA{
		{34, 211, 238, 255},
		{52, 211, 153, 255},
		{251, 191, 36, 255},
		{139, 92, 246, 255},
	}
	const count = 20
	const radius = 30.0
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi / count * float64(i)
		s.particles = append(s.particles, &Particle{
			X:       x + math.Cos(angle)*radius,
			Y:       y + math.Sin(angle)*radius,
			VX:      math.Cos(angle) * 2,
			VY:      math.Sin(angle) * 2,
			Life:    30,
			MaxLife: 30,
			Size:    5,
			Color:   colors[s.rng.Intn(len(colors))],
		})
	}
}

// Update advances all particles one tick and drops the dead ones.
func (s *System) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += p.Gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}

// Clear removes every particle, used on session reset.
func (s *System) Clear() {
	s.particles = nil
}

// Draw renders all particles with size and alpha fading out over life.
func (s *System) Draw(screen *ebiten.Image) {
	for _, p := range s.particles {
		frac := float64(p.Life) / float64(p.MaxLife)
		size := p.Size * frac
		if size < 1 {
			size = 1
		}
		clr := p.Color
		clr.A = uint8(255 * frac)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(size), clr, true)
	}
}

// FloatingText is a short label that rises and expires, used for "+N"
// score popups.
type FloatingText struct {
	Text string
	X, Y float64
	Life int
}

const floatingTextLife = 60

// NewFloatingText creates a popup at (x, y).
func NewFloatingText(text string, x, y float64) *FloatingText {
	return &FloatingText{Text: text, X: x, Y: y, Life: floatingTextLife}
}

// Update moves the text upward one tick. Returns false once expired.
func (t *FloatingText) Update() bool {
	t.Y -= 1.5
	t.Life--
	return t.Life > 0
}

// Draw renders the text centered on its position.
func (t *FloatingText) Draw(screen *ebiten.Image) {
	x := int(t.X) - len(t.Text)*3
	ebitenutil.DebugPrintAt(screen, t.Text, x, int(t.Y))
}
