// Package debris simulates short-lived snow chunks with chipmunk. The
// chunks bounce off level terrain but never touch each other or the player.
package debris

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
)

// debrisGroup puts every chunk in one collision group so they pass through
// each other.
const debrisGroup = 1

const (
	categoryTerrain uint = 1 << iota
	categoryDebris
)

// Settings describe how chunks look and move.
type Settings struct {
	Gravity    float64 // px/s²
	Radius     float64
	Mass       float64
	Elasticity float64
	Friction   float64
	Speed      float64 // launch speed, px/s
	Life       float64 // seconds
	MaxChunks  int
}

// Chunk is one piece of debris.
type Chunk struct {
	body   *cp.Body
	shape  *cp.Shape
	age    float64
	life   float64
	Radius float64
}

// Position returns the chunk center.
func (c *Chunk) Position() (float64, float64) {
	p := c.body.Position()
	return p.X, p.Y
}

// Fade goes from 1 at spawn to 0 at the end of the chunk's life.
func (c *Chunk) Fade() float64 {
	if c.life <= 0 {
		return 0
	}
	return math.Max(0, 1-c.age/c.life)
}

// Field is a chipmunk space holding terrain and live chunks.
type Field struct {
	space    *cp.Space
	settings Settings
	chunks   []*Chunk
	terrain  map[any]*cp.Shape
	rng      *rand.Rand
}

// NewField creates an empty field. The seed drives launch directions.
func NewField(s Settings, seed int64) *Field {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: s.Gravity})
	return &Field{
		space:    space,
		settings: s,
		terrain:  make(map[any]*cp.Shape),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// AddTerrain adds a static box chunks bounce off. The key identifies it for
// RemoveTerrain.
func (f *Field) AddTerrain(key any, x, y, w, h float64) {
	bb := cp.BB{L: x, B: y, R: x + w, T: y + h}
	shape := cp.NewBox2(f.space.StaticBody, bb, 0)
	shape.SetElasticity(f.settings.Elasticity)
	shape.SetFriction(f.settings.Friction)
	shape.SetFilter(cp.NewShapeFilter(0, categoryTerrain, categoryDebris))
	f.space.AddShape(shape)
	f.terrain[key] = shape
}

// RemoveTerrain drops a box added with AddTerrain. Unknown keys are ignored.
func (f *Field) RemoveTerrain(key any) {
	shape, ok := f.terrain[key]
	if !ok {
		return
	}
	f.space.RemoveShape(shape)
	delete(f.terrain, key)
}

// Burst launches n chunks from x, y in a fan pointing upwards. Bursts beyond
// MaxChunks replace the oldest chunks.
func (f *Field) Burst(x, y float64, n int) {
	s := f.settings
	for i := 0; i < n; i++ {
		if s.MaxChunks > 0 && len(f.chunks) >= s.MaxChunks {
			f.remove(0)
		}

		// Up is -y; spread a third of a turn around it.
		angle := -math.Pi/2 + (f.rng.Float64()-0.5)*2*math.Pi/3
		speed := s.Speed * (0.5 + f.rng.Float64()*0.5)

		body := cp.NewBody(s.Mass, cp.MomentForCircle(s.Mass, 0, s.Radius, cp.Vector{}))
		body.SetPosition(cp.Vector{X: x, Y: y})
		body.SetVelocity(math.Cos(angle)*speed, math.Sin(angle)*speed)

		shape := cp.NewCircle(body, s.Radius, cp.Vector{})
		shape.SetElasticity(s.Elasticity)
		shape.SetFriction(s.Friction)
		shape.SetFilter(cp.NewShapeFilter(debrisGroup, categoryDebris, categoryTerrain))

		f.space.AddBody(body)
		f.space.AddShape(shape)
		f.chunks = append(f.chunks, &Chunk{
			body:   body,
			shape:  shape,
			life:   s.Life * (0.75 + f.rng.Float64()*0.25),
			Radius: s.Radius,
		})
	}
}

// Step advances the simulation and retires chunks that outlived their life.
func (f *Field) Step(dt float64) {
	if len(f.chunks) == 0 {
		return
	}
	f.space.Step(dt)
	for i := len(f.chunks) - 1; i >= 0; i-- {
		c := f.chunks[i]
		c.age += dt
		if c.age >= c.life {
			f.remove(i)
		}
	}
}

// Chunks returns the live chunks, oldest first.
func (f *Field) Chunks() []*Chunk {
	return f.chunks
}

func (f *Field) remove(i int) {
	c := f.chunks[i]
	f.space.RemoveShape(c.shape)
	f.space.RemoveBody(c.body)
	f.chunks = append(f.chunks[:i], f.chunks[i+1:]...)
}
