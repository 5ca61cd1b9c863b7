// Package scene loads YAML shape lists and draws them through the wireframe
// helpers.
package scene

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/matrix889/ProceduralToolkit/internal/debug"
	"github.com/matrix889/ProceduralToolkit/pkg/draw"
	"github.com/matrix889/ProceduralToolkit/pkg/math"
)

var (
	// ErrUnknownShape is returned for shapes with an unrecognized kind.
	ErrUnknownShape = errors.New("unknown shape kind")
	// ErrBadScale is returned for a scale with more than three components.
	ErrBadScale = errors.New("scale has more than 3 components")
)

// Kind names a drawable shape.
type Kind string

// Shape kinds.
const (
	KindQuad   Kind = "quad"
	KindCube   Kind = "cube"
	KindCircle Kind = "circle"
	KindArc    Kind = "arc"
	KindSphere Kind = "sphere"
	KindBounds Kind = "bounds"
	KindGrid   Kind = "grid"
	KindBBox   Kind = "bbox"
)

// Shape is one entry of a scene file. Fields a kind does not use are
// ignored. A grid covers Cells from the origin at height Center[1]. A bbox
// is a model-space box [minX, minY, minZ, maxX, maxY, maxZ], scaled by
// Scale, moved to Position and padded on every side.
type Shape struct {
	Kind     Kind       `yaml:"kind"`
	Plane    draw.Plane `yaml:"plane"`
	Center   [3]float32 `yaml:"center"`
	Rotation [3]float32 `yaml:"rotation"` // Euler angles, degrees
	Scale    []float32  `yaml:"scale"`    // up to 3 components, missing ones are 1
	Radius   float32    `yaml:"radius"`
	From     float32    `yaml:"from"`
	To       float32    `yaml:"to"`
	Min      [3]float32 `yaml:"min"`
	Max      [3]float32 `yaml:"max"`
	Cells    [2]int     `yaml:"cells"`
	CellSize float32    `yaml:"cell_size"`
	Outline  bool       `yaml:"outline"` // grid only: draw the border too
	BBox     [6]float32 `yaml:"bbox"`
	Position [3]float32 `yaml:"position"`
	Padding  *float32   `yaml:"padding,omitempty"` // defaults to debug.DefaultBBoxPadding

	Color     *[4]float32    `yaml:"color,omitempty"`
	Duration  *time.Duration `yaml:"duration,omitempty"`
	DepthTest *bool          `yaml:"depth_test,omitempty"`
}

// Scene is an ordered list of shapes.
type Scene struct {
	Name   string  `yaml:"name"`
	Shapes []Shape `yaml:"shapes"`
}

// Style is the line style applied to shapes that do not override it.
type Style struct {
	Color     math.Color
	Duration  time.Duration
	DepthTest bool
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	for i := range s.Shapes {
		sh := &s.Shapes[i]
		if err := sh.validate(); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return &s, nil
}

func (sh *Shape) validate() error {
	if len(sh.Scale) > 3 {
		return fmt.Errorf("%w: %v", ErrBadScale, sh.Scale)
	}
	switch sh.Kind {
	case KindQuad, KindCube, KindCircle, KindArc, KindSphere, KindBounds, KindGrid, KindBBox:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownShape, sh.Kind)
}

// Style returns the shape's style, falling back to def for unset fields.
func (sh *Shape) Style(def Style) Style {
	st := def
	if sh.Color != nil {
		st.Color = math.ColorFromArray(*sh.Color)
	}
	if sh.Duration != nil {
		st.Duration = *sh.Duration
	}
	if sh.DepthTest != nil {
		st.DepthTest = *sh.DepthTest
	}
	return st
}

// Draw emits the shape into sink.
func (sh *Shape) Draw(sink draw.Sink) {
	center := math.Vec3FromArray(sh.Center)
	rot := math.QuatFromEuler(sh.Rotation[0], sh.Rotation[1], sh.Rotation[2])
	scale := sh.scale()

	switch sh.Kind {
	case KindQuad:
		draw.WireQuad(sh.Plane, sink, center, rot, math.Vec2{X: scale.X, Y: scale.Y})
	case KindCube:
		draw.WireCube(sink, center, rot, scale)
	case KindCircle:
		draw.WireCircle(sh.Plane, sink, center, rot, sh.Radius)
	case KindArc:
		draw.WireArc(sh.Plane, sink, center, rot, sh.Radius, sh.From, sh.To)
	case KindSphere:
		draw.WireSphere(sink, center, rot, sh.Radius)
	case KindBounds:
		draw.WireBounds(sink, math.Vec3FromArray(sh.Min), math.Vec3FromArray(sh.Max))
	case KindGrid:
		g := debug.Grid{Width: sh.Cells[0], Height: sh.Cells[1], CellSize: sh.CellSize}
		g.Draw(sink, 0, 0, g.Width, g.Height, sh.Center[1])
		if sh.Outline {
			g.Outline(sink, sh.Center[1])
		}
	case KindBBox:
		padding := float32(debug.DefaultBBoxPadding)
		if sh.Padding != nil {
			padding = *sh.Padding
		}
		debug.WireBBox(sink, sh.BBox, sh.Position, scale.Array(), padding)
	}
}

// scale returns the shape's scale, filling missing components with 1.
func (sh *Shape) scale() math.Vec3 {
	s := math.Vec3One.Array()
	copy(s[:], sh.Scale)
	return math.Vec3FromArray(s)
}

type countingSink struct {
	draw.Sink
	n int
}

func (c *countingSink) DrawLine(start, end math.Vec3) {
	c.n++
	c.Sink.DrawLine(start, end)
}

// Draw emits every shape through fn, styled by def unless the shape sets
// its own style, and returns the number of segments drawn.
func (s *Scene) Draw(fn draw.DebugLineFunc, def Style) int {
	total := 0
	for i := range s.Shapes {
		sh := &s.Shapes[i]
		st := sh.Style(def)
		c := &countingSink{Sink: draw.Debug(fn, st.Color, st.Duration, st.DepthTest)}
		sh.Draw(c)
		total += c.n
	}
	return total
}
