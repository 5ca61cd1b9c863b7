package debug

import (
	"github.com/matrix889/ProceduralToolkit/pkg/draw"
	"github.com/matrix889/ProceduralToolkit/pkg/math"
)

// Grid is a flat cell grid on the ground (XZ) plane, starting at the origin.
type Grid struct {
	Width, Height int
	CellSize      float32
}

// Draw emits the grid lines covering cells [minX, maxX) x [minY, maxY) at
// the given height. Bounds are clamped to the grid. Lines along Z come
// first, then lines along X.
func (g Grid) Draw(sink draw.Sink, minX, minY, maxX, maxY int, height float32) int {
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, g.Width), min(maxY, g.Height)
	if minX > maxX || minY > maxY {
		return 0
	}

	n := 0
	z0, z1 := float32(minY)*g.CellSize, float32(maxY)*g.CellSize
	for x := minX; x <= maxX; x++ {
		wx := float32(x) * g.CellSize
		sink.DrawLine(math.Vec3{X: wx, Y: height, Z: z0}, math.Vec3{X: wx, Y: height, Z: z1})
		n++
	}

	x0, x1 := float32(minX)*g.CellSize, float32(maxX)*g.CellSize
	for y := minY; y <= maxY; y++ {
		wz := float32(y) * g.CellSize
		sink.DrawLine(math.Vec3{X: x0, Y: height, Z: wz}, math.Vec3{X: x1, Y: height, Z: wz})
		n++
	}
	return n
}

// Outline draws the grid's outer border as a quad.
func (g Grid) Outline(sink draw.Sink, height float32) {
	w, h := float32(g.Width)*g.CellSize, float32(g.Height)*g.CellSize
	center := math.Vec3{X: w / 2, Y: height, Z: h / 2}
	draw.WireQuad(draw.PlaneXZ, sink, center, math.QuatIdentity(), math.Vec2{X: w, Y: h})
}
