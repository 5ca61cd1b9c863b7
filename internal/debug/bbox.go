package debug

import (
	"github.com/matrix889/ProceduralToolkit/pkg/draw"
	"github.com/matrix889/ProceduralToolkit/pkg/math"
)

// DefaultBBoxPadding is the default padding for selection boxes.
const DefaultBBoxPadding = 1.0

// BBoxEdgeCount is the number of segments in a bbox wireframe.
const BBoxEdgeCount = 12

// WireBBox draws an AABB wireframe.
// bbox is [minX, minY, minZ, maxX, maxY, maxZ] in model space.
// scale scales each axis before position offsets the box in world space.
// padding expands the box by the given amount on all sides.
func WireBBox(sink draw.Sink, bbox [6]float32, position, scale [3]float32, padding float32) {
	lo := math.Vec3{X: bbox[0], Y: bbox[1], Z: bbox[2]}
	hi := math.Vec3{X: bbox[3], Y: bbox[4], Z: bbox[5]}
	s := math.Vec3FromArray(scale)
	lo, hi = lo.Mul(s), hi.Mul(s)

	// Handle negative scales
	if lo.X > hi.X {
		lo.X, hi.X = hi.X, lo.X
	}
	if lo.Y > hi.Y {
		lo.Y, hi.Y = hi.Y, lo.Y
	}
	if lo.Z > hi.Z {
		lo.Z, hi.Z = hi.Z, lo.Z
	}

	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	pos := math.Vec3FromArray(position)
	draw.WireBounds(sink, lo.Sub(pad).Add(pos), hi.Add(pad).Add(pos))
}
