package draw

import (
	stdmath "math"

	"github.com/matrix889/ProceduralToolkit/pkg/math"
)

const (
	// CircleSegments is the number of segments in a full circle.
	CircleSegments = 64
	// CircleSegmentAngle is the largest angle, in degrees, one arc segment
	// may span.
	CircleSegmentAngle float32 = 360.0 / CircleSegments
)

// Segments picks the segment count and per-segment angle for an arc from
// fromAngle to toAngle. Ranges wider than CircleSegmentAngle are split into
// floor(range/CircleSegmentAngle) equal steps; anything else, including
// empty and negative ranges, becomes a single segment spanning the range.
//
// The count is not clamped. A range whose segment count does not fit in an
// int, such as +Inf or 1e30, converts as Go's float-to-int conversion does
// on the platform (math.MinInt64 on amd64), and WireArc then draws nothing.
// Callers drawing untrusted angles should bound the range first.
func Segments(fromAngle, toAngle float32) (count int, step float32) {
	r := toAngle - fromAngle
	if r > CircleSegmentAngle {
		count = int(stdmath.Floor(float64(r / CircleSegmentAngle)))
		return count, r / float32(count)
	}
	return 1, r
}

// WireArc draws an arc on plane p from fromAngle to toAngle degrees.
// toAngle below fromAngle yields one segment traversed backwards.
func WireArc(p Plane, sink Sink, center math.Vec3, rotation math.Quat, radius, fromAngle, toAngle float32) {
	count, step := Segments(fromAngle, toAngle)
	WireArcSegments(p, sink, center, rotation, radius, fromAngle, count, step)
}

// WireArcSegments draws count segments of step degrees each, starting at
// fromAngle. Each sampled point is rotated, then offset by center.
func WireArcSegments(p Plane, sink Sink, center math.Vec3, rotation math.Quat, radius, fromAngle float32, count int, step float32) {
	angle := fromAngle
	for i := 0; i < count; i++ {
		a := center.Add(rotation.Rotate(PointOnCircle(p, radius, angle)))
		angle += step
		b := center.Add(rotation.Rotate(PointOnCircle(p, radius, angle)))
		sink.DrawLine(a, b)
	}
}

// WireCircle draws a full circle on plane p as CircleSegments segments.
func WireCircle(p Plane, sink Sink, center math.Vec3, rotation math.Quat, radius float32) {
	WireArcSegments(p, sink, center, rotation, radius, 0, CircleSegments, CircleSegmentAngle)
}

// WireSphere draws three great circles, on XY, XZ and YZ in that order.
func WireSphere(sink Sink, center math.Vec3, rotation math.Quat, radius float32) {
	for _, p := range Planes {
		WireCircle(p, sink, center, rotation, radius)
	}
}
