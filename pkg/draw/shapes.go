package draw

import "github.com/matrix889/ProceduralToolkit/pkg/math"

// WireQuad draws a rectangle on plane p centered at center. scale.X sizes
// the plane's first axis and scale.Y its second.
func WireQuad(p Plane, sink Sink, center math.Vec3, rotation math.Quat, scale math.Vec2) {
	right, forward := p.Axes()
	WireQuadAxes(sink, center, rotation, scale, right, forward)
}

// WireQuadAxes draws a rectangle spanned by planeRight and planeForward.
// The edges form a closed loop starting at the forward-right corner:
// forward-right, back-right, back-left, forward-left.
func WireQuadAxes(sink Sink, center math.Vec3, rotation math.Quat, scale math.Vec2, planeRight, planeForward math.Vec3) {
	right := rotation.Rotate(planeRight).Scale(scale.X)
	forward := rotation.Rotate(planeForward).Scale(scale.Y)

	forwardRight := center.Add(right.Scale(0.5)).Add(forward.Scale(0.5))
	backRight := forwardRight.Sub(forward)
	backLeft := backRight.Sub(right)
	forwardLeft := forwardRight.Sub(right)

	sink.DrawLine(forwardRight, backRight)
	sink.DrawLine(backRight, backLeft)
	sink.DrawLine(backLeft, forwardLeft)
	sink.DrawLine(forwardLeft, forwardRight)
}

// WireCube draws the 12 edges of a box: the near face, the far face, then
// the four edges joining them.
func WireCube(sink Sink, center math.Vec3, rotation math.Quat, scale math.Vec3) {
	right := rotation.Rotate(math.Vec3Right).Scale(scale.X)
	up := rotation.Rotate(math.Vec3Up).Scale(scale.Y)
	forward := rotation.Rotate(math.Vec3Forward).Scale(scale.Z)

	a1 := center.Add(right.Scale(0.5)).Add(up.Scale(0.5)).Add(forward.Scale(0.5))
	b1 := a1.Sub(up)
	c1 := b1.Sub(right)
	d1 := a1.Sub(right)

	a2 := a1.Sub(forward)
	b2 := b1.Sub(forward)
	c2 := c1.Sub(forward)
	d2 := d1.Sub(forward)

	// Near face
	sink.DrawLine(a1, b1)
	sink.DrawLine(b1, c1)
	sink.DrawLine(c1, d1)
	sink.DrawLine(d1, a1)

	// Far face
	sink.DrawLine(a2, b2)
	sink.DrawLine(b2, c2)
	sink.DrawLine(c2, d2)
	sink.DrawLine(d2, a2)

	// Connecting edges
	sink.DrawLine(a1, a2)
	sink.DrawLine(b1, b2)
	sink.DrawLine(c1, c2)
	sink.DrawLine(d1, d2)
}

// WireBounds draws the axis-aligned box between min and max.
func WireBounds(sink Sink, min, max math.Vec3) {
	center := min.Add(max).Scale(0.5)
	WireCube(sink, center, math.QuatIdentity(), max.Sub(min))
}
