// Package draw computes wireframe primitives and hands every line segment to
// a caller-supplied Sink.
//
// Shapes are quads, cubes, circles, arcs and spheres, positioned by a center
// point and oriented by a quaternion. Nothing is buffered: each segment is
// passed to the sink as soon as it is computed, in a fixed order, so two
// calls with the same arguments produce identical segment sequences.
//
// Angles are in degrees. A zero-valued math.Quat is accepted as "no
// rotation" wherever a rotation is taken.
//
// The package holds no mutable state. Concurrent calls are safe as long as
// each one uses its own sink or the sink is safe for concurrent use.
package draw
