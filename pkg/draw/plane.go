package draw

import (
	"errors"
	"fmt"
	stdmath "math"
	"strings"

	"github.com/matrix889/ProceduralToolkit/pkg/math"
)

// ErrUnknownPlane is returned by ParsePlane for unrecognized names.
var ErrUnknownPlane = errors.New("unknown plane")

// Plane selects the two coordinate axes that host a flat shape. The third
// axis is held at zero before rotation.
type Plane uint8

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// Planes lists every plane in sphere drawing order.
var Planes = [...]Plane{PlaneXY, PlaneXZ, PlaneYZ}

// String returns "XY", "XZ" or "YZ".
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	default:
		return fmt.Sprintf("Plane(%d)", uint8(p))
	}
}

// ParsePlane parses a plane name, ignoring case.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "XY":
		return PlaneXY, nil
	case "XZ":
		return PlaneXZ, nil
	case "YZ":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlane, s)
}

// axes returns the component indices of the plane's first and second axis.
func (p Plane) axes() (int, int) {
	switch p {
	case PlaneXZ:
		return 0, 2
	case PlaneYZ:
		return 1, 2
	default:
		return 0, 1
	}
}

// Axes returns the unit vectors spanning the plane, used as the right and
// forward directions of a quad.
func (p Plane) Axes() (right, forward math.Vec3) {
	a, b := p.axes()
	return unitAxis(a), unitAxis(b)
}

func unitAxis(i int) math.Vec3 {
	var c [3]float32
	c[i] = 1
	return math.Vec3FromArray(c)
}

// PointOnCircle returns the point at angle degrees on a circle of the given
// radius centered at the origin of plane p.
func PointOnCircle(p Plane, radius, angle float32) math.Vec3 {
	rad := float64(angle * math.Deg2Rad)
	a, b := p.axes()
	var c [3]float32
	c[a] = radius * float32(stdmath.Cos(rad))
	c[b] = radius * float32(stdmath.Sin(rad))
	return math.Vec3FromArray(c)
}

// MarshalText implements encoding.TextMarshaler.
func (p Plane) MarshalText() ([]byte, error) {
	if p > PlaneYZ {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlane, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Plane) UnmarshalText(text []byte) error {
	v, err := ParsePlane(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
