package math

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, eps float32) bool {
	return a.Distance(b) <= eps
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
	if (Quat{}).Normalize() != QuatIdentity() {
		t.Error("Normalize of zero quaternion should fall back to identity")
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3Up, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotateIdentityIsExact(t *testing.T) {
	vs := []Vec3{{1, 2, 3}, {-0.5, 0.25, 1e6}, Vec3Zero}
	for _, v := range vs {
		if got := QuatIdentity().Rotate(v); got != v {
			t.Errorf("identity.Rotate(%v) = %v", v, got)
		}
		if got := (Quat{}).Rotate(v); got != v {
			t.Errorf("zero.Rotate(%v) = %v", v, got)
		}
	}
}

func TestQuatRotate(t *testing.T) {
	tests := []struct {
		name string
		q    Quat
		in   Vec3
		want Vec3
	}{
		{"yaw 90 right", QuatFromAxisAngle(Vec3Up, float32(math.Pi/2)), Vec3Right, Vec3{0, 0, -1}},
		{"yaw 90 forward", QuatFromAxisAngle(Vec3Up, float32(math.Pi/2)), Vec3Forward, Vec3Right},
		{"pitch 90 up", QuatFromAxisAngle(Vec3Right, float32(math.Pi/2)), Vec3Up, Vec3Forward},
		{"roll 180", QuatFromAxisAngle(Vec3Forward, float32(math.Pi)), Vec3{1, 1, 0}, Vec3{-1, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.q.Rotate(tt.in)
			if !vecNear(got, tt.want, 1e-5) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuatRotateMatchesMatrix(t *testing.T) {
	q := QuatFromEuler(30, 45, 60)
	m := q.ToMat4()
	for _, v := range []Vec3{Vec3Right, Vec3Up, Vec3Forward, {1, -2, 3}} {
		if a, b := q.Rotate(v), m.TransformDirection(v); !vecNear(a, b, 1e-5) {
			t.Errorf("Rotate(%v) = %v, matrix gives %v", v, a, b)
		}
	}

	yaw := QuatFromEuler(0, 90, 0)
	if a, b := yaw.Rotate(Vec3Right), RotateY(float32(math.Pi/2)).TransformDirection(Vec3Right); !vecNear(a, b, 1e-5) {
		t.Errorf("yaw Rotate = %v, RotateY gives %v", a, b)
	}
}

func TestQuatFromEulerOrder(t *testing.T) {
	// z first, then x, then y
	q := QuatFromEuler(90, 90, 0)
	got := q.Rotate(Vec3Up)
	// up -> forward under pitch, forward -> right under yaw
	if !vecNear(got, Vec3Right, 1e-5) {
		t.Errorf("QuatFromEuler(90,90,0).Rotate(up) = %v, want %v", got, Vec3Right)
	}
}

func TestQuatToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}
