package draw

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matrix889/ProceduralToolkit/pkg/math"
)

var approx = cmpopts.EquateApprox(0, 1e-5)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func v3(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }

func seg(a, b math.Vec3) Segment { return Segment{Start: a, End: b} }

// distinct returns the unique endpoints in first-seen order.
func distinct(segs []Segment) []math.Vec3 {
	seen := map[math.Vec3]bool{}
	var out []math.Vec3
	for _, s := range segs {
		for _, p := range []math.Vec3{s.Start, s.End} {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}
