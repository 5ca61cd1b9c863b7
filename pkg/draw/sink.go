package draw

import (
	"time"

	"github.com/matrix889/ProceduralToolkit/pkg/math"
)

// Sink consumes line segments. DrawLine is called once per segment, in
// emission order, on the calling goroutine.
type Sink interface {
	DrawLine(start, end math.Vec3)
}

// LineFunc adapts an immediate-mode line function to Sink.
type LineFunc func(start, end math.Vec3)

// DrawLine calls f(start, end).
func (f LineFunc) DrawLine(start, end math.Vec3) {
	f(start, end)
}

// DebugLineFunc draws a line that the host keeps visible for duration,
// optionally hidden by closer geometry when depthTest is set.
type DebugLineFunc func(start, end math.Vec3, color math.Color, duration time.Duration, depthTest bool)

// DebugLine binds color, duration and depth testing to a DebugLineFunc so it
// can be used as a Sink.
type DebugLine struct {
	Draw      DebugLineFunc
	Color     math.Color
	Duration  time.Duration
	DepthTest bool
}

// Debug returns a Sink forwarding to fn with the given style.
func Debug(fn DebugLineFunc, color math.Color, duration time.Duration, depthTest bool) DebugLine {
	return DebugLine{Draw: fn, Color: color, Duration: duration, DepthTest: depthTest}
}

// DrawLine implements Sink.
func (d DebugLine) DrawLine(start, end math.Vec3) {
	d.Draw(start, end, d.Color, d.Duration, d.DepthTest)
}

// Segment is one emitted line.
type Segment struct {
	Start, End math.Vec3
}

// Recorder is a Sink that keeps every segment it receives.
type Recorder struct {
	Segments []Segment
}

// DrawLine implements Sink.
func (r *Recorder) DrawLine(start, end math.Vec3) {
	r.Segments = append(r.Segments, Segment{start, end})
}

// Reset drops recorded segments, keeping the backing array.
func (r *Recorder) Reset() {
	r.Segments = r.Segments[:0]
}

// Counter is a Sink that only counts segments.
type Counter int

// DrawLine implements Sink.
func (c *Counter) DrawLine(_, _ math.Vec3) {
	*c++
}
