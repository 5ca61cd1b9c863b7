// Package debug hosts timed debug lines and the engine's debug wireframes.
package debug

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/matrix889/ProceduralToolkit/internal/logger"
	"github.com/matrix889/ProceduralToolkit/pkg/math"
)

// Line is a debug line held until Expires.
type Line struct {
	Start, End math.Vec3
	Color      math.Color
	DepthTest  bool
	Expires    time.Time
}

// Buffer keeps timed debug lines. Its DrawLine method has the
// draw.DebugLineFunc signature, so a Buffer can back any debug sink.
// A Buffer is safe for concurrent use.
type Buffer struct {
	mu    sync.Mutex
	lines []Line
	now   func() time.Time
}

// NewBuffer creates an empty buffer using the wall clock.
func NewBuffer() *Buffer {
	return NewBufferWithClock(time.Now)
}

// NewBufferWithClock creates an empty buffer reading time from now.
func NewBufferWithClock(now func() time.Time) *Buffer {
	return &Buffer{now: now}
}

// DrawLine stores a line for duration. A zero or negative duration keeps the
// line until the next Expire.
func (b *Buffer) DrawLine(start, end math.Vec3, color math.Color, duration time.Duration, depthTest bool) {
	if duration < 0 {
		duration = 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, Line{
		Start:     start,
		End:       end,
		Color:     color,
		DepthTest: depthTest,
		Expires:   b.now().Add(duration),
	})
}

// Lines returns a snapshot of the stored lines in insertion order.
func (b *Buffer) Lines() []Line {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Partition splits the stored lines by depth testing.
func (b *Buffer) Partition() (depthTested, overlay []Line) {
	return Partition(b.Lines())
}

// Partition splits lines into depth-tested and overlay sets, keeping the
// order within each set.
func Partition(lines []Line) (depthTested, overlay []Line) {
	for _, l := range lines {
		if l.DepthTest {
			depthTested = append(depthTested, l)
		} else {
			overlay = append(overlay, l)
		}
	}
	return depthTested, overlay
}

// Expire drops every line whose expiry is not after now and returns how
// many were dropped.
func (b *Buffer) Expire(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.lines[:0]
	for _, l := range b.lines {
		if l.Expires.After(now) {
			kept = append(kept, l)
		}
	}
	dropped := len(b.lines) - len(kept)
	clear(b.lines[len(kept):])
	b.lines = kept

	if dropped > 0 {
		logger.Debug("expired debug lines",
			zap.Int("dropped", dropped),
			zap.Int("live", len(kept)))
	}
	return dropped
}

// Snapshot returns the lines still alive at offset after now. A zero
// offset returns every line. Expired lines are dropped from the buffer.
func (b *Buffer) Snapshot(offset time.Duration) []Line {
	if offset > 0 {
		b.Expire(b.now().Add(offset))
	}
	return b.Lines()
}

// Len returns the number of stored lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}
