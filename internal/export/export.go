// Package export writes debug lines as plain text or Wavefront OBJ.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/matrix889/ProceduralToolkit/internal/debug"
	"github.com/matrix889/ProceduralToolkit/pkg/math"
)

// ErrUnknownFormat is returned by Write for unsupported formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Output formats.
const (
	FormatText = "text"
	FormatOBJ  = "obj"
)

// CheckFormat reports whether Write supports format.
func CheckFormat(format string) error {
	switch format {
	case FormatText, FormatOBJ:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Write encodes lines to w in the named format.
func Write(w io.Writer, format string, lines []debug.Line) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	if format == FormatOBJ {
		return WriteOBJ(w, lines)
	}
	return WriteText(w, lines)
}

// WriteText writes one line per segment:
// x0 y0 z0 x1 y1 z1 r g b a.
func WriteText(w io.Writer, lines []debug.Line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		writeVec(bw, l.Start)
		bw.WriteByte(' ')
		writeVec(bw, l.End)
		for _, c := range [4]float32{l.Color.R, l.Color.G, l.Color.B, l.Color.A} {
			bw.WriteByte(' ')
			bw.WriteString(formatFloat(c))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// OBJ group names.
const (
	GroupDepth   = "depth"
	GroupOverlay = "overlay"
)

// WriteOBJ writes each segment as two vertices and one line element.
// Depth-tested lines go in group "depth" and the rest in group "overlay";
// empty groups are omitted. Vertex indices are 1-based as the format
// requires and run on across groups.
func WriteOBJ(w io.Writer, lines []debug.Line) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d segments\n", len(lines))

	tested, overlay := debug.Partition(lines)
	next := 1
	for _, g := range []struct {
		name  string
		lines []debug.Line
	}{
		{GroupDepth, tested},
		{GroupOverlay, overlay},
	} {
		if len(g.lines) == 0 {
			continue
		}
		fmt.Fprintf(bw, "g %s\n", g.name)
		for _, l := range g.lines {
			bw.WriteString("v ")
			writeVec(bw, l.Start)
			bw.WriteString("\nv ")
			writeVec(bw, l.End)
			bw.WriteByte('\n')
		}
		for range g.lines {
			fmt.Fprintf(bw, "l %d %d\n", next, next+1)
			next += 2
		}
	}
	return bw.Flush()
}

func writeVec(bw *bufio.Writer, v math.Vec3) {
	bw.WriteString(formatFloat(v.X))
	bw.WriteByte(' ')
	bw.WriteString(formatFloat(v.Y))
	bw.WriteByte(' ')
	bw.WriteString(formatFloat(v.Z))
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
