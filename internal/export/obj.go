// Package export writes stage geometry in Wavefront OBJ form for external tools.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Faultbox/blueocean-stage/internal/engine/debug"
	"github.com/Faultbox/blueocean-stage/internal/engine/terrain"
)

// ErrNilMesh is returned when WriteOBJ is given no mesh.
var ErrNilMesh = errors.New("export: nil mesh")

// WriteOBJ writes mesh as v/vt/vn records and 1-based triangle faces.
// Normals are written as stored, so their length keeps the occlusion factor.
func WriteOBJ(w io.Writer, mesh *terrain.Mesh) error {
	if mesh == nil {
		return ErrNilMesh
	}
	if len(mesh.Indices)%3 != 0 {
		return fmt.Errorf("export: index count %d is not a multiple of 3", len(mesh.Indices))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(mesh.Vertices), len(mesh.Indices)/3)

	for _, v := range mesh.Vertices {
		writeRecord(bw, "v", v.Position[:]...)
	}
	for _, v := range mesh.Vertices {
		writeRecord(bw, "vt", v.TexCoord[:]...)
	}
	for _, v := range mesh.Vertices {
		writeRecord(bw, "vn", v.Normal[:]...)
	}

	n := uint32(len(mesh.Vertices))
	for i := 0; i < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		if a >= n || b >= n || c >= n {
			return fmt.Errorf("export: triangle %d references vertex beyond %d", i/3, n)
		}
		// Positions, texcoords and normals share one index space.
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a+1, a+1, a+1, b+1, b+1, b+1, c+1, c+1, c+1)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: writing mesh: %w", err)
	}
	return nil
}

// WriteBoundsOBJ writes b as 24 line endpoints and 12 line records.
func WriteBoundsOBJ(w io.Writer, b terrain.Bounds) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# bounds")

	lines := debug.BoundsWireframe(b)
	for i := 0; i < len(lines); i += 3 {
		writeRecord(bw, "v", lines[i:i+3]...)
	}
	for i := 1; i <= debug.WireframeVertexCount; i += 2 {
		fmt.Fprintf(bw, "l %d %d\n", i, i+1)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: writing bounds: %w", err)
	}
	return nil
}

func writeRecord(w *bufio.Writer, tag string, values ...float32) {
	w.WriteString(tag)
	for _, v := range values {
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	w.WriteByte('\n')
}
