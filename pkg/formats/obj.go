package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/arbor/pkg/treemesh"
)

// OBJ errors.
var (
	ErrEmptyMesh       = errors.New("obj: mesh has no triangles")
	ErrMalformedBuffer = errors.New("obj: buffer lengths do not match")
)

// OBJOptions controls Wavefront OBJ output.
type OBJOptions struct {
	// ObjectName is written as the "o" statement when non-empty.
	ObjectName string
	// Comment lines written at the top of the file.
	Comments []string
}

// WriteOBJ writes welded mesh buffers as a Wavefront OBJ document with
// positions, texture coordinates and normals sharing one index per vertex.
func WriteOBJ(w io.Writer, b *treemesh.Buffers, opts OBJOptions) error {
	if b.TriangleCount() == 0 {
		return ErrEmptyMesh
	}
	n := b.VertexCount()
	if len(b.Positions) != 3*n || len(b.Normals) != 3*n || len(b.UVs) != 2*n || len(b.Indices)%3 != 0 {
		return ErrMalformedBuffer
	}

	bw := bufio.NewWriter(w)

	for _, c := range opts.Comments {
		fmt.Fprintf(bw, "# %s\n", c)
	}
	if opts.ObjectName != "" {
		fmt.Fprintf(bw, "o %s\n", opts.ObjectName)
	}

	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "v %g %g %g\n", b.Positions[3*i], b.Positions[3*i+1], b.Positions[3*i+2])
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "vt %g %g\n", b.UVs[2*i], b.UVs[2*i+1])
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "vn %g %g %g\n", b.Normals[3*i], b.Normals[3*i+1], b.Normals[3*i+2])
	}

	for t := 0; t < b.TriangleCount(); t++ {
		// OBJ indices are 1-based
		a, c, d := b.Indices[3*t]+1, b.Indices[3*t+1]+1, b.Indices[3*t+2]+1
		if a > uint32(n) || c > uint32(n) || d > uint32(n) {
			return fmt.Errorf("%w: triangle %d references vertex past %d", ErrMalformedBuffer, t, n)
		}
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, c, c, c, d, d, d)
	}

	return bw.Flush()
}

// SaveOBJ writes the buffers to path, creating parent directories as needed.
func SaveOBJ(path string, b *treemesh.Buffers, opts OBJOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteOBJ(f, b, opts); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
