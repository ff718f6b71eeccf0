package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/blueocean-stage/internal/engine/terrain"
)

// StageFileName returns the OBJ file name for the chunk at (x, z).
func StageFileName(x, z int) string {
	return fmt.Sprintf("stage_%d_%d.obj", x, z)
}

// BoundsFileName returns the bounds OBJ file name for the chunk at (x, z).
func BoundsFileName(x, z int) string {
	return fmt.Sprintf("stage_%d_%d_bounds.obj", x, z)
}

// SaveStage writes the mesh of chunk (x, z) into dir, plus its bounds when withBounds is set.
// It returns the paths written.
func SaveStage(dir string, x, z int, mesh *terrain.Mesh, bounds terrain.Bounds, withBounds bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("export: creating %s: %w", dir, err)
	}

	meshPath := filepath.Join(dir, StageFileName(x, z))
	if err := writeFile(meshPath, func(w io.Writer) error { return WriteOBJ(w, mesh) }); err != nil {
		return nil, err
	}
	paths := []string{meshPath}

	if withBounds {
		boundsPath := filepath.Join(dir, BoundsFileName(x, z))
		if err := writeFile(boundsPath, func(w io.Writer) error { return WriteBoundsOBJ(w, bounds) }); err != nil {
			return paths, err
		}
		paths = append(paths, boundsPath)
	}

	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: closing %s: %w", path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
