package main

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/stl"
)

func loadMesh(filename string) (*mesh.Mesh, error) {
	m, err := stl.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error parsing STL file: %w", err)
	}
	return m, nil
}

func saveMesh(filename string, m *mesh.Mesh) error {
	if err := stl.WriteFile(filename, m); err != nil {
		return fmt.Errorf("error writing STL file: %w", err)
	}
	return nil
}

// vectorFlag converts an x,y,z flag value
func vectorFlag(name string, values []float64) (geometry.Vector3, error) {
	if len(values) != 3 {
		return geometry.Vector3{}, fmt.Errorf("--%s needs 3 values x,y,z, got %d", name, len(values))
	}
	return geometry.NewVector3(values[0], values[1], values[2]), nil
}
