// Package recipe loads transform recipes from YAML.
//
// A recipe names the three factors of a transform; any factor may be left out:
//
//	scale: [2, 2, 2]
//	rotate: [0, 0, 90]   # degrees about X, Y, Z
//	translate: [10, 0, 0]
//
// Setting radians: true reads rotate in radians.
package recipe

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// Recipe is the YAML form of a geometry.Transform
type Recipe struct {
	Scale     *[3]float64 `yaml:"scale,omitempty"`
	Rotate    *[3]float64 `yaml:"rotate,omitempty"`
	Radians   bool        `yaml:"radians,omitempty"`
	Translate *[3]float64 `yaml:"translate,omitempty"`
}

// Load reads and decodes a recipe file
func Load(filename string) (*Recipe, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipe %s: %w", filename, err)
	}
	return r, nil
}

// Parse decodes a recipe. Unknown keys are rejected.
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Transform builds the transform the recipe describes.
// Missing factors are left at identity.
func (r *Recipe) Transform() geometry.Transform {
	t := geometry.Identity()
	if r.Scale != nil {
		t.Scale = vector(*r.Scale)
	}
	if r.Rotate != nil {
		a := *r.Rotate
		if r.Radians {
			t.Rotation = geometry.RotationRadians(a[0], a[1], a[2]).Rotation
		} else {
			t.Rotation = geometry.RotationDegrees(a[0], a[1], a[2]).Rotation
		}
	}
	if r.Translate != nil {
		t.Translation = vector(*r.Translate)
	}
	return t
}

func vector(a [3]float64) geometry.Vector3 {
	return geometry.NewVector3(a[0], a[1], a[2])
}
