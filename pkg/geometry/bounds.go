package geometry

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates a zero-volume box around a single point
func NewBoundingBox(point Vector3) BoundingBox {
	return BoundingBox{Min: point, Max: point}
}

// BoundsOf returns the tightest box enclosing all points.
// The second result is false when points is empty, since no box encloses nothing.
func BoundsOf(points []Vector3) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	bbox := NewBoundingBox(points[0])
	for _, p := range points[1:] {
		bbox.Extend(p)
	}
	return bbox, true
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Size().Mul(0.5))
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// Contains reports whether the point lies inside or on the box
func (b BoundingBox) Contains(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Translate returns the box shifted by delta
func (b BoundingBox) Translate(delta Vector3) BoundingBox {
	return BoundingBox{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}
