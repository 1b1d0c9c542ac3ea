package geometry

// Triangle is a snapshot of one mesh face: its corners, edge vectors,
// normal and local bounding box. It is computed once from three points and
// never updated, so a Triangle taken before the owning mesh changes is stale.
type Triangle struct {
	Vertices [3]Vector3
	// Edges holds v1-v0, v2-v1 and v0-v2.
	Edges [3]Vector3
	// Normal is Edges[1] x Edges[0], normalized. Zero when the triangle is degenerate.
	Normal     Vector3
	Bounds     BoundingBox
	Dimensions Vector3
	// Center is the center of Bounds, not the centroid.
	Center Vector3
}

// NewTriangle derives a triangle from three corner positions
func NewTriangle(a, b, c Vector3) Triangle {
	t := Triangle{
		Vertices: [3]Vector3{a, b, c},
		Edges:    [3]Vector3{b.Sub(a), c.Sub(b), a.Sub(c)},
	}

	// The error only tells us the normal is undefined; Degenerate reports it.
	t.Normal, _ = t.Edges[1].Cross(t.Edges[0]).Unit()

	t.Bounds, _ = BoundsOf(t.Vertices[:])
	t.Dimensions = t.Bounds.Size()
	t.Center = t.Bounds.Center()
	return t
}

// Degenerate reports whether the triangle has no defined normal
func (t Triangle) Degenerate() bool {
	return t.Normal == Vector3{}
}

// UnitNormal returns the normal, or ErrDegenerate when it is undefined
func (t Triangle) UnitNormal() (Vector3, error) {
	if t.Degenerate() {
		return Vector3{}, ErrDegenerate
	}
	return t.Normal, nil
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	ab := t.Vertices[1].Sub(t.Vertices[0])
	ac := t.Vertices[2].Sub(t.Vertices[0])
	return ab.Cross(ac).Length() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.Edges[0].Length(),
		t.Edges[1].Length(),
		t.Edges[2].Length(),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Centroid returns the average of the three corners
func (t Triangle) Centroid() Vector3 {
	return t.Vertices[0].Add(t.Vertices[1]).Add(t.Vertices[2]).Mul(1.0 / 3.0)
}

// CenterOnPoint returns the triangle expressed relative to point: corners and
// bounds are shifted by -point, Center becomes point, and the normal and
// dimensions carry over unchanged.
func (t Triangle) CenterOnPoint(point Vector3) Triangle {
	shifted := t
	for i, v := range t.Vertices {
		shifted.Vertices[i] = v.Sub(point)
	}
	shifted.Bounds = t.Bounds.Translate(point.Negate())
	shifted.Center = point
	return shifted
}
