package geometry

import "github.com/go-gl/mathgl/mgl64"

// Transform bundles a scale, a rotation and a translation.
// Applied to a point p it yields Rotation*(Scale∘p) + Translation:
// scale first, then rotate about the origin, then translate.
type Transform struct {
	Scale       Vector3
	Rotation    mgl64.Mat3
	Translation Vector3
}

// Identity returns a transform that leaves every point unchanged
func Identity() Transform {
	return Transform{
		Scale:    NewVector3(1, 1, 1),
		Rotation: mgl64.Ident3(),
	}
}

// Scaling returns a transform that only scales
func Scaling(sx, sy, sz float64) Transform {
	t := Identity()
	t.Scale = NewVector3(sx, sy, sz)
	return t
}

// Translation returns a transform that only translates
func Translation(tx, ty, tz float64) Transform {
	t := Identity()
	t.Translation = NewVector3(tx, ty, tz)
	return t
}

// RotationRadians returns a transform that only rotates, by roll rx about X,
// pitch ry about Y and yaw rz about Z, applied in that order (R = Rz*Ry*Rx).
func RotationRadians(rx, ry, rz float64) Transform {
	t := Identity()
	t.Rotation = EulerRotation(rx, ry, rz)
	return t
}

// RotationDegrees is RotationRadians with angles given in degrees
func RotationDegrees(rx, ry, rz float64) Transform {
	return RotationRadians(mgl64.DegToRad(rx), mgl64.DegToRad(ry), mgl64.DegToRad(rz))
}

// EulerRotation builds Rz*Ry*Rx from angles in radians
func EulerRotation(rx, ry, rz float64) mgl64.Mat3 {
	return mgl64.Rotate3DZ(rz).Mul3(mgl64.Rotate3DY(ry)).Mul3(mgl64.Rotate3DX(rx))
}

// RotationBetween returns the rotation that turns direction from onto direction to.
// Neither vector needs to be normalized, but both must be non-zero.
func RotationBetween(from, to Vector3) (mgl64.Mat3, error) {
	f, err := from.Unit()
	if err != nil {
		return mgl64.Mat3{}, err
	}
	d, err := to.Unit()
	if err != nil {
		return mgl64.Mat3{}, err
	}
	return mgl64.QuatBetweenVectors(f.Vec3(), d.Vec3()).Mat4().Mat3(), nil
}

// Rotate applies a rotation matrix to a point treated as a vector from the origin
func Rotate(r mgl64.Mat3, p Vector3) Vector3 {
	return FromVec3(r.Mul3x1(p.Vec3()))
}

// ApplyTo transforms a single point
func (t Transform) ApplyTo(p Vector3) Vector3 {
	return Rotate(t.Rotation, p.MulElem(t.Scale)).Add(t.Translation)
}
