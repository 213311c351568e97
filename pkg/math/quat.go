package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// QuatFromEuler builds a rotation from pitch (X), yaw (Y) and roll (Z) in
// degrees. Roll is applied first, then pitch, then yaw.
func QuatFromEuler(pitch, yaw, roll float32) Quat {
	qx := QuatFromAxisAngle(Right, Radians(pitch))
	qy := QuatFromAxisAngle(Up, Radians(yaw))
	qz := QuatFromAxisAngle(Forward, Radians(roll))
	return qy.Mul(qx).Mul(qz)
}

// QuatYaw returns a rotation of yaw degrees around the up axis.
func QuatYaw(yaw float32) Quat {
	return QuatFromAxisAngle(Up, Radians(yaw))
}

// LookRotation returns the rotation whose forward axis points along dir with
// no roll. A zero dir yields the identity.
func LookRotation(dir Vec3) Quat {
	if dir.IsZero() {
		return QuatIdentity()
	}
	yaw, pitch := YawPitch(dir)
	return QuatFromEuler(pitch, yaw, 0)
}

// YawPitch returns the yaw and pitch in degrees that point forward along dir.
func YawPitch(dir Vec3) (yaw, pitch float32) {
	horiz := math.Sqrt(float64(dir.X*dir.X + dir.Z*dir.Z))
	yaw = Degrees(float32(math.Atan2(float64(dir.X), float64(dir.Z))))
	pitch = Degrees(float32(math.Atan2(float64(-dir.Y), horiz)))
	return yaw, pitch
}

// Normalize returns q scaled to unit length. Degenerate input yields the
// identity.
func (q Quat) Normalize() Quat {
	l := float32(math.Sqrt(float64(q.Dot(q))))
	if l < 0.0001 {
		return QuatIdentity()
	}
	return q.scale(1 / l)
}

// Dot returns the 4D dot product of q and o.
func (q Quat) Dot(o Quat) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q Quat) scale(s float32) Quat {
	return Quat{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

func (q Quat) add(o Quat) Quat {
	return Quat{X: q.X + o.X, Y: q.Y + o.Y, Z: q.Z + o.Z, W: q.W + o.W}
}

// Slerp interpolates from q to o along the shorter arc. t is clamped to
// [0, 1].
func (q Quat) Slerp(o Quat, t float32) Quat {
	t = Clamp(t, 0, 1)
	cos := q.Dot(o)
	if cos < 0 {
		o, cos = o.scale(-1), -cos
	}

	// Nearly identical rotations: nlerp avoids dividing by sin(~0).
	if cos > 0.9995 {
		return q.add(o.add(q.scale(-1)).scale(t)).Normalize()
	}

	angle := math.Acos(float64(cos))
	sin := math.Sin(angle)
	a := float32(math.Sin((1-float64(t))*angle) / sin)
	b := float32(math.Sin(float64(t)*angle) / sin)
	return q.scale(a).add(o.scale(b))
}

// Mul multiplies two quaternions (combines rotations, other applied first).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Forward returns the rotated forward axis.
func (q Quat) Forward() Vec3 {
	return q.Rotate(Forward)
}

// Right returns the rotated right axis.
func (q Quat) Right() Vec3 {
	return q.Rotate(Right)
}

// Yaw returns the heading of the rotated forward axis in degrees.
func (q Quat) Yaw() float32 {
	yaw, _ := YawPitch(q.Forward())
	return yaw
}
