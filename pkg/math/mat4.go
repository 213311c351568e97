package math

// Mat4 is a column-major 4x4 matrix: element (row, col) lives at col*4+row,
// so m[12], m[13], m[14] hold the translation.
type Mat4 [16]float32

// Translate returns a matrix that offsets points by (x, y, z).
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// GroundPlane returns a matrix that lays the XZ plane onto screen axes:
// world X becomes screen X and world +Z becomes screen up (-Y), both scaled
// by pixels. World height ends up in Z.
func GroundPlane(pixels float32) Mat4 {
	return Mat4{
		pixels, 0, 0, 0,
		0, 0, 1, 0,
		0, -pixels, 0, 0,
		0, 0, 0, 1,
	}
}

// LookAt returns a right-handed view matrix for an eye looking at center.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Mul returns m * o, so o is applied to a point first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[c*4+k]
			}
			r[c*4+row] = sum
		}
	}
	return r
}

// TransformVec3 applies m to the point v (w = 1), dividing through by the
// resulting w when it is not 1.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	out := Vec3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
	if w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]; w != 0 && w != 1 {
		out = out.Scale(1 / w)
	}
	return out
}
