package ember

import "math"

// Matrix33 represents a 3x3 affine transformation matrix in row-major
// order, using the row-vector convention:
//
//	p' = [x y 1] * M
//
// Translation therefore lives in the third row, and A.Mul(B) produces a
// matrix that applies A first and B second. This matches the convention
// used by Transform2dPlug's matrix composition, which is order-sensitive.
type Matrix33 [3][3]float64

// Identity33 returns the identity transformation matrix.
func Identity33() Matrix33 {
	return Matrix33{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translate2D creates a translation matrix.
func Translate2D(t Vec2) Matrix33 {
	return Matrix33{
		{1, 0, 0},
		{0, 1, 0},
		{t.X, t.Y, 1},
	}
}

// Scale2D creates a scaling matrix.
func Scale2D(s Vec2) Matrix33 {
	return Matrix33{
		{s.X, 0, 0},
		{0, s.Y, 0},
		{0, 0, 1},
	}
}

// Rotate2D creates a rotation matrix (angle in radians, counter-clockwise).
func Rotate2D(angle float64) Matrix33 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix33{
		{cos, sin, 0},
		{-sin, cos, 0},
		{0, 0, 1},
	}
}

// Radians converts an angle from degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts an angle from radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Mul multiplies two matrices (m * other). Under the row-vector
// convention the product applies m first and other second.
func (m Matrix33) Mul(other Matrix33) Matrix33 {
	var r Matrix33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return r
}

// TransformPoint applies the transformation to a point.
func (m Matrix33) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: p.X*m[0][0] + p.Y*m[1][0] + m[2][0],
		Y: p.X*m[0][1] + p.Y*m[1][1] + m[2][1],
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix33) TransformVector(v Vec2) Vec2 {
	return Vec2{
		X: v.X*m[0][0] + v.Y*m[1][0],
		Y: v.X*m[0][1] + v.Y*m[1][1],
	}
}

// Determinant2D returns the determinant of the upper-left 2x2 block.
// A negative value means the transform flips orientation.
func (m Matrix33) Determinant2D() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix33) Invert() Matrix33 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if math.Abs(det) < 1e-12 {
		return Identity33()
	}

	invDet := 1.0 / det
	var r Matrix33
	r[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	r[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	r[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	r[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	r[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	r[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	r[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	r[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	r[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return r
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix33) IsIdentity() bool {
	return m == Identity33()
}
