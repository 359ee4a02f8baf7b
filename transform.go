package scrollhero

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Pose describes a 2D placement: a pivot in local coordinates that is
// scaled, rotated and then moved to (X, Y).
type Pose struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64 // radians, clockwise
	PivotX, PivotY float64
}

// Matrix computes the affine matrix for the pose. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func (p Pose) Matrix() [6]float64 {
	sin, cos := math.Sincos(p.Rotation)

	sx, sy := p.ScaleX, p.ScaleY
	preTx := -p.PivotX * sx
	preTy := -p.PivotY * sy

	return [6]float64{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		cos*preTx - sin*preTy + p.X,
		sin*preTx + cos*preTy + p.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformRect maps the four corners of r through m, clockwise from the
// top-left.
func transformRect(m [6]float64, r Rect) [4]Vec2 {
	var q [4]Vec2
	q[0].X, q[0].Y = transformPoint(m, r.X, r.Y)
	q[1].X, q[1].Y = transformPoint(m, r.X+r.Width, r.Y)
	q[2].X, q[2].Y = transformPoint(m, r.X+r.Width, r.Y+r.Height)
	q[3].X, q[3].Y = transformPoint(m, r.X, r.Y+r.Height)
	return q
}

// boundsOf returns the axis-aligned bounding rect of a quad.
func boundsOf(q [4]Vec2) Rect {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
