package scrollhero

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- Pose.Matrix ---

func TestPoseIdentity(t *testing.T) {
	got := Pose{ScaleX: 1, ScaleY: 1}.Matrix()
	assertMatrix(t, "identity", got, identityTransform)
}

func TestPoseTranslation(t *testing.T) {
	got := Pose{X: 10, Y: 20, ScaleX: 1, ScaleY: 1}.Matrix()
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestPoseScale(t *testing.T) {
	got := Pose{ScaleX: 2, ScaleY: 3}.Matrix()
	assertMatrix(t, "scale", got, [6]float64{2, 0, 0, 3, 0, 0})
}

func TestPoseRotation90(t *testing.T) {
	got := Pose{ScaleX: 1, ScaleY: 1, Rotation: math.Pi / 2}.Matrix()
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, [6]float64{0, 1, -1, 0, 0, 0})
}

func TestPosePivot(t *testing.T) {
	got := Pose{X: 100, Y: 200, ScaleX: 1, ScaleY: 1, PivotX: 16, PivotY: 16}.Matrix()
	// T(100,200) * T(-16,-16) = [1,0,0,1, 84, 184]
	assertMatrix(t, "pivot", got, [6]float64{1, 0, 0, 1, 84, 184})
}

func TestPoseScaleAboutPivotKeepsPivotFixed(t *testing.T) {
	m := Pose{X: 400, Y: 300, ScaleX: 0.94, ScaleY: 0.94, PivotX: 400, PivotY: 300}.Matrix()
	x, y := transformPoint(m, 400, 300)
	assertNear(t, "pivot x", x, 400)
	assertNear(t, "pivot y", y, 300)

	x, _ = transformPoint(m, 0, 0)
	assertNear(t, "corner x", x, 400-400*0.94)
}

// --- multiplyAffine / invertAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 10, 20}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestInvertAffineRoundTrip(t *testing.T) {
	m := Pose{X: 50, Y: -30, ScaleX: 2, ScaleY: 0.5, Rotation: 0.7, PivotX: 8, PivotY: 4}.Matrix()
	assertMatrix(t, "m*inv(m)", multiplyAffine(m, invertAffine(m)), identityTransform)

	x, y := transformPoint(m, 13, 17)
	bx, by := transformPoint(invertAffine(m), x, y)
	assertNear(t, "x", bx, 13)
	assertNear(t, "y", by, 17)
}

func TestInvertAffineSingular(t *testing.T) {
	got := invertAffine([6]float64{0, 0, 0, 0, 5, 5})
	assertMatrix(t, "singular", got, identityTransform)
}

// --- transformRect / boundsOf ---

func TestTransformRectClockwise(t *testing.T) {
	q := transformRect(identityTransform, Rect{X: 1, Y: 2, Width: 3, Height: 4})
	want := [4]Vec2{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	for i := range q {
		if q[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, q[i], want[i])
		}
	}
}

func TestBoundsOfRotatedRect(t *testing.T) {
	m := Pose{ScaleX: 1, ScaleY: 1, Rotation: math.Pi / 2}.Matrix()
	b := boundsOf(transformRect(m, Rect{Width: 10, Height: 4}))
	// A 10x4 rect rotated 90° clockwise spans x in [-4, 0], y in [0, 10].
	assertNear(t, "x", b.X, -4)
	assertNear(t, "y", b.Y, 0)
	assertNear(t, "width", b.Width, 4)
	assertNear(t, "height", b.Height, 10)
}
