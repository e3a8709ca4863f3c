package canvas

import (
	"math"
	"testing"
)

func pointClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestIdentityTransform(t *testing.T) {
	p := Pt(3, 4)
	if got := Identity().TransformPoint(p); got != p {
		t.Errorf("identity moved point: %v", got)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}

func TestTranslateRotateCompose(t *testing.T) {
	// Translate then rotate, applied in multiplication order.
	m := Translate(10, 0).Multiply(Rotate(math.Pi / 2))
	got := m.TransformPoint(Pt(1, 0))
	want := Pt(10, 1)
	if !pointClose(got, want) {
		t.Errorf("transformed point = %v, want %v", got, want)
	}
}

func TestScaleFactor(t *testing.T) {
	cases := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"rotation", Rotate(1.3), 1},
		{"uniform scale", Scale(3, 3), 3},
		{"mixed scale", Scale(2, 8), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.ScaleFactor(); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ScaleFactor = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMultiplyOrder(t *testing.T) {
	// Scaling after translating must scale the local frame only.
	m := Translate(5, 5).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(7, 7)
	if !pointClose(got, want) {
		t.Errorf("transformed point = %v, want %v", got, want)
	}
}
