package hexbounce

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestVector_Normalize(t *testing.T) {
	v := Vector{}
	u := v.Normalize()
	if math.IsNaN(u.X) || math.IsNaN(u.Y) {
		t.Fatalf("Expected zero vector, got %v", u)
	}
	if u != (Vector{}) {
		t.Errorf("Expected zero vector, got %v", u)
	}

	u = Vector{3, 4}.Normalize()
	if diff := cmp.Diff(Vector{0.6, 0.8}, u, approx); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestVector_Reflect(t *testing.T) {
	for _, test := range []struct {
		v, n, want Vector
	}{
		{Vector{2, 5}, Vector{0, -1}, Vector{2, -5}},
		{Vector{2, 5}, Vector{0, 1}, Vector{2, -5}},
		{Vector{-3, 1}, Vector{1, 0}, Vector{3, 1}},
		{Vector{1, 1}, Vector{}, Vector{1, 1}},
	} {
		if diff := cmp.Diff(test.want, test.v.Reflect(test.n), approx); diff != "" {
			t.Errorf("%v reflected on %v (-want +got):\n%s", test.v, test.n, diff)
		}
	}
}

func TestVector_ClosestPointOnSegment(t *testing.T) {
	a, b := Vector{0, 0}, Vector{10, 0}
	for _, test := range []struct {
		p, want Vector
	}{
		{Vector{5, 3}, Vector{5, 0}},
		{Vector{-4, 3}, Vector{0, 0}},
		{Vector{14, -3}, Vector{10, 0}},
	} {
		if got := test.p.ClosestPointOnSegment(a, b); got != test.want {
			t.Errorf("closest to %v: expected %v, got %v", test.p, test.want, got)
		}
	}

	if got := (Vector{3, 3}).ClosestPointOnSegment(a, a); got != a {
		t.Errorf("degenerate segment: expected %v, got %v", a, got)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Expected pi, got %v", got)
	}
}

func TestTransform_Rigid(t *testing.T) {
	tr := NewTransformRigid(Vector{400, 300}, math.Pi/2)
	if diff := cmp.Diff(Vector{400, 312}, tr.Point(Vector{12, 0}), approx); diff != "" {
		t.Errorf("quarter turn (-want +got):\n%s", diff)
	}

	p := Vector{12, -7}
	if got := NewTransformRigid(Vector{}, 0).Point(p); got != p {
		t.Errorf("identity moved %v to %v", p, got)
	}

	// Rotation keeps distances from the pivot.
	tr = NewTransformRigid(Vector{400, 300}, 0.7)
	if d := tr.Point(p).Distance(Vector{400, 300}); math.Abs(d-p.Length()) > 1e-9 {
		t.Errorf("Expected distance %v from the pivot, got %v", p.Length(), d)
	}
}

func TestBB_ContainsVect(t *testing.T) {
	bb := NewBB(10, 530, 197, 590)
	if !bb.ContainsVect(Vector{10, 530}) || !bb.ContainsVect(Vector{100, 560}) {
		t.Error("Expected points on and inside the box to be contained")
	}
	if bb.ContainsVect(Vector{198, 560}) || bb.ContainsVect(Vector{100, 529}) {
		t.Error("Expected points outside the box to be rejected")
	}
	if got := bb.Center(); got != (Vector{103.5, 560}) {
		t.Errorf("Expected center 103.5,560, got %v", got)
	}
	if bb.Width() != 187 || bb.Height() != 60 {
		t.Errorf("Expected 187x60, got %vx%v", bb.Width(), bb.Height())
	}
}
