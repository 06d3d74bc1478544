package hexbounce

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHexagon_Vertices(t *testing.T) {
	hex := Hexagon{Center: Vector{400, 300}, Radius: 200, Angle: 0.3}
	verts := hex.Vertices()
	if len(verts) != HexagonSides {
		t.Fatalf("Expected %d vertices, got %d", HexagonSides, len(verts))
	}

	for i, v := range verts {
		if d := v.Distance(hex.Center); math.Abs(d-200) > 1e-9 {
			t.Errorf("vertex %d is %v from the center", i, d)
		}
		angle := v.Sub(hex.Center).ToAngle()
		want := math.Remainder(0.3+float64(i)*math.Pi/3, 2*math.Pi)
		if math.Abs(math.Remainder(angle-want, 2*math.Pi)) > 1e-9 {
			t.Errorf("vertex %d at angle %v, expected %v", i, angle, want)
		}
	}

	if diff := cmp.Diff(Vector{600, 300}, (&Hexagon{Center: Vector{400, 300}, Radius: 200}).Vertices()[0], approx); diff != "" {
		t.Errorf("unrotated first vertex (-want +got):\n%s", diff)
	}
}

func TestHexagon_Edges(t *testing.T) {
	hex := Hexagon{Center: Vector{0, 0}, Radius: 150, Angle: 1}
	edges := hex.Edges()
	for i, edge := range edges {
		next := edges[(i+1)%len(edges)]
		if edge.B != next.A {
			t.Errorf("edge %d does not meet edge %d", i, (i+1)%len(edges))
		}
		if math.Abs(edge.Length()-150) > 1e-9 {
			t.Errorf("edge %d has length %v", i, edge.Length())
		}
		if d := edge.SignedDistance(hex.Center); math.Abs(d-hex.Apothem()) > 1e-9 {
			t.Errorf("edge %d: inward normal should face the center, distance %v", i, d)
		}
	}
}

func TestHexagon_Update(t *testing.T) {
	hex := Hexagon{Radius: 10, AngularVelocity: 0.01}
	for i := 0; i < 100; i++ {
		hex.Update()
	}
	if math.Abs(hex.Angle-1) > 1e-9 {
		t.Errorf("Expected angle 1, got %v", hex.Angle)
	}
}

func TestHexagon_Contains(t *testing.T) {
	hex := Hexagon{Center: Vector{400, 300}, Radius: 200}
	if !hex.Contains(hex.Center) {
		t.Error("Expected the center to be inside")
	}
	if !hex.Contains(Vector{400, 300 + hex.Apothem() - 1}) {
		t.Error("Expected a point just inside the bottom side to be inside")
	}
	if hex.Contains(Vector{400, 300 + hex.Apothem() + 1}) {
		t.Error("Expected a point just past the bottom side to be outside")
	}
	if !hex.BB().ContainsVect(Vector{599, 300}) {
		t.Error("Expected the bounding box to hold the hexagon")
	}
}

func TestHexagon_SurfaceVelocity(t *testing.T) {
	hex := Hexagon{Center: Vector{400, 300}, Radius: 200, AngularVelocity: 0.01}
	p := Vector{600, 300}
	v := hex.SurfaceVelocity(p)
	if diff := cmp.Diff(Vector{0, 2}, v, approx); diff != "" {
		t.Errorf("surface velocity (-want +got):\n%s", diff)
	}

	// One frame of rotation carries the vertex by roughly the surface velocity.
	hex.Update()
	moved := hex.Vertices()[0].Sub(p)
	if !moved.Near(v, 0.02) {
		t.Errorf("vertex moved %v, surface velocity %v", moved, v)
	}
}
