package hexbounce

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// floor runs right to left so its inward normal points up the screen.
var floor = Segment{Vector{100, 0}, Vector{-100, 0}}

func TestCircleToSegment(t *testing.T) {
	contact, ok := CircleToSegment(Vector{0, -10}, 15, floor)
	if !ok {
		t.Fatal("Expected a hit")
	}
	want := Contact{Point: Vector{0, 0}, Normal: Vector{0, -1}, Distance: 10}
	if diff := cmp.Diff(want, contact, approx); diff != "" {
		t.Errorf("contact (-want +got):\n%s", diff)
	}
	if contact.Depth(15) != 5 {
		t.Errorf("Expected depth 5, got %v", contact.Depth(15))
	}

	if _, ok := CircleToSegment(Vector{0, -16}, 15, floor); ok {
		t.Error("Expected a miss above the floor")
	}
	if _, ok := CircleToSegment(Vector{0, -15}, 15, floor); !ok {
		t.Error("Expected touching to count as a hit")
	}

	// Past the end the nearest point is the endpoint.
	contact, ok = CircleToSegment(Vector{110, -5}, 15, floor)
	if !ok {
		t.Fatal("Expected a corner hit")
	}
	if contact.Point != (Vector{100, 0}) {
		t.Errorf("Expected the corner, got %v", contact.Point)
	}
}

func TestCircleToSegment_Degenerate(t *testing.T) {
	point := Segment{Vector{5, 5}, Vector{5, 5}}
	contact, ok := CircleToSegment(Vector{5, 15}, 15, point)
	if !ok {
		t.Fatal("Expected a hit against a zero length segment")
	}
	if diff := cmp.Diff(Vector{0, 1}, contact.Normal, approx); diff != "" {
		t.Errorf("normal (-want +got):\n%s", diff)
	}

	// Center on the line: normal falls back to the segment direction.
	contact, ok = CircleToSegment(Vector{20, 0}, 15, floor)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if diff := cmp.Diff(Vector{-1, 0}, contact.Normal, approx); diff != "" {
		t.Errorf("normal (-want +got):\n%s", diff)
	}
}

func TestCircleToLine(t *testing.T) {
	contact, ok := CircleToLine(Vector{0, -10}, 15, floor)
	if !ok {
		t.Fatal("Expected a hit")
	}
	want := Contact{Point: Vector{0, 0}, Normal: Vector{0, -1}, Distance: 10}
	if diff := cmp.Diff(want, contact, approx); diff != "" {
		t.Errorf("contact (-want +got):\n%s", diff)
	}

	// From below the normal flips to face the ball.
	contact, ok = CircleToLine(Vector{0, 10}, 15, floor)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if diff := cmp.Diff(Vector{0, 1}, contact.Normal, approx); diff != "" {
		t.Errorf("normal (-want +got):\n%s", diff)
	}

	// Close to the line but beyond the endpoints.
	if _, ok := CircleToLine(Vector{110, -5}, 15, floor); ok {
		t.Error("Expected a miss outside the segment's endpoints")
	}

	if _, ok := CircleToLine(Vector{0, 0}, 15, Segment{Vector{1, 1}, Vector{1, 1}}); ok {
		t.Error("Expected a zero length segment to have no line")
	}
}

func TestCircleToSegment_CenterOnPoint(t *testing.T) {
	point := Segment{Vector{5, 5}, Vector{5, 5}}
	contact, ok := CircleToSegment(Vector{5, 5}, 3, point)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if math.IsNaN(contact.Normal.X) || math.IsNaN(contact.Normal.Y) {
		t.Fatalf("Expected a finite normal, got %v", contact.Normal)
	}
	if contact.Normal != (Vector{}) {
		t.Errorf("Expected no direction to push in, got %v", contact.Normal)
	}

	ball := Ball{Position: Vector{5, 5}, Velocity: Vector{2, 5}, Radius: 3}
	ClampedResponse{}.Resolve(&ball, []Segment{point}, &Hexagon{}, &Model{Restitution: 0.9})
	want := Ball{Position: Vector{5, 5}, Velocity: Vector{1.8, 4.5}, Radius: 3}
	if diff := cmp.Diff(want, ball, approx); diff != "" {
		t.Errorf("ball (-want +got):\n%s", diff)
	}
}
