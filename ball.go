package hexbounce

// Ball is the single dynamic body. Velocity is in pixels per frame.
type Ball struct {
	Position Vector
	Velocity Vector
	Radius   float64
}
