package hexbounce

import (
	"image/color"
	"math"
	"sort"

	"github.com/pkg/errors"
)

const (
	Width  = 800
	Height = 600
	FPS    = 60
)

// Style is how a model wants to be drawn.
type Style struct {
	Background color.RGBA
	Hexagon    color.RGBA
	Ball       color.RGBA
	LineWidth  float64
}

// Model holds the constants of one simulation. Distances are pixels, times
// are frames.
type Model struct {
	Name  string
	Title string

	Gravity float64
	// Fraction of velocity kept every frame.
	Damping     float64
	Restitution float64
	// Fraction of velocity along a wall kept on contact.
	SurfaceFriction float64

	HexagonRadius   float64
	AngularVelocity float64
	// Change in angular velocity for one speed key press.
	SpeedStep float64

	BallRadius    float64
	StartOffset   Vector
	StartVelocity Vector

	// Spin the hexagon before integrating the ball.
	RotateFirst bool

	Style    Style
	Response Response
}

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

var models = map[string]*Model{
	"clamped": {
		Name:            "clamped",
		Title:           "Bouncing Ball in Spinning Hexagon",
		Gravity:         0.2,
		Damping:         1 - 0.0005,
		Restitution:     0.9,
		SurfaceFriction: 1,
		HexagonRadius:   150,
		AngularVelocity: 0.01,
		SpeedStep:       0.005,
		BallRadius:      15,
		StartOffset:     Vector{0, -50},
		StartVelocity:   Vector{1, 0},
		Style: Style{
			Background: color.RGBA{30, 30, 30, 255},
			Hexagon:    color.RGBA{200, 200, 200, 255},
			Ball:       red,
			LineWidth:  2,
		},
		Response: ClampedResponse{},
	},
	"vector": {
		Name:            "vector",
		Title:           "Bouncing Ball in Rotating Hexagon",
		Gravity:         0.5,
		Damping:         0.98,
		Restitution:     0.8,
		SurfaceFriction: 1,
		HexagonRadius:   200,
		AngularVelocity: Radians(0.5),
		SpeedStep:       Radians(0.1),
		BallRadius:      15,
		StartOffset:     Vector{0, 0},
		StartVelocity:   Vector{5, 0},
		Style:           Style{Background: black, Hexagon: white, Ball: red, LineWidth: 2},
		Response:        VectorResponse{},
	},
	"tangent": {
		Name:            "tangent",
		Title:           "Ball Bouncing in a Spinning Hexagon",
		Gravity:         0.5,
		Damping:         1,
		Restitution:     0.8,
		SurfaceFriction: 0.98,
		HexagonRadius:   200,
		AngularVelocity: 0.01,
		SpeedStep:       0.005,
		BallRadius:      15,
		StartOffset:     Vector{0, -100},
		StartVelocity:   Vector{2, 0},
		RotateFirst:     true,
		Style:           Style{Background: black, Hexagon: white, Ball: red, LineWidth: 2},
		Response:        TangentResponse{},
	},
	"line": {
		Name:            "line",
		Title:           "Ball Bouncing in a Spinning Hexagon",
		Gravity:         0.5,
		Damping:         0.99,
		Restitution:     0.8,
		SurfaceFriction: 1,
		HexagonRadius:   200,
		AngularVelocity: Radians(0.5),
		SpeedStep:       Radians(0.1),
		BallRadius:      15,
		StartOffset:     Vector{0, -100},
		StartVelocity:   Vector{0, 0},
		Style:           Style{Background: black, Hexagon: blue, Ball: red, LineWidth: 3},
		Response:        LineResponse{},
	},
	"rigid": {
		Name:            "rigid",
		Title:           "Ball in a Spinning Hexagon",
		Gravity:         0.5,
		Damping:         1,
		Restitution:     0.8,
		SurfaceFriction: 0.98,
		HexagonRadius:   200,
		AngularVelocity: 0.01,
		SpeedStep:       0.005,
		BallRadius:      15,
		StartOffset:     Vector{0, -100},
		StartVelocity:   Vector{2, 0},
		Style: Style{
			Background: color.RGBA{30, 30, 30, 255},
			Hexagon:    color.RGBA{200, 200, 200, 255},
			Ball:       color.RGBA{230, 60, 60, 255},
			LineWidth:  2,
		},
		Response: RigidResponse{},
	},
}

// Models returns every registered model sorted by name.
func Models() []*Model {
	out := make([]*Model, 0, len(models))
	for _, m := range models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func LookupModel(name string) (*Model, error) {
	m, ok := models[name]
	if !ok {
		return nil, errors.Errorf("unknown model %q", name)
	}
	return m, nil
}

// Validate checks that the constants describe a simulation that can run.
func (m *Model) Validate() error {
	switch {
	case m.Response == nil:
		return errors.Errorf("model %q: no response", m.Name)
	case m.BallRadius <= 0:
		return errors.Errorf("model %q: ball radius must be positive", m.Name)
	case m.HexagonRadius*math.Cos(math.Pi/HexagonSides) <= m.BallRadius:
		return errors.Errorf("model %q: ball does not fit inside the hexagon", m.Name)
	case m.Damping < 0 || m.Damping > 1:
		return errors.Errorf("model %q: damping %v outside [0, 1]", m.Name, m.Damping)
	}
	return nil
}
