package hexbounce

// Transform is a 2x3 affine matrix applied as [a c tx; b d ty].
type Transform struct {
	a, b, c, d, tx, ty float64
}

// NewTransformRigid rotates by radians about the origin, then translates.
func NewTransformRigid(translate Vector, radians float64) Transform {
	rot := ForAngle(radians)
	return Transform{
		a: rot.X, c: -rot.Y, tx: translate.X,
		b: rot.Y, d: rot.X, ty: translate.Y,
	}
}

func (t Transform) Point(p Vector) Vector {
	return Vector{X: t.a*p.X + t.c*p.Y + t.tx, Y: t.b*p.X + t.d*p.Y + t.ty}
}
