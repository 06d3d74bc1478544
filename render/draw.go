package render

import (
	"image/color"
	"math"
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	. "github.com/jakecoffman/hexbounce"
)

const (
	DrawPointLineScale = 1
	DrawOutlineWidth   = 1
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

func RGBA(c color.RGBA) FColor {
	return FColor{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

var program uint32

// 8 bytes
type v2f struct {
	x, y float32
}

func V2f(v Vector) v2f {
	return v2f{float32(v.X), float32(v.Y)}
}
func v2f0() v2f {
	return v2f{0, 0}
}

// 8*2 + 16*2 bytes = 48 bytes
type Vertex struct {
	vertex, aaCoord         v2f
	fillColor, outlineColor FColor
}

type Triangle struct {
	a, b, c Vertex
}

var vao uint32 = 0
var vbo uint32 = 0

var triangleStack []Triangle = []Triangle{}

func DrawInit() {
	vshader := CompileShader(gl.VERTEX_SHADER, `
		attribute vec2 vertex;
		attribute vec2 aa_coord;
		attribute vec4 fill_color;
		attribute vec4 outline_color;

		varying vec2 v_aa_coord;
		varying vec4 v_fill_color;
		varying vec4 v_outline_color;

		void main(void){
			gl_Position = gl_ModelViewProjectionMatrix*vec4(vertex, 0.0, 1.0);

			v_fill_color = fill_color;
			v_outline_color = outline_color;
			v_aa_coord = aa_coord;
		}
	`)

	fshader := CompileShader(gl.FRAGMENT_SHADER, `
		varying vec2 v_aa_coord;
		varying vec4 v_fill_color;
		varying vec4 v_outline_color;

		float aa_step(float t1, float t2, float f)
		{
			return smoothstep(t1, t2, f);
		}

		void main(void)
		{
			float l = length(v_aa_coord);
			float fw = length(fwidth(v_aa_coord));

			// Outline width threshold.
			float ow = 1.0 - fw;

			// Fill/outline color.
			float fo_step = aa_step(max(ow - fw, 0.0), ow, l);
			vec4 fo_color = mix(v_fill_color, v_outline_color, fo_step);

			// Use pre-multiplied alpha.
			float alpha = 1.0 - aa_step(1.0 - fw, 1.0, l);
			gl_FragColor = fo_color*(fo_color.a*alpha);
		}
	`)

	program = LinkProgram(vshader, fshader)
	CheckGLErrors()

	genVertexArray(&vao)
	bindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	v := Vertex{}
	stride := int32(unsafe.Sizeof(v))

	SetAttribute(program, "vertex", 2, gl.FLOAT, stride, int(unsafe.Offsetof(v.vertex)))
	SetAttribute(program, "aa_coord", 2, gl.FLOAT, stride, int(unsafe.Offsetof(v.aaCoord)))
	SetAttribute(program, "fill_color", 4, gl.FLOAT, stride, int(unsafe.Offsetof(v.fillColor)))
	SetAttribute(program, "outline_color", 4, gl.FLOAT, stride, int(unsafe.Offsetof(v.outlineColor)))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	bindVertexArray(0)
	CheckGLErrors()
}

func genVertexArray(array *uint32) {
	if runtime.GOOS == "darwin" {
		gl.GenVertexArraysAPPLE(1, array)
	} else {
		gl.GenVertexArrays(1, array)
	}
}

func bindVertexArray(array uint32) {
	if runtime.GOOS == "darwin" {
		gl.BindVertexArrayAPPLE(array)
	} else {
		gl.BindVertexArray(array)
	}
}

func DrawCircle(pos Vector, angle, radius float64, outline, fill FColor) {
	r := radius + 1/DrawPointLineScale
	a := Vertex{
		v2f{float32(pos.X - r), float32(pos.Y - r)},
		v2f{-1, -1},
		fill,
		outline,
	}
	b := Vertex{
		v2f{float32(pos.X - r), float32(pos.Y + r)},
		v2f{-1, 1},
		fill,
		outline,
	}
	c := Vertex{
		v2f{float32(pos.X + r), float32(pos.Y + r)},
		v2f{1, 1},
		fill,
		outline,
	}
	d := Vertex{
		v2f{float32(pos.X + r), float32(pos.Y - r)},
		v2f{1, -1},
		fill,
		outline,
	}

	triangleStack = append(triangleStack, Triangle{a, b, c}, Triangle{a, c, d})

	DrawFatSegment(pos, pos.Add(ForAngle(angle).Mult(radius-DrawPointLineScale*0.5)), 0, outline, fill)
}

func DrawFatSegment(a, b Vector, radius float64, outline, fill FColor) {
	n := b.Sub(a).ReversePerp().Normalize()
	t := n.ReversePerp()

	var half float64 = 1.0 / DrawPointLineScale
	r := radius + half

	if r <= half {
		r = half
		fill = outline
	}

	nw := n.Mult(r)
	tw := t.Mult(r)
	v0 := V2f(b.Sub(nw.Add(tw)))
	v1 := V2f(b.Add(nw.Sub(tw)))
	v2 := V2f(b.Sub(nw))
	v3 := V2f(b.Add(nw))
	v4 := V2f(a.Sub(nw))
	v5 := V2f(a.Add(nw))
	v6 := V2f(a.Sub(nw.Sub(tw)))
	v7 := V2f(a.Add(nw.Add(tw)))

	triangleStack = append(triangleStack,
		Triangle{
			Vertex{v0, v2f{1, -1}, fill, outline},
			Vertex{v1, v2f{1, 1}, fill, outline},
			Vertex{v2, v2f{0, -1}, fill, outline},
		},
		Triangle{
			Vertex{v3, v2f{0, 1}, fill, outline},
			Vertex{v1, v2f{1, 1}, fill, outline},
			Vertex{v2, v2f{0, -1}, fill, outline},
		},
		Triangle{
			Vertex{v3, v2f{0, 1}, fill, outline},
			Vertex{v4, v2f{0, -1}, fill, outline},
			Vertex{v2, v2f{0, -1}, fill, outline},
		},
		Triangle{
			Vertex{v3, v2f{0, 1}, fill, outline},
			Vertex{v4, v2f{0, -1}, fill, outline},
			Vertex{v5, v2f{0, 1}, fill, outline},
		},
		Triangle{
			Vertex{v6, v2f{-1, -1}, fill, outline},
			Vertex{v4, v2f{0, -1}, fill, outline},
			Vertex{v5, v2f{0, 1}, fill, outline},
		},
		Triangle{
			Vertex{v6, v2f{-1, -1}, fill, outline},
			Vertex{v7, v2f{-1, 1}, fill, outline},
			Vertex{v5, v2f{0, 1}, fill, outline},
		},
	)
}

// DrawPolygon expects verts wound counter-clockwise. A radius above zero
// rounds the corners outward.
func DrawPolygon(verts []Vector, radius float64, outline, fill FColor) {
	count := len(verts)
	type ExtrudeVerts struct {
		offset, n Vector
	}
	extrude := make([]ExtrudeVerts, count)

	for i := 0; i < count; i++ {
		v0 := verts[(i-1+count)%count]
		v1 := verts[i]
		v2 := verts[(i+1)%count]

		n1 := v1.Sub(v0).ReversePerp().Normalize()
		n2 := v2.Sub(v1).ReversePerp().Normalize()

		offset := n1.Add(n2).Mult(1.0 / (n1.Dot(n2) + 1.0))
		extrude[i] = ExtrudeVerts{offset, n2}
	}

	inset := -math.Max(0, 1.0/DrawPointLineScale-radius)
	for i := 0; i < count-2; i++ {
		v0 := V2f(verts[0].Add(extrude[0].offset.Mult(inset)))
		v1 := V2f(verts[i+1].Add(extrude[i+1].offset.Mult(inset)))
		v2 := V2f(verts[i+2].Add(extrude[i+2].offset.Mult(inset)))

		triangleStack = append(triangleStack, Triangle{
			Vertex{v0, v2f0(), fill, fill},
			Vertex{v1, v2f0(), fill, fill},
			Vertex{v2, v2f0(), fill, fill},
		})
	}

	outset := 1.0/DrawPointLineScale + radius - inset
	j := count - 1
	for i := 0; i < count; i++ {
		vA := verts[i]
		vB := verts[j]

		nA := extrude[i].n
		nB := extrude[j].n

		offsetA := extrude[i].offset
		offsetB := extrude[j].offset

		innerA := vA.Add(offsetA.Mult(inset))
		innerB := vB.Add(offsetB.Mult(inset))

		inner0 := V2f(innerA)
		inner1 := V2f(innerB)
		outer0 := V2f(innerA.Add(nB.Mult(outset)))
		outer1 := V2f(innerB.Add(nB.Mult(outset)))
		outer2 := V2f(innerA.Add(offsetA.Mult(outset)))
		outer3 := V2f(innerA.Add(nA.Mult(outset)))

		n0 := V2f(nA)
		n1 := V2f(nB)
		offset0 := V2f(offsetA)

		triangleStack = append(triangleStack,
			Triangle{
				Vertex{inner0, v2f0(), fill, outline},
				Vertex{inner1, v2f0(), fill, outline},
				Vertex{outer1, n1, fill, outline},
			},
			Triangle{
				Vertex{inner0, v2f0(), fill, outline},
				Vertex{outer0, n1, fill, outline},
				Vertex{outer1, n1, fill, outline},
			},
			Triangle{
				Vertex{inner0, v2f0(), fill, outline},
				Vertex{outer0, n1, fill, outline},
				Vertex{outer2, offset0, fill, outline},
			},
			Triangle{
				Vertex{inner0, v2f0(), fill, outline},
				Vertex{outer2, offset0, fill, outline},
				Vertex{outer3, n0, fill, outline},
			},
		)

		j = i
	}
}

// DrawOutline strokes a closed loop of width lineWidth.
func DrawOutline(verts []Vector, lineWidth float64, outline FColor) {
	for i := range verts {
		DrawFatSegment(verts[i], verts[(i+1)%len(verts)], lineWidth/2, outline, outline)
	}
}

// DrawBB fills a box with slightly rounded corners.
func DrawBB(bb BB, radius float64, fill FColor) {
	inner := NewBB(bb.L+radius, bb.B+radius, bb.R-radius, bb.T-radius)
	DrawPolygon(inner.Vertices(), radius, fill, fill)
}

func FlushRenderer() {
	if len(triangleStack) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleStack)*int(unsafe.Sizeof(Triangle{})), gl.Ptr(triangleStack), gl.STREAM_DRAW)

	gl.UseProgram(program)

	bindVertexArray(vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(triangleStack)*3))
	bindVertexArray(0)
	CheckGLErrors()
}

func ClearRenderer() {
	triangleStack = triangleStack[:0]
}
