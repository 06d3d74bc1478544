package render

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	. "github.com/jakecoffman/hexbounce"
)

// The glyph atlas holds printable ASCII in a grid of fixed size cells.
const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasColumns = 16
)

var face = basicfont.Face7x13

var (
	glyphWidth  = face.Advance
	glyphHeight = face.Height
	atlasWidth  = atlasColumns * glyphWidth
	atlasHeight = ((lastGlyph-firstGlyph)/atlasColumns + 1) * glyphHeight
)

var textprogram uint32
var texture uint32

// 8*2 + 16 = 32
type TextVertex struct {
	vertex, texCoord v2f
	color            FColor
}

type TextTriangle struct {
	a, b, c TextVertex
}

var textvao uint32
var textvbo uint32

var textStack []TextTriangle = []TextTriangle{}

func TextInit() {
	vshader := CompileShader(gl.VERTEX_SHADER, `
		attribute vec2 vertex;
		attribute vec2 tex_coord;
		attribute vec4 color;

		varying vec2 v_tex_coord;
		varying vec4 v_color;

		void main(void){
			gl_Position = gl_ModelViewProjectionMatrix*vec4(vertex, 0.0, 1.0);

			v_color = color;
			v_tex_coord = tex_coord;
		}
	`)
	fshader := CompileShader(gl.FRAGMENT_SHADER, `
		uniform sampler2D u_texture;

		varying vec2 v_tex_coord;
		varying vec4 v_color;

		void main(void)
		{
			float alpha = texture2D(u_texture, v_tex_coord).a*v_color.a;
			gl_FragColor = vec4(v_color.rgb*alpha, alpha);
		}
	`)

	textprogram = LinkProgram(vshader, fshader)
	CheckGLErrors()

	genVertexArray(&textvao)
	bindVertexArray(textvao)

	gl.GenBuffers(1, &textvbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, textvbo)

	v := TextVertex{}
	stride := int32(unsafe.Sizeof(v))
	SetAttribute(textprogram, "vertex", 2, gl.FLOAT, stride, int(unsafe.Offsetof(v.vertex)))
	SetAttribute(textprogram, "tex_coord", 2, gl.FLOAT, stride, int(unsafe.Offsetof(v.texCoord)))
	SetAttribute(textprogram, "color", 4, gl.FLOAT, stride, int(unsafe.Offsetof(v.color)))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	bindVertexArray(0)
	CheckGLErrors()

	atlas := glyphAtlas()
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.ALPHA, int32(atlasWidth), int32(atlasHeight), 0, gl.ALPHA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	CheckGLErrors()
}

// glyphAtlas rasterizes every printable ASCII glyph of the face into its
// cell of an alpha image.
func glyphAtlas() *image.Alpha {
	atlas := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasHeight))
	d := &font.Drawer{Dst: atlas, Src: image.Opaque, Face: face}
	for ch := firstGlyph; ch <= lastGlyph; ch++ {
		col, row := glyphCell(ch)
		d.Dot = fixed.P(col*glyphWidth, row*glyphHeight+face.Ascent)
		d.DrawString(string(ch))
	}
	return atlas
}

func glyphCell(ch rune) (col, row int) {
	if ch < firstGlyph || ch > lastGlyph {
		ch = '?'
	}
	i := int(ch - firstGlyph)
	return i % atlasColumns, i / atlasColumns
}

// MeasureString returns the size of a single line of text at scale.
func MeasureString(str string, scale float64) Vector {
	return Vector{
		X: float64(len([]rune(str))*glyphWidth) * scale,
		Y: float64(glyphHeight) * scale,
	}
}

func PushChar(ch rune, x, y, scale float64, color FColor) float64 {
	col, row := glyphCell(ch)

	txmin := float32(col*glyphWidth) / float32(atlasWidth)
	tymin := float32(row*glyphHeight) / float32(atlasHeight)
	txmax := txmin + float32(glyphWidth)/float32(atlasWidth)
	tymax := tymin + float32(glyphHeight)/float32(atlasHeight)

	xmin := float32(x)
	ymin := float32(y)
	xmax := xmin + float32(float64(glyphWidth)*scale)
	ymax := ymin + float32(float64(glyphHeight)*scale)

	a := TextVertex{v2f{xmin, ymin}, v2f{txmin, tymin}, color}
	b := TextVertex{v2f{xmin, ymax}, v2f{txmin, tymax}, color}
	c := TextVertex{v2f{xmax, ymax}, v2f{txmax, tymax}, color}
	d := TextVertex{v2f{xmax, ymin}, v2f{txmax, tymin}, color}

	textStack = append(textStack, TextTriangle{a, b, c}, TextTriangle{a, c, d})

	return float64(glyphWidth) * scale
}

// DrawString draws str with its top left corner at pos.
func DrawString(pos Vector, str string, scale float64, color FColor) {
	x := pos.X
	y := pos.Y

	for _, character := range str {
		if character == '\n' {
			y += float64(glyphHeight) * scale
			x = pos.X
		} else {
			x += PushChar(character, x, y, scale, color)
		}
	}
}

// DrawStringCentered draws a single line of text centered on pos.
func DrawStringCentered(pos Vector, str string, scale float64, color FColor) {
	size := MeasureString(str, scale)
	DrawString(pos.Sub(size.Mult(0.5)), str, scale, color)
}

func FlushTextRenderer() {
	if len(textStack) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, textvbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(textStack)*int(unsafe.Sizeof(TextTriangle{})), gl.Ptr(textStack), gl.STREAM_DRAW)

	gl.UseProgram(textprogram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.Uniform1i(gl.GetUniformLocation(textprogram, gl.Str("u_texture\x00")), 0)

	bindVertexArray(textvao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(textStack)*3))
	bindVertexArray(0)
	CheckGLErrors()
}

func ClearTextRenderer() {
	textStack = textStack[:0]
}
