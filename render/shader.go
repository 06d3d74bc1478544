package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
)

func CheckGLErrors() {
	for err := gl.GetError(); err != gl.NO_ERROR; err = gl.GetError() {
		panic(fmt.Sprint("GL Error ", err))
	}
}

// CheckError returns false and logs the info log when obj failed status.
func CheckError(obj uint32, status uint32, getiv func(uint32, uint32, *int32), getInfoLog func(uint32, int32, *int32, *uint8)) bool {
	var success int32
	getiv(obj, status, &success)

	if success == gl.FALSE {
		var length int32
		getiv(obj, gl.INFO_LOG_LENGTH, &length)

		info := strings.Repeat("\x00", int(length+1))
		getInfoLog(obj, length, nil, gl.Str(info))

		log.Errorf("shader error for status %d: %s", status, info)
		return false
	}

	return true
}

func CompileShader(typ uint32, source string) uint32 {
	shader := gl.CreateShader(typ)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	if !CheckError(shader, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog) {
		panic("Error compiling shader")
	}

	return shader
}

func LinkProgram(vshader, fshader uint32) uint32 {
	program := gl.CreateProgram()

	gl.AttachShader(program, vshader)
	gl.AttachShader(program, fshader)
	gl.LinkProgram(program)

	if !CheckError(program, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog) {
		panic("Error linking shader program")
	}

	return program
}

func SetAttribute(program uint32, name string, size int32, gltype uint32, stride int32, offset int) {
	index := uint32(gl.GetAttribLocation(program, gl.Str(name+"\x00")))
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointer(index, size, gltype, false, stride, gl.PtrOffset(offset))
}
