// Package render is the window, input and draw loop shared by the
// simulations and the launcher. World coordinates are window pixels with
// the origin at the top left and y pointing down.
package render

import (
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/op/go-logging"
	"github.com/pkg/errors"

	. "github.com/jakecoffman/hexbounce"
)

var log = logging.MustGetLogger("render")

// Scene is advanced at a fixed tick and drawn once per displayed frame.
type Scene interface {
	Update(dt float64)
	Draw()
}

// KeyHandler is implemented by scenes that take keyboard input.
type KeyHandler interface {
	Key(key glfw.Key, action glfw.Action)
}

// MouseHandler is implemented by scenes that take mouse input. Positions are
// in world coordinates.
type MouseHandler interface {
	MouseMove(p Vector)
	MouseButton(p Vector, button glfw.MouseButton, action glfw.Action)
}

var Mouse Vector

var window *glfw.Window
var projection mgl32.Mat4

var accumulator float64
var lastTime float64

func init() {
	runtime.LockOSThread()
}

func Display(scene Scene, tick float64) {
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	Update(scene, tick)

	ClearRenderer()
	ClearTextRenderer()

	// builds triangle buffers
	scene.Draw()

	// gives buffers to open-gl to draw
	FlushRenderer()
	FlushTextRenderer()
}

// Update runs the scene at a fixed tick however fast frames are drawn.
func Update(scene Scene, tick float64) {
	t := glfw.GetTime()
	dt := t - lastTime
	if dt > 0.2 {
		dt = 0.2
	}

	for accumulator += dt; accumulator > tick; accumulator -= tick {
		scene.Update(tick)
	}

	lastTime = t
}

// Main opens a non-resizable window and runs scene until the window is
// closed. Q and Escape close the window.
func Main(title string, width, height int, background FColor, tick float64, scene Scene) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "initializing glfw")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	var err error
	window, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "initializing gl")
	}
	log.Debugf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	DrawInit()
	TextInit()

	gl.ClearColor(background.R, background.G, background.B, background.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	fw, fh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))

	projection = mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&projection[0])

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press && (key == glfw.KeyQ || key == glfw.KeyEscape) {
			w.SetShouldClose(true)
			return
		}
		if h, ok := scene.(KeyHandler); ok {
			h.Key(key, action)
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos float64, ypos float64) {
		ww, wh := w.GetSize()
		Mouse = MouseToSpace(xpos, ypos, ww, wh)
		if h, ok := scene.(MouseHandler); ok {
			h.MouseMove(Mouse)
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
		if h, ok := scene.(MouseHandler); ok {
			h.MouseButton(Mouse, button, action)
		}
	})

	lastTime = glfw.GetTime()
	for !window.ShouldClose() {
		Display(scene, tick)
		window.SwapBuffers()
		glfw.PollEvents()
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
	return nil
}

// Focus raises the window. Call it from the scene, on the main thread.
func Focus() {
	if window != nil {
		window.Focus()
	}
}

// MouseToSpace converts a cursor position in window coordinates to world
// coordinates.
func MouseToSpace(x, y float64, ww, wh int) Vector {
	obj, err := mgl32.UnProject(
		mgl32.Vec3{float32(x), float32(float64(wh) - y), 0},
		mgl32.Ident4(),
		projection,
		0, 0,
		ww, wh,
	)
	if err != nil {
		panic(err)
	}

	return Vector{X: float64(obj.X()), Y: float64(obj.Y())}
}
