// Package app owns the SDL event loop. It translates platform events into
// control events and view interactions, then ticks simulation, audio and
// render once per frame.
package app

import (
	"log"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/clarkezyz/shac-sim/commandline"
	"github.com/clarkezyz/shac-sim/control"
	"github.com/clarkezyz/shac-sim/cvar"
	"github.com/clarkezyz/shac-sim/cvars"
	qmath "github.com/clarkezyz/shac-sim/math"
	"github.com/clarkezyz/shac-sim/scene"
	"github.com/clarkezyz/shac-sim/snd"
	"github.com/clarkezyz/shac-sim/spatial"
	"github.com/clarkezyz/shac-sim/view"
	"github.com/clarkezyz/shac-sim/window"
)

type App struct {
	scene *scene.Scene
	ctrl  *control.Controller
	view  *view.View
	sys   *snd.SndSys

	quit  bool
	mlook bool
}

func New(sc *scene.Scene, sys *snd.SndSys) *App {
	a := &App{
		scene: sc,
		ctrl:  control.NewController(sc),
		sys:   sys,
	}
	cvars.MasterVolume.SetCallback(func(cv *cvar.Cvar) {
		a.sys.SetVolume(cv.Value())
	})
	a.sys.SetVolume(cvars.MasterVolume.Value())
	return a
}

// Run opens the window and blocks in the frame loop until quit. It must be
// called on the main thread.
func (a *App) Run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "sdl init")
	}
	defer sdl.Quit()

	window.Init(int32(commandline.Width()), int32(commandline.Height()),
		commandline.Fullscreen(), "shac-sim")
	defer window.Shutdown()

	w, h := window.Size()
	a.view = view.New(a.scene, w, h)

	for !a.quit {
		a.pollEvents()
		a.ctrl.Tick()
		a.sys.UpdatePoses(a.scene)
		a.view.Draw(window.Renderer())
		sdl.Delay(1)
	}
	return nil
}

func (a *App) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.WindowEvent:
			a.handleWindowEvent(t)
		case *sdl.KeyboardEvent:
			a.handleKeyboardEvent(t)
		case *sdl.MouseButtonEvent:
			a.handleMouseButtonEvent(t)
		case *sdl.MouseWheelEvent:
			a.handleMouseWheelEvent(t)
		case *sdl.MouseMotionEvent:
			a.handleMouseMotionEvent(t)
		case *sdl.QuitEvent:
			a.quit = true
		}
	}
}

func (a *App) handleWindowEvent(e *sdl.WindowEvent) {
	switch e.Event {
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		a.sys.Unblock()
	case sdl.WINDOWEVENT_FOCUS_LOST:
		a.sys.Block()
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		a.view.Resize(int(e.Data1), int(e.Data2))
	}
}

// moveAction maps movement keys. Everything else is handled on key down.
func moveAction(sc sdl.Scancode) control.Action {
	switch sc {
	case sdl.SCANCODE_W:
		return control.Forward
	case sdl.SCANCODE_S:
		return control.Back
	case sdl.SCANCODE_A:
		return control.MoveLeft
	case sdl.SCANCODE_D:
		return control.MoveRight
	case sdl.SCANCODE_E:
		return control.MoveUp
	case sdl.SCANCODE_Q:
		return control.MoveDown
	}
	return control.NoAction
}

func (a *App) handleKeyboardEvent(e *sdl.KeyboardEvent) {
	if act := moveAction(e.Keysym.Scancode); act != control.NoAction {
		kind := control.KeyUp
		if e.State == sdl.PRESSED {
			kind = control.KeyDown
		}
		a.ctrl.Push(control.Event{Kind: kind, Action: act, Key: int(e.Keysym.Scancode)})
		return
	}
	if e.State != sdl.PRESSED || e.Repeat != 0 {
		return
	}
	switch e.Keysym.Scancode {
	case sdl.SCANCODE_TAB:
		a.scene.ToggleFrameMode()
	case sdl.SCANCODE_V:
		a.scene.ToggleViewMode()
	case sdl.SCANCODE_R:
		a.scene.ResetListener()
	case sdl.SCANCODE_L:
		if id, ok := a.hovered(); ok {
			src, _ := a.scene.Source(id)
			a.scene.SetLocked(id, !src.Locked)
		}
	case sdl.SCANCODE_P:
		if id, ok := a.hovered(); ok {
			a.togglePlayback(id)
		}
	case sdl.SCANCODE_SPACE:
		a.toggleAll()
	case sdl.SCANCODE_DELETE, sdl.SCANCODE_BACKSPACE:
		if id, ok := a.hovered(); ok {
			a.removeSource(id)
		}
	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		bumpVolume(0.1)
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		bumpVolume(-0.1)
	case sdl.SCANCODE_RIGHTBRACKET:
		if id, ok := a.hovered(); ok {
			a.bumpSourceVolume(id, 0.1)
		}
	case sdl.SCANCODE_LEFTBRACKET:
		if id, ok := a.hovered(); ok {
			a.bumpSourceVolume(id, -0.1)
		}
	case sdl.SCANCODE_ESCAPE:
		a.quit = true
	}
}

func (a *App) handleMouseButtonEvent(e *sdl.MouseButtonEvent) {
	switch e.Button {
	case sdl.BUTTON_LEFT:
		if e.State == sdl.PRESSED {
			a.view.StartDrag(spatial.ScreenPos{X: float32(e.X), Y: float32(e.Y)})
		} else {
			a.view.EndDrag()
		}
	case sdl.BUTTON_RIGHT:
		a.mlook = e.State == sdl.PRESSED && window.InputFocus()
		window.SetRelativeMouse(a.mlook)
	}
}

func (a *App) handleMouseMotionEvent(e *sdl.MouseMotionEvent) {
	if a.mlook {
		a.ctrl.Push(control.Event{
			Kind: control.PointerDelta,
			DX:   float32(e.XRel),
			DY:   float32(e.YRel),
		})
		return
	}
	if id, ok := a.view.Dragging(); ok {
		a.view.DragTo(spatial.ScreenPos{X: float32(e.X), Y: float32(e.Y)})
		// push the moved origin to the route right away, not on the next
		// pose sweep
		if src, ok := a.scene.Source(id); ok {
			a.sys.SetOrigin(id, src.Position)
		}
	}
}

func (a *App) handleMouseWheelEvent(e *sdl.MouseWheelEvent) {
	s := cvars.ViewScale.Value() + float32(e.Y)*2
	cvars.ViewScale.SetValue(qmath.Clamp(2, s, 200))
}

func (a *App) hovered() (int, bool) {
	x, y, _ := sdl.GetMouseState()
	return a.view.Hover(spatial.ScreenPos{X: float32(x), Y: float32(y)})
}

func (a *App) togglePlayback(id int) {
	src, ok := a.scene.Source(id)
	if !ok {
		return
	}
	if src.Playing {
		a.sys.Stop(id)
		a.scene.SetPlaying(id, false)
		return
	}
	a.sys.Start(snd.Start{
		SourceID: id,
		Material: src.Material,
		Origin:   src.Position,
		Gain:     src.Volume,
	})
	a.scene.SetPlaying(id, true)
}

// toggleAll stops everything if anything plays, otherwise starts all sources
// in the same frame.
func (a *App) toggleAll() {
	srcs := a.scene.Sources()
	anyPlaying := false
	for _, src := range srcs {
		if src.Playing {
			anyPlaying = true
			break
		}
	}
	if anyPlaying {
		a.sys.StopAll()
		for _, src := range srcs {
			a.scene.SetPlaying(src.ID, false)
		}
		return
	}
	starts := make([]snd.Start, 0, len(srcs))
	for _, src := range srcs {
		starts = append(starts, snd.Start{
			SourceID: src.ID,
			Material: src.Material,
			Origin:   src.Position,
			Gain:     src.Volume,
		})
		a.scene.SetPlaying(src.ID, true)
	}
	a.sys.StartAll(starts)
}

// removeSource stops the route before the scene forgets the source.
func (a *App) removeSource(id int) {
	a.sys.Stop(id)
	a.scene.RemoveSource(id)
	log.Printf("removed source %d", id)
}

// bumpSourceVolume adjusts one source and pushes the new gain to its route
// in the same event, ahead of the next pose sweep.
func (a *App) bumpSourceVolume(id int, d float32) {
	src, ok := a.scene.Source(id)
	if !ok {
		return
	}
	v := qmath.Clamp(0, src.Volume+d, 1)
	a.scene.SetVolume(id, v)
	a.sys.SetGain(id, v)
}

func bumpVolume(d float32) {
	cvars.MasterVolume.SetValue(qmath.Clamp(0, cvars.MasterVolume.Value()+d, 1))
}
