package view

import (
	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/clarkezyz/shac-sim/cvars"
	"github.com/clarkezyz/shac-sim/math/vec"
	"github.com/clarkezyz/shac-sim/spatial"
)

var (
	background = sdl.Color{R: 14, G: 16, B: 24, A: 255}
	bubbleLine = sdl.Color{R: 44, G: 48, B: 66, A: 255}
	srcIdle    = sdl.Color{R: 90, G: 140, B: 235, A: 255}
	srcPlaying = sdl.Color{R: 90, G: 210, B: 140, A: 255}
	srcLocked  = sdl.Color{R: 120, G: 120, B: 126, A: 255}
	dragRing   = sdl.Color{R: 240, G: 235, B: 140, A: 255}
	listenerC  = sdl.Color{R: 235, G: 175, B: 80, A: 255}
)

// Draw renders one frame. It reads the scene exclusively through Project and
// ListenerMarker so the on-screen state always matches hit testing.
func (v *View) Draw(r *sdl.Renderer) {
	r.SetDrawColor(background.R, background.G, background.B, background.A)
	r.Clear()

	pose := v.scene.ListenerPose()
	mode := v.scene.FrameMode()
	scale := v.scale()

	// movement bubble around the world origin
	origin := spatial.WorldToScreen(vec.Vec3{}, pose, mode, scale, v.Center)
	gfx.CircleRGBA(r, int32(origin.X), int32(origin.Y),
		int32(cvars.MovementRadius.Value()*scale),
		bubbleLine.R, bubbleLine.G, bubbleLine.B, bubbleLine.A)

	for _, m := range v.Project() {
		c := markerColor(m)
		gfx.FilledCircleRGBA(r, int32(m.Pos.X), int32(m.Pos.Y), int32(m.Radius),
			c.R, c.G, c.B, c.A)
		if m.Dragged {
			gfx.CircleRGBA(r, int32(m.Pos.X), int32(m.Pos.Y), int32(m.Radius)+3,
				dragRing.R, dragRing.G, dragRing.B, dragRing.A)
		}
	}

	v.drawListener(r, pose.Yaw)
	r.Present()
}

func markerColor(m Marker) sdl.Color {
	switch {
	case m.Locked:
		return srcLocked
	case m.Playing:
		return srcPlaying
	}
	return srcIdle
}

func (v *View) drawListener(r *sdl.Renderer, yaw float32) {
	p := v.ListenerMarker()
	gfx.FilledCircleRGBA(r, int32(p.X), int32(p.Y), 6,
		listenerC.R, listenerC.G, listenerC.B, listenerC.A)

	// heading line along the projected facing direction
	deg := math32.Pi * 2 / 360
	sy, cy := math32.Sincos(yaw * deg)
	const l = 14
	r.SetDrawColor(listenerC.R, listenerC.G, listenerC.B, listenerC.A)
	r.DrawLine(int32(p.X), int32(p.Y), int32(p.X+sy*l), int32(p.Y-cy*l))
}
