// Package view projects the scene to screen space and resolves pointer
// interactions back into world space. Hit testing reuses the exact projection
// of the render pass so the two can never drift apart.
package view

import (
	"github.com/chewxy/math32"

	"github.com/clarkezyz/shac-sim/cvars"
	qmath "github.com/clarkezyz/shac-sim/math"
	"github.com/clarkezyz/shac-sim/scene"
	"github.com/clarkezyz/shac-sim/spatial"
)

const (
	// pickRadius is the maximum screen distance in pixels between pointer
	// and marker center for a drag to latch on.
	pickRadius = 16
	// coincidentEps skips sources sitting on the listener, their marker
	// would degenerate.
	coincidentEps = 1e-3
)

// Marker is one projected source.
type Marker struct {
	ID       int
	Pos      spatial.ScreenPos
	Radius   float32
	Distance float32
	Locked   bool
	Playing  bool
	Dragged  bool
}

type View struct {
	scene  *scene.Scene
	Center spatial.ScreenPos
	dragID int // 0 while not dragging
}

func New(s *scene.Scene, width, height int) *View {
	v := &View{scene: s}
	v.Resize(width, height)
	return v
}

func (v *View) Resize(width, height int) {
	v.Center = spatial.ScreenPos{X: float32(width) / 2, Y: float32(height) / 2}
}

func (v *View) scale() float32 {
	return cvars.ViewScale.Value()
}

// Project returns the markers for the current frame in source order. FOV
// culling applies only in first-person composition view.
func (v *View) Project() []Marker {
	pose := v.scene.ListenerPose()
	mode := v.scene.FrameMode()
	cull := v.scene.ViewMode() == scene.FirstPerson && mode == scene.Composition
	scale := v.scale()

	var out []Marker
	for _, src := range v.scene.Sources() {
		rel := spatial.RelativeOffset(src.Position, pose)
		dist := rel.Length()
		if dist < coincidentEps {
			continue
		}
		if cull && !spatial.InView(spatial.Azimuth(rel, pose.Yaw)) {
			continue
		}
		out = append(out, Marker{
			ID:       src.ID,
			Pos:      spatial.WorldToScreen(src.Position, pose, mode, scale, v.Center),
			Radius:   markerRadius(dist),
			Distance: dist,
			Locked:   src.Locked,
			Playing:  src.Playing,
			Dragged:  src.ID == v.dragID,
		})
	}
	return out
}

// markerRadius shrinks markers with distance.
func markerRadius(dist float32) float32 {
	return qmath.Clamp(4, 18-dist*0.35, 18)
}

// ListenerMarker is the listener's screen position. In Authoring mode this
// is always the projection center.
func (v *View) ListenerMarker() spatial.ScreenPos {
	pose := v.scene.ListenerPose()
	return spatial.WorldToScreen(pose.Position, pose, v.scene.FrameMode(), v.scale(), v.Center)
}

// Pick returns the first unlocked source within pickRadius of p, iterating
// in render order. Markers the render pass skipped are not pickable.
func (v *View) Pick(p spatial.ScreenPos) (int, bool) {
	for _, m := range v.Project() {
		if m.Locked {
			continue
		}
		dx := m.Pos.X - p.X
		dy := m.Pos.Y - p.Y
		if math32.Sqrt(dx*dx+dy*dy) <= pickRadius {
			return m.ID, true
		}
	}
	return 0, false
}

// Hover returns the first source within pickRadius of p, locked or not.
// Pick is for drags, Hover is for everything else.
func (v *View) Hover(p spatial.ScreenPos) (int, bool) {
	for _, m := range v.Project() {
		dx := m.Pos.X - p.X
		dy := m.Pos.Y - p.Y
		if math32.Sqrt(dx*dx+dy*dy) <= pickRadius {
			return m.ID, true
		}
	}
	return 0, false
}

// StartDrag latches onto the source under p. At most one source is dragged
// at a time; a second start while dragging is ignored.
func (v *View) StartDrag(p spatial.ScreenPos) bool {
	if v.dragID != 0 {
		return false
	}
	id, ok := v.Pick(p)
	if !ok {
		return false
	}
	v.dragID = id
	return true
}

// DragTo maps the pointer position back to world space and moves the
// dragged source there. The write is a no-op if the source was locked
// mid-drag; the drag ends if the source was removed.
func (v *View) DragTo(p spatial.ScreenPos) {
	if v.dragID == 0 {
		return
	}
	src, ok := v.scene.Source(v.dragID)
	if !ok {
		v.dragID = 0
		return
	}
	pose := v.scene.ListenerPose()
	w := spatial.ScreenToWorld(p, pose, v.scene.FrameMode(), v.scale(), v.Center, src.Position.Y)
	v.scene.SetPosition(v.dragID, w)
}

func (v *View) EndDrag() {
	v.dragID = 0
}

// Dragging returns the dragged source id, if any.
func (v *View) Dragging() (int, bool) {
	return v.dragID, v.dragID != 0
}
