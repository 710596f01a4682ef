// Package spatial is the coordinate transform between world space, listener
// relative space and screen space. Everything here is a pure function of its
// arguments so the render pass and hit testing cannot disagree.
package spatial

import (
	"github.com/chewxy/math32"

	qmath "github.com/clarkezyz/shac-sim/math"
	"github.com/clarkezyz/shac-sim/math/vec"
	"github.com/clarkezyz/shac-sim/scene"
)

// FOVHalfAngle is the horizontal culling half angle in degrees. A source at
// exactly this azimuth is still in view.
const FOVHalfAngle = 90

type ScreenPos struct {
	X, Y float32
}

// WorldToScreen projects a world position to screen space. The projection is
// top-down: world X maps to screen X, world Z to negative screen Y, world Y
// (elevation) maps to no screen axis. In Authoring mode the listener position
// is subtracted first so the listener lands on the projection center.
func WorldToScreen(world vec.Vec3, listener scene.Pose, mode scene.FrameMode, scale float32, center ScreenPos) ScreenPos {
	if mode == scene.Authoring {
		world = vec.Sub(world, listener.Position)
	}
	return ScreenPos{
		X: center.X + world.X*scale,
		Y: center.Y - world.Z*scale,
	}
}

// ScreenToWorld is the exact inverse of WorldToScreen. The projection drops
// elevation, so refHeight supplies the world Y of the result (the dragged
// source keeps its height).
func ScreenToWorld(p ScreenPos, listener scene.Pose, mode scene.FrameMode, scale float32, center ScreenPos, refHeight float32) vec.Vec3 {
	w := vec.Vec3{
		X: (p.X - center.X) / scale,
		Z: (center.Y - p.Y) / scale,
	}
	if mode == scene.Authoring {
		w = vec.Add(w, listener.Position)
	}
	w.Y = refHeight
	return w
}

// RelativeOffset returns the world-true offset from the listener to a source
// position. It is independent of the frame mode; audio spatialization and FOV
// culling both derive from it.
func RelativeOffset(src vec.Vec3, listener scene.Pose) vec.Vec3 {
	return vec.Sub(src, listener.Position)
}

// Azimuth returns the horizontal angle in degrees from the listener facing
// direction to the offset, normalized into (-180,180]. Positive is to the
// listener's right at yaw 0.
func Azimuth(rel vec.Vec3, yaw float32) float32 {
	deg := math32.Atan2(rel.X, rel.Z) * (180 / math32.Pi)
	return qmath.AngleMod180_32(deg - yaw)
}

// InView reports whether a source at the given azimuth survives FOV culling.
// The boundary is inclusive on both sides.
func InView(azimuth float32) bool {
	return math32.Abs(azimuth) <= FOVHalfAngle
}

// AngleVectors derives the listener orientation vectors from yaw and pitch
// in degrees. Up is fixed, there is no roll. Right depends on yaw alone so it
// stays well defined when pitch points forward along up.
func AngleVectors(yaw, pitch float32) (forward, right, up vec.Vec3) {
	deg := math32.Pi * 2 / 360
	sy, cy := math32.Sincos(yaw * deg)
	sp, cp := math32.Sincos(pitch * deg)

	forward = vec.Vec3{X: sy * cp, Y: sp, Z: -cy * cp}
	up = vec.Vec3{Y: 1}
	right = vec.Vec3{X: cy, Z: sy}
	return forward, right, up
}
