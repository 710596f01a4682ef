// Package control integrates discrete input events into the listener pose.
// Events are queued by the platform layer and drained exactly once per tick,
// so every pose change is visible to the same frame's render and audio reads.
package control

import (
	"github.com/chewxy/math32"

	"github.com/clarkezyz/shac-sim/cvars"
	qmath "github.com/clarkezyz/shac-sim/math"
	"github.com/clarkezyz/shac-sim/math/vec"
	"github.com/clarkezyz/shac-sim/scene"
)

type Action int

const (
	NoAction Action = iota
	Forward
	Back
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	PointerDelta
	StickSample
)

// Event is one discrete input. Key events carry the action and the raw key
// number (for chord tracking); pointer deltas and stick samples carry axes.
type Event struct {
	Kind   EventKind
	Action Action
	Key    int
	DX, DY float32
}

type Controller struct {
	scene *scene.Scene
	queue []Event

	forward, back       button
	moveLeft, moveRight button
	moveUp, moveDown    button

	lookDX, lookDY     float32
	stickSide, stickFw float32
}

func NewController(s *scene.Scene) *Controller {
	return &Controller{scene: s}
}

// Push queues an event for the next Tick. Events are never processed
// mid-frame.
func (c *Controller) Push(ev Event) {
	c.queue = append(c.queue, ev)
}

func (c *Controller) button(a Action) *button {
	switch a {
	case Forward:
		return &c.forward
	case Back:
		return &c.back
	case MoveLeft:
		return &c.moveLeft
	case MoveRight:
		return &c.moveRight
	case MoveUp:
		return &c.moveUp
	case MoveDown:
		return &c.moveDown
	}
	return nil
}

// Tick drains the event queue and writes the resulting pose to the scene
// before returning. Orientation is applied first, the movement delta rotates
// by the updated yaw.
func (c *Controller) Tick() {
	for _, ev := range c.queue {
		switch ev.Kind {
		case KeyDown:
			if b := c.button(ev.Action); b != nil {
				b.downKey(ev.Key)
			}
		case KeyUp:
			if b := c.button(ev.Action); b != nil {
				b.upKey(ev.Key)
			}
		case PointerDelta:
			c.lookDX += ev.DX
			c.lookDY += ev.DY
		case StickSample:
			c.stickSide += ev.DX
			c.stickFw += ev.DY
		}
	}
	c.queue = c.queue[:0]

	pose := c.scene.ListenerPose()

	sens := cvars.Sensitivity.Value()
	pose.Yaw = qmath.AngleMod32(pose.Yaw + c.lookDX*sens)
	pose.Pitch = qmath.Clamp(-90, pose.Pitch-c.lookDY*sens, 90)
	c.lookDX = 0
	c.lookDY = 0

	fw := cvars.ForwardSpeed.Value() * (c.forward.ConsumeImpulse() - c.back.ConsumeImpulse())
	side := cvars.SideSpeed.Value() * (c.moveRight.ConsumeImpulse() - c.moveLeft.ConsumeImpulse())
	up := cvars.UpSpeed.Value() * (c.moveUp.ConsumeImpulse() - c.moveDown.ConsumeImpulse())
	fw += cvars.ForwardSpeed.Value() * c.stickFw
	side += cvars.SideSpeed.Value() * c.stickSide
	c.stickFw = 0
	c.stickSide = 0

	if fw != 0 || side != 0 || up != 0 {
		pose.Position = integrate(pose.Position, pose.Yaw, side, up, fw)
	}
	// clamp even without a movement delta, the position may have been
	// written from outside the bubble
	pose.Position = ClampRadius(pose.Position, cvars.MovementRadius.Value())

	c.scene.SetListenerPose(pose)
}

// integrate rotates the view relative delta (strafe, vertical, forward) into
// world space by the yaw and adds it. Elevation is unscaled.
func integrate(pos vec.Vec3, yaw, side, up, fw float32) vec.Vec3 {
	deg := math32.Pi * 2 / 360
	sy, cy := math32.Sincos(yaw * deg)
	return vec.Add(pos, vec.Vec3{
		X: fw*sy + side*cy,
		Y: up,
		Z: fw*cy - side*sy,
	})
}

// ClampRadius caps the position magnitude at radius by uniform radial scale
// back: direction is preserved, only distance is capped.
func ClampRadius(pos vec.Vec3, radius float32) vec.Vec3 {
	l := pos.Length()
	if l <= radius {
		return pos
	}
	return pos.Scale(radius / l)
}
