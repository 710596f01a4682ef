// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"

	qmath "github.com/clarkezyz/shac-sim/math"
	"github.com/clarkezyz/shac-sim/math/vec"
)

// clipDistance is the distance at which a source becomes inaudible.
const clipDistance = 100.0

// route is the active playback state of one source. A source with no route
// is inactive; stop tears the route down and the mixer drops it on the next
// stream call.
type route struct {
	sourceID int
	handle   uuid.UUID
	origin   vec.Vec3
	gain     float64
	left     float64
	right    float64
	sound    beep.Streamer
	stopped  bool
}

// spatialize derives the stereo scales from the world-true offset between
// source and listener. The pan follows the projection of the offset onto the
// listener right vector, attenuation falls off linearly to clipDistance.
func (r *route) spatialize(listenerPos, listenerRight vec.Vec3) {
	v := vec.Sub(r.origin, listenerPos)
	dist := v.Length() * (1.0 / clipDistance)
	v = v.Normalize()
	dot := vec.Dot(listenerRight, v)
	d := 1.0 - dist
	lscale := (1.0 - dot) * d
	rscale := (1.0 + dot) * d
	r.left = qmath.Clamp(0, float64(lscale), 1)
	r.right = qmath.Clamp(0, float64(rscale), 1)
}

func (r *route) Stream(samples [][2]float64) (int, bool) {
	if r.stopped || r.sound == nil {
		return 0, false
	}
	n, ok := r.sound.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= r.left * r.gain
		samples[i][1] *= r.right * r.gain
	}
	return n, ok
}

func (r *route) Err() error {
	return nil
}
