// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/clarkezyz/shac-sim/scene"
	"github.com/clarkezyz/shac-sim/snd/speaker"
	"github.com/clarkezyz/shac-sim/spatial"
)

// UpdatePoses pushes the current scene state into the spatializer: listener
// orientation vectors derived from yaw/pitch, and origin plus gain for every
// routed source. Sources without an active route get no parameter writes.
// Offsets are always world-true, the scene's frame mode plays no part here.
func (s *SndSys) UpdatePoses(sc *scene.Scene) {
	if s == nil {
		return
	}
	pose := sc.ListenerPose()
	forward, right, up := spatial.AngleVectors(pose.Yaw, pose.Pitch)
	l := listener{
		Origin:  pose.Position,
		Forward: forward,
		Right:   right,
		Up:      up,
	}

	speaker.Lock()
	s.listener = l
	for id, r := range s.routes {
		src, ok := sc.Source(id)
		if !ok {
			continue
		}
		r.origin = src.Position
		r.gain = float64(src.Volume)
		r.spatialize(l.Origin, l.Right)
	}
	speaker.Unlock()
}
