// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"testing"

	"github.com/gopxl/beep/v2"

	"github.com/clarkezyz/shac-sim/math/vec"
	"github.com/clarkezyz/shac-sim/scene"
)

func testSys() *SndSys {
	return newSndSys()
}

func testMaterial(s *SndSys, name string) int {
	buf := beep.NewBuffer(s.Format())
	buf.Append(beep.Silence(64))
	return s.Precache(name, buf)
}

func TestPrecacheDedup(t *testing.T) {
	s := testSys()
	a := testMaterial(s, "a")
	b := testMaterial(s, "b")
	if a == b {
		t.Fatalf("distinct materials share index %d", a)
	}
	buf := beep.NewBuffer(s.Format())
	if got := s.Precache("a", buf); got != a {
		t.Errorf("Precache(a) = %d want %d", got, a)
	}
}

func TestStartStop(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	s.Start(Start{SourceID: 1, Material: m, Origin: vec.Vec3{X: 5}, Gain: 1})
	if !s.Active(1) {
		t.Fatal("route not active after start")
	}
	s.Stop(1)
	if s.Active(1) {
		t.Fatal("route active after stop")
	}
}

func TestStopIdempotent(t *testing.T) {
	s := testSys()
	// stopping a source with no route must be a no-op
	s.Stop(7)
	m := testMaterial(s, "a")
	s.Start(Start{SourceID: 7, Material: m, Gain: 1})
	s.Stop(7)
	s.Stop(7)
	if s.Active(7) {
		t.Fatal("route active after double stop")
	}
}

func TestStartWhileActive(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	s.Start(Start{SourceID: 1, Material: m, Gain: 0.5})
	r := s.routes[1]
	s.Start(Start{SourceID: 1, Material: m, Gain: 0.9})
	if s.routes[1] != r {
		t.Error("second start replaced the active route")
	}
	if r.gain != 0.5 {
		t.Errorf("gain = %v want 0.5", r.gain)
	}
}

func TestStartUnknownMaterial(t *testing.T) {
	s := testSys()
	s.Start(Start{SourceID: 1, Material: 99, Gain: 1})
	if s.Active(1) {
		t.Error("route active for unknown material")
	}
}

func TestStartAll(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	s.StartAll([]Start{
		{SourceID: 1, Material: m, Gain: 1},
		{SourceID: 2, Material: m, Gain: 1},
	})
	if !s.Active(1) || !s.Active(2) {
		t.Error("not all routes active after StartAll")
	}
}

func TestStreamAfterStop(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	s.Start(Start{SourceID: 1, Material: m, Gain: 1})
	r := s.routes[1]
	s.Stop(1)
	samples := make([][2]float64, 16)
	if n, ok := r.Stream(samples); n != 0 || ok {
		t.Errorf("stopped route streamed n=%d ok=%v", n, ok)
	}
}

func TestPan(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	sc := scene.New()
	right := sc.AddSource(m, "right", vec.Vec3{X: 10})
	left := sc.AddSource(m, "left", vec.Vec3{X: -10})
	s.Start(Start{SourceID: right, Material: m, Origin: vec.Vec3{X: 10}, Gain: 1})
	s.Start(Start{SourceID: left, Material: m, Origin: vec.Vec3{X: -10}, Gain: 1})
	s.UpdatePoses(sc)

	r := s.routes[right]
	if r.right <= r.left {
		t.Errorf("source at +X: left=%v right=%v", r.left, r.right)
	}
	l := s.routes[left]
	if l.left <= l.right {
		t.Errorf("source at -X: left=%v right=%v", l.left, l.right)
	}
}

func TestSetGain(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	s.Start(Start{SourceID: 1, Material: m, Origin: vec.Vec3{X: 5}, Gain: 1})
	s.SetGain(1, 0.25)
	if got := s.routes[1].gain; got != 0.25 {
		t.Errorf("gain = %v want 0.25", got)
	}
	// no route, no write
	s.SetGain(2, 0.5)
	if s.Active(2) {
		t.Error("SetGain created a route")
	}
}

func TestSetOriginRespatializes(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	s.updateListener(listener{Right: vec.Vec3{X: 1}})
	s.Start(Start{SourceID: 1, Material: m, Origin: vec.Vec3{X: 10}, Gain: 1})
	r := s.routes[1]
	if r.right <= r.left {
		t.Fatalf("source at +X: left=%v right=%v", r.left, r.right)
	}
	s.SetOrigin(1, vec.Vec3{X: -10})
	if r.origin.X != -10 {
		t.Errorf("origin = %v want X -10", r.origin)
	}
	if r.left <= r.right {
		t.Errorf("source moved to -X: left=%v right=%v", r.left, r.right)
	}
}

func TestAttenuationWithDistance(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	sc := scene.New()
	nearID := sc.AddSource(m, "near", vec.Vec3{Z: 2})
	farID := sc.AddSource(m, "far", vec.Vec3{Z: 80})
	s.Start(Start{SourceID: nearID, Material: m, Origin: vec.Vec3{Z: 2}, Gain: 1})
	s.Start(Start{SourceID: farID, Material: m, Origin: vec.Vec3{Z: 80}, Gain: 1})
	s.UpdatePoses(sc)

	n, f := s.routes[nearID], s.routes[farID]
	if n.left+n.right <= f.left+f.right {
		t.Errorf("near source quieter than far: near=%v far=%v", n.left+n.right, f.left+f.right)
	}
}

func TestFrameModeDoesNotAffectAudio(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	sc := scene.New()
	id := sc.AddSource(m, "a", vec.Vec3{X: 7, Z: 3})
	sc.SetListenerPose(scene.Pose{Position: vec.Vec3{X: 1, Z: -2}, Yaw: 30})
	s.Start(Start{SourceID: id, Material: m, Origin: vec.Vec3{X: 7, Z: 3}, Gain: 1})

	sc.SetFrameMode(scene.Composition)
	s.UpdatePoses(sc)
	r := s.routes[id]
	compLeft, compRight := r.left, r.right

	sc.SetFrameMode(scene.Authoring)
	s.UpdatePoses(sc)
	if r.left != compLeft || r.right != compRight {
		t.Errorf("frame mode changed spatialization: (%v,%v) vs (%v,%v)",
			compLeft, compRight, r.left, r.right)
	}
}

func TestUpdatePosesOnlyRouted(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	sc := scene.New()
	sc.AddSource(m, "silent", vec.Vec3{X: 1})
	s.UpdatePoses(sc)
	if len(s.routes) != 0 {
		t.Errorf("UpdatePoses created %d routes", len(s.routes))
	}
}

func TestRemoveStopsRouteFirst(t *testing.T) {
	s := testSys()
	m := testMaterial(s, "a")
	sc := scene.New()
	id := sc.AddSource(m, "a", vec.Vec3{X: 3})
	s.Start(Start{SourceID: id, Material: m, Origin: vec.Vec3{X: 3}, Gain: 1})

	// removal order: stop the route, then delete the source
	s.Stop(id)
	sc.RemoveSource(id)

	if s.Active(id) {
		t.Error("route still active after removal")
	}
	if _, ok := sc.Source(id); ok {
		t.Error("source still present after removal")
	}
	// no further parameter writes may reference the removed source
	s.UpdatePoses(sc)
	if len(s.routes) != 0 {
		t.Errorf("%d routes survived removal", len(s.routes))
	}
}

func TestNilSystem(t *testing.T) {
	var s *SndSys
	// every call must be a safe no-op
	s.Start(Start{SourceID: 1})
	s.StartAll([]Start{{SourceID: 1}})
	s.Stop(1)
	s.StopAll()
	s.SetGain(1, 0.5)
	s.SetOrigin(1, vec.Vec3{})
	s.SetVolume(1)
	s.UpdatePoses(scene.New())
	s.Shutdown()
	s.Block()
	s.Unblock()
	if s.Active(1) {
		t.Error("nil system reports active route")
	}
	if got := s.Precache("x", nil); got != -1 {
		t.Errorf("nil Precache = %d want -1", got)
	}
}
