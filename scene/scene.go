// Package scene owns the authoritative listener pose and source set. All
// consumers (audio, visualization, controller) read through a Scene instance,
// never a cached copy. Mutation is synchronous and immediately visible.
package scene

import (
	qmath "github.com/clarkezyz/shac-sim/math"
	"github.com/clarkezyz/shac-sim/math/vec"
)

type Pose struct {
	Position vec.Vec3
	Yaw      float32 // degrees, [0,360)
	Pitch    float32 // degrees, [-90,90]
}

type Source struct {
	ID       int
	Name     string
	Material int // index into the sound cache
	Position vec.Vec3
	Volume   float32 // [0,1]
	Locked   bool
	Playing  bool
}

type Scene struct {
	listener  Pose
	sources   []Source
	nextID    int
	frameMode FrameMode
	viewMode  ViewMode
}

func New() *Scene {
	return &Scene{nextID: 1}
}

// AddSource adds a source and returns its id. Ids are assigned at creation
// and never reused within a session.
func (s *Scene) AddSource(material int, name string, pos vec.Vec3) int {
	id := s.nextID
	s.nextID++
	s.sources = append(s.sources, Source{
		ID:       id,
		Name:     name,
		Material: material,
		Position: pos,
		Volume:   1,
	})
	return id
}

func (s *Scene) RemoveSource(id int) {
	for i, src := range s.sources {
		if src.ID == id {
			s.sources = append(s.sources[:i], s.sources[i+1:]...)
			return
		}
	}
}

func (s *Scene) find(id int) *Source {
	for i := range s.sources {
		if s.sources[i].ID == id {
			return &s.sources[i]
		}
	}
	return nil
}

// SetPosition is a no-op if id is unknown or the source is locked. Unknown
// ids are expected, drag callbacks can race source removal.
func (s *Scene) SetPosition(id int, pos vec.Vec3) {
	src := s.find(id)
	if src == nil || src.Locked {
		return
	}
	src.Position = pos
}

func (s *Scene) SetVolume(id int, v float32) {
	src := s.find(id)
	if src == nil {
		return
	}
	src.Volume = qmath.Clamp(0, v, 1)
}

func (s *Scene) SetLocked(id int, locked bool) {
	src := s.find(id)
	if src == nil {
		return
	}
	src.Locked = locked
}

func (s *Scene) SetPlaying(id int, playing bool) {
	src := s.find(id)
	if src == nil {
		return
	}
	src.Playing = playing
}

// Source returns a copy of the source with the given id.
func (s *Scene) Source(id int) (Source, bool) {
	src := s.find(id)
	if src == nil {
		return Source{}, false
	}
	return *src, true
}

// Sources returns an ordered snapshot of all sources. Iteration order is
// insertion order and stable across mutations of individual sources.
func (s *Scene) Sources() []Source {
	out := make([]Source, len(s.sources))
	copy(out, s.sources)
	return out
}

func (s *Scene) SetListenerPose(p Pose) {
	p.Yaw = qmath.AngleMod32(p.Yaw)
	p.Pitch = qmath.Clamp(-90, p.Pitch, 90)
	s.listener = p
}

func (s *Scene) ListenerPose() Pose {
	return s.listener
}

// ResetListener moves the listener back to the world origin with zero
// orientation.
func (s *Scene) ResetListener() {
	s.listener = Pose{}
}

func (s *Scene) FrameMode() FrameMode {
	return s.frameMode
}

func (s *Scene) SetFrameMode(m FrameMode) {
	s.frameMode = m
}

func (s *Scene) ToggleFrameMode() {
	if s.frameMode == Composition {
		s.frameMode = Authoring
	} else {
		s.frameMode = Composition
	}
}

func (s *Scene) ViewMode() ViewMode {
	return s.viewMode
}

func (s *Scene) SetViewMode(m ViewMode) {
	s.viewMode = m
}

func (s *Scene) ToggleViewMode() {
	if s.viewMode == TopDown {
		s.viewMode = FirstPerson
	} else {
		s.viewMode = TopDown
	}
}
