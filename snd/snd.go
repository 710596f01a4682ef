// SPDX-License-Identifier: GPL-2.0-or-later

// Package snd plays sources through the speaker with per-route gain and
// stereo placement derived from the world-true listener/source offsets.
package snd

import (
	"log"

	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"

	"github.com/clarkezyz/shac-sim/math/vec"
	"github.com/clarkezyz/shac-sim/snd/speaker"
)

const (
	desiredSampleRate = 44100
	desiredChannelNum = 2
)

func chunkSize() int {
	if desiredSampleRate <= 11025 {
		return 256
	} else if desiredSampleRate <= 22050 {
		return 512
	} else if desiredSampleRate <= 44100 {
		return 1024
	} else if desiredSampleRate <= 56000 {
		return 2048 /* for 48 kHz */
	}
	return 4096 /* for 96 kHz */
}

type listener struct {
	Origin  vec.Vec3
	Forward vec.Vec3
	Right   vec.Vec3
	Up      vec.Vec3
}

// Start describes one route for a synchronized start.
type Start struct {
	SourceID int
	Material int
	Origin   vec.Vec3
	Gain     float32
}

type SndSys struct {
	cache    cache
	routes   map[int]*route
	listener listener
}

// InitSoundSystem opens the speaker. It returns nil when sound is disabled
// or the device cannot be opened; the nil system accepts all calls as no-ops.
func InitSoundSystem(active bool) *SndSys {
	if !active {
		return nil
	}
	if err := speaker.Init(beep.SampleRate(desiredSampleRate), chunkSize()); err != nil {
		log.Println(err)
		return nil
	}
	return newSndSys()
}

func newSndSys() *SndSys {
	return &SndSys{
		routes: make(map[int]*route),
	}
}

func (s *SndSys) precache(name string, buf *beep.Buffer) int {
	if i, ok := s.cache.Has(name); ok {
		return i
	}
	return s.cache.Add(&material{name: name, buf: buf})
}

func (s *SndSys) newRoute(st Start) *route {
	m := s.cache.Get(st.Material)
	if m == nil {
		log.Printf("asked for sound out of range %v", st.Material)
		return nil
	}
	r := &route{
		sourceID: st.SourceID,
		handle:   uuid.Must(uuid.NewV7()),
		origin:   st.Origin,
		gain:     float64(st.Gain),
		sound:    beep.Loop(-1, m.buf.Streamer(0, m.buf.Len())),
	}
	r.spatialize(s.listener.Origin, s.listener.Right)
	return r
}

func (s *SndSys) start(st Start) {
	if _, ok := s.routes[st.SourceID]; ok {
		// already active
		return
	}
	r := s.newRoute(st)
	if r == nil {
		return
	}
	speaker.Play(r)
	s.routes[st.SourceID] = r
}

// startAll brings up several routes in one speaker call so they begin on the
// same output frame.
func (s *SndSys) startAll(starts []Start) {
	var streamers []beep.Streamer
	for _, st := range starts {
		if _, ok := s.routes[st.SourceID]; ok {
			continue
		}
		r := s.newRoute(st)
		if r == nil {
			continue
		}
		s.routes[st.SourceID] = r
		streamers = append(streamers, r)
	}
	speaker.Play(streamers...)
}

// stop is idempotent, stopping a source with no route is a no-op.
func (s *SndSys) stop(id int) {
	r, ok := s.routes[id]
	if !ok {
		return
	}
	speaker.Lock()
	r.stopped = true
	r.sound = nil
	speaker.Unlock()
	delete(s.routes, id)
}

func (s *SndSys) stopAll() {
	speaker.Clear()
	s.routes = make(map[int]*route)
}

func (s *SndSys) active(id int) bool {
	_, ok := s.routes[id]
	return ok
}

func (s *SndSys) setGain(id int, g float32) {
	r, ok := s.routes[id]
	if !ok {
		return
	}
	speaker.Lock()
	r.gain = float64(g)
	speaker.Unlock()
}

func (s *SndSys) setOrigin(id int, origin vec.Vec3) {
	r, ok := s.routes[id]
	if !ok {
		return
	}
	speaker.Lock()
	r.origin = origin
	r.spatialize(s.listener.Origin, s.listener.Right)
	speaker.Unlock()
}

func (s *SndSys) updateListener(l listener) {
	speaker.Lock()
	s.listener = l
	for _, r := range s.routes {
		r.spatialize(l.Origin, l.Right)
	}
	speaker.Unlock()
}

func (s *SndSys) shutdown() {
	speaker.Close()
}

// The API, all safe on a nil system.

func (s *SndSys) Precache(name string, buf *beep.Buffer) int {
	if s == nil {
		return -1
	}
	return s.precache(name, buf)
}

func (s *SndSys) Start(st Start) {
	if s == nil {
		return
	}
	s.start(st)
}

func (s *SndSys) StartAll(starts []Start) {
	if s == nil {
		return
	}
	s.startAll(starts)
}

func (s *SndSys) Stop(id int) {
	if s == nil {
		return
	}
	s.stop(id)
}

func (s *SndSys) StopAll() {
	if s == nil {
		return
	}
	s.stopAll()
}

func (s *SndSys) Active(id int) bool {
	if s == nil {
		return false
	}
	return s.active(id)
}

func (s *SndSys) SetGain(id int, g float32) {
	if s == nil {
		return
	}
	s.setGain(id, g)
}

func (s *SndSys) SetOrigin(id int, origin vec.Vec3) {
	if s == nil {
		return
	}
	s.setOrigin(id, origin)
}

func (s *SndSys) SetVolume(v float32) {
	if s == nil {
		return
	}
	speaker.SetVolume(float64(v))
}

// SampleRate is the rate every cached material must be resampled to.
func (s *SndSys) SampleRate() beep.SampleRate {
	return beep.SampleRate(desiredSampleRate)
}

// Format is the buffer format for cached materials.
func (s *SndSys) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(desiredSampleRate),
		NumChannels: desiredChannelNum,
		Precision:   2,
	}
}

func (s *SndSys) Shutdown() {
	if s == nil {
		return
	}
	s.shutdown()
}

// gets called when the window loses focus
func (s *SndSys) Block() {
	if s == nil {
		return
	}
	speaker.Suspend()
}

// gets called when the window gains focus
func (s *SndSys) Unblock() {
	if s == nil {
		return
	}
	speaker.Resume()
}
