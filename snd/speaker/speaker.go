// SPDX-License-Identifier: GPL-2.0-or-later

// Package speaker mixes beep streamers into a single oto player.
package speaker

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"
)

var (
	mu      sync.Mutex
	mixer   beep.Mixer
	samples [][2]float64
	context *oto.Context
	player  *oto.Player
	volume  = 1.0
)

// Init opens the audio device. bufferSize is the number of stereo frames
// streamed per read.
func Init(sampleRate beep.SampleRate, bufferSize int) error {
	if player != nil {
		return errors.New("speaker already initialized")
	}
	var (
		ready chan struct{}
		err   error
	)
	context, ready, err = oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(sampleRate),
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize speaker")
	}
	<-ready

	mixer = beep.Mixer{}
	samples = make([][2]float64, bufferSize)
	player = context.NewPlayer(reader{})
	player.Play()
	return nil
}

func Close() {
	if player != nil {
		player.Close()
		player = nil
	}
}

// Play adds streamers to the mix. All streamers passed in one call start on
// the same frame.
func Play(s ...beep.Streamer) {
	mu.Lock()
	mixer.Add(s...)
	mu.Unlock()
}

// Clear drops every streamer from the mix.
func Clear() {
	mu.Lock()
	mixer = beep.Mixer{}
	mu.Unlock()
}

// Lock must be held while mutating state a playing streamer reads.
func Lock() {
	mu.Lock()
}

func Unlock() {
	mu.Unlock()
}

// Suspend pauses the device, e.g. when the window loses focus.
func Suspend() {
	if context != nil {
		context.Suspend()
	}
}

func Resume() {
	if context != nil {
		context.Resume()
	}
}

func SetVolume(v float64) {
	mu.Lock()
	volume = v
	mu.Unlock()
}

// reader drains the mixer as 16 bit little endian stereo PCM.
type reader struct{}

func (reader) Read(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()

	total := len(p) / 4 * 4
	buf := p[:total]
	for len(buf) > 0 {
		n := min(len(buf)/4, len(samples))
		mixer.Stream(samples[:n])
		for i := range samples[:n] {
			for c := range samples[i] {
				v := samples[i][c] * volume
				if v < -1 {
					v = -1
				} else if v > 1 {
					v = 1
				}
				s := int16(v * (1<<15 - 1))
				buf[i*4+c*2] = byte(s)
				buf[i*4+c*2+1] = byte(s >> 8)
			}
		}
		buf = buf[n*4:]
	}
	return total, nil
}
