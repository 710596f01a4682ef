// Package ingest turns audio files into scene sources. Each ingested track
// is decoded, resampled to the speaker rate, buffered, and placed on the
// default circular spread.
package ingest

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"

	"github.com/clarkezyz/shac-sim/math/vec"
	"github.com/clarkezyz/shac-sim/scene"
	"github.com/clarkezyz/shac-sim/snd"
)

const (
	spreadSlots  = 8
	spreadRadius = 10
)

// SpreadPosition is the default placement of the i-th ingested source, on a
// circle of spreadRadius around the world origin.
func SpreadPosition(i int) vec.Vec3 {
	angle := float32(i) / spreadSlots * 2 * math32.Pi
	return vec.Vec3{
		X: math32.Cos(angle) * spreadRadius,
		Z: math32.Sin(angle) * spreadRadius,
	}
}

func decode(name string, r io.ReadSeeker) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		return wav.Decode(r)
	case ".mp3":
		return mp3.Decode(readCloser{r})
	case ".flac":
		return flac.Decode(r)
	case ".ogg":
		return vorbis.Decode(readCloser{r})
	}
	return nil, beep.Format{}, errors.Errorf("unsupported audio format %q", filepath.Ext(name))
}

// readCloser adds a no-op Close for decoders that want one; the caller owns
// the underlying file.
type readCloser struct {
	io.ReadSeeker
}

func (readCloser) Close() error { return nil }

// buffer drains the streamer into a buffer in the target format, resampling
// when the rates differ.
func buffer(s beep.Streamer, format beep.Format, target beep.Format) *beep.Buffer {
	buf := beep.NewBuffer(target)
	if format.SampleRate != target.SampleRate {
		s = beep.Resample(4, format.SampleRate, target.SampleRate, s)
	}
	buf.Append(s)
	return buf
}

// File decodes one local file into a buffer in the target format.
func File(path string, target beep.Format) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	s, format, err := decode(path, f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	defer s.Close()
	return buffer(s, format, target), nil
}

// AddFiles ingests local files, one source per file. A file that fails to
// decode is reported and skipped, it never aborts the batch.
func AddFiles(sc *scene.Scene, sys *snd.SndSys, paths []string) []int {
	var ids []int
	for _, p := range paths {
		buf, err := File(p, sys.Format())
		if err != nil {
			log.Printf("ingest: %v", err)
			continue
		}
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		m := sys.Precache(p, buf)
		id := sc.AddSource(m, name, SpreadPosition(len(sc.Sources())))
		ids = append(ids, id)
	}
	return ids
}
