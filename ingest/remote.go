package ingest

import (
	"bytes"
	"context"
	"io"

	"github.com/gopxl/beep/v2/mp3"
	"github.com/pkg/errors"

	"github.com/clarkezyz/shac-sim/fetch"
	"github.com/clarkezyz/shac-sim/scene"
	"github.com/clarkezyz/shac-sim/snd"
)

// AddRemote ingests one track through the retrieval service. The service
// always delivers mp3. On any failure the scene is left untouched and the
// caller falls back to local files only.
func AddRemote(ctx context.Context, sc *scene.Scene, sys *snd.SndSys, client *fetch.Client, mediaURL string) (int, error) {
	if client == nil {
		return 0, errors.New("no retrieval service configured")
	}
	info, err := client.Info(ctx, mediaURL)
	if err != nil {
		return 0, err
	}
	stream, err := client.Audio(ctx, mediaURL)
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	// the mp3 decoder needs seeking, drain the stream first
	data, err := io.ReadAll(stream)
	if err != nil {
		return 0, errors.Wrapf(err, "read audio stream for %s", mediaURL)
	}
	s, format, err := mp3.Decode(nopCloser{bytes.NewReader(data)})
	if err != nil {
		return 0, errors.Wrapf(err, "decode audio for %s", mediaURL)
	}
	defer s.Close()

	m := sys.Precache(mediaURL, buffer(s, format, sys.Format()))
	return sc.AddSource(m, info.Title, SpreadPosition(len(sc.Sources()))), nil
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
