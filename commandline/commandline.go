// Package commandline holds the program flags. Positional arguments are the
// audio files to ingest at startup.
package commandline

import (
	"flag"
	"log"

	"github.com/clarkezyz/shac-sim/cvars"
)

var (
	fullscreen bool
	noSound    bool

	height int
	width  int

	fetchURL   string
	listenerAt string
	remoteURL  string

	radius float64
	scale  float64
)

func init() {
	flag.BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen mode")
	flag.BoolVar(&noSound, "nosound", false, "disable audio output")
	flag.IntVar(&width, "width", 1280, "window width")
	flag.IntVar(&height, "height", 720, "window height")
	flag.StringVar(&fetchURL, "fetch", "", "base URL of the audio retrieval service")
	flag.StringVar(&listenerAt, "listener", "", "initial listener position as x,y,z")
	flag.StringVar(&remoteURL, "url", "", "media URL to ingest through the retrieval service")
	flag.Float64Var(&radius, "radius", 0, "movement radius in meters")
	flag.Float64Var(&scale, "scale", 0, "view scale in pixels per meter")
}

func Fullscreen() bool   { return fullscreen }
func NoSound() bool      { return noSound }
func Width() int         { return width }
func Height() int        { return height }
func ListenerAt() string { return listenerAt }
func RemoteURL() string  { return remoteURL }

// Files returns the positional arguments.
func Files() []string { return flag.Args() }

// Apply pushes flag overrides into the cvar registry. Radius and scale must
// be positive, anything else is rejected and the default kept.
func Apply() {
	applyOverrides(radius, scale, fetchURL)
}

func applyOverrides(radius, scale float64, fetchURL string) {
	if radius != 0 {
		if radius < 0 {
			log.Printf("ignoring non-positive radius %v", radius)
		} else {
			cvars.MovementRadius.SetValue(float32(radius))
		}
	}
	if scale != 0 {
		if scale < 0 {
			log.Printf("ignoring non-positive scale %v", scale)
		} else {
			cvars.ViewScale.SetValue(float32(scale))
		}
	}
	if fetchURL != "" {
		cvars.FetchURL.SetByString(fetchURL)
	}
}
