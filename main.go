package main

import (
	"context"
	"flag"
	"log"

	"github.com/gopxl/mainthread/v2"

	"github.com/clarkezyz/shac-sim/app"
	"github.com/clarkezyz/shac-sim/commandline"
	"github.com/clarkezyz/shac-sim/control"
	"github.com/clarkezyz/shac-sim/cvars"
	"github.com/clarkezyz/shac-sim/fetch"
	"github.com/clarkezyz/shac-sim/ingest"
	"github.com/clarkezyz/shac-sim/scene"
	"github.com/clarkezyz/shac-sim/snd"
)

func main() {
	flag.Parse()
	commandline.Apply()
	mainthread.Run(run)
}

func run() {
	if err := mainthread.Call(realMain); err != nil {
		log.Fatal(err)
	}
}

func realMain() error {
	sys := snd.InitSoundSystem(!commandline.NoSound())
	defer sys.Shutdown()

	sc := scene.New()
	if at := commandline.ListenerAt(); at != "" {
		if p, err := app.ParseVec3(at); err != nil {
			log.Printf("ignoring -listener: %v", err)
		} else {
			pose := sc.ListenerPose()
			pose.Position = control.ClampRadius(p, cvars.MovementRadius.Value())
			sc.SetListenerPose(pose)
		}
	}

	ingest.AddFiles(sc, sys, commandline.Files())
	if u := commandline.RemoteURL(); u != "" {
		client := fetch.New(cvars.FetchURL.String())
		if _, err := ingest.AddRemote(context.Background(), sc, sys, client, u); err != nil {
			log.Printf("remote ingest of %s failed: %v", u, err)
		}
	}

	return app.New(sc, sys).Run()
}
