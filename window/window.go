package window

import (
	"log"

	"github.com/veandco/go-sdl2/sdl"
)

var (
	window   *sdl.Window
	renderer *sdl.Renderer
)

func Renderer() *sdl.Renderer {
	return renderer
}

func Size() (int, int) {
	w, h := window.GetSize()
	return int(w), int(h)
}

func InputFocus() bool {
	return window.GetFlags()&(sdl.WINDOW_MOUSE_FOCUS|sdl.WINDOW_INPUT_FOCUS) != 0
}

func SetRelativeMouse(relative bool) {
	sdl.SetRelativeMouseMode(relative)
}

func Init(width, height int32, fullscreen bool, title string) {
	if window != nil {
		return
	}
	flags := uint32(sdl.WINDOW_RESIZABLE)
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, flags)
	if err != nil {
		log.Fatalf("Couldn't create window: %v", err)
	}
	window = w
	renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		log.Fatalf("Couldn't create renderer: %v", err)
	}
}

func Shutdown() {
	if renderer != nil {
		renderer.Destroy()
		renderer = nil
	}
	if window != nil {
		window.Destroy()
		window = nil
	}
}
