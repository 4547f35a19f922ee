package gui

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sortvis/internal/apperrors"
	"github.com/san-kum/sortvis/internal/present"
)

type Options struct {
	Width  int
	Height int
	Title  string
	FPS    int
}

// Window is a raylib window acting as both Renderer and InputSource. Only
// one may be open at a time and it must be used from the main goroutine.
type Window struct {
	closed bool
}

var keymap = map[int32]present.Key{
	rl.KeyEscape: present.KeyEscape,
	rl.KeySpace:  present.KeySpace,
	rl.KeyR:      present.KeyR,
	rl.KeyS:      present.KeyS,
	rl.KeyLeft:   present.KeyLeft,
	rl.KeyRight:  present.KeyRight,
	rl.KeyUp:     present.KeyUp,
	rl.KeyDown:   present.KeyDown,
	rl.KeyP:      present.KeyP,
}

// Open creates the window. Pair it with Close.
func Open(opts Options) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, apperrors.NewInitError("window", errors.New("raylib could not create a window"))
	}
	rl.SetTargetFPS(int32(opts.FPS))
	// escape is handled as a key event, not by raylib's close request
	rl.SetExitKey(0)
	return &Window{}, nil
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	rl.CloseWindow()
}

func (w *Window) Clear(c present.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toRL(c))
}

func (w *Window) DrawFilledRect(x, y, width, height int, c present.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), toRL(c))
}

func (w *Window) DrawText(text string, x, y, size int, c present.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), toRL(c))
}

func (w *Window) Present() { rl.EndDrawing() }

func (w *Window) ViewportSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// Poll drains raylib's key queue. Raylib only refreshes it in EndDrawing, so
// events arrive once per presented frame.
func (w *Window) Poll() []present.Event {
	var events []present.Event
	if rl.WindowShouldClose() {
		events = append(events, present.Event{Type: present.EventQuit})
	}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if key, ok := keymap[k]; ok {
			events = append(events, present.KeyEvent(key))
		}
	}
	return events
}

func toRL(c present.Color) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
