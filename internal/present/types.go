package present

import "fmt"

type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// Hex formats the colour as #rrggbb.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Renderer draws one frame: Clear, any number of rectangles, Present.
type Renderer interface {
	Clear(c Color)
	DrawFilledRect(x, y, width, height int, c Color)
	Present()
	ViewportSize() (width, height int)
}

// TextDrawer is implemented by renderers that can also print the HUD.
type TextDrawer interface {
	DrawText(text string, x, y, size int, c Color)
}

type EventType int

const (
	EventKey EventType = iota
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventQuit:
		return "quit"
	}
	return fmt.Sprintf("event(%d)", int(t))
}

type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeySpace
	KeyR
	KeyS
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyP
)

var keyNames = map[Key]string{
	KeyNone:   "none",
	KeyEscape: "escape",
	KeySpace:  "space",
	KeyR:      "r",
	KeyS:      "s",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyP:      "p",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("key(%d)", int(k))
}

type Event struct {
	Type EventType
	Key  Key
}

func KeyEvent(k Key) Event { return Event{Type: EventKey, Key: k} }

// InputSource yields the events pending since the previous poll. It must not block.
type InputSource interface {
	Poll() []Event
}
