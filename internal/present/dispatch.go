package present

import "github.com/san-kum/sortvis/internal/sim"

// Dispatch applies the command bound to k and reports whether it asks to quit.
func Dispatch(c *sim.Controller, k Key) (quit bool) {
	switch k {
	case KeyEscape:
		return true
	case KeySpace:
		c.ToggleRunning()
	case KeyR:
		c.Reset()
	case KeyS:
		c.Shuffle()
	case KeyLeft:
		c.SelectAlgorithm(sim.Previous)
	case KeyRight:
		c.SelectAlgorithm(sim.Next)
	case KeyUp:
		c.AdjustSpeed(-sim.SpeedStep)
	case KeyDown:
		c.AdjustSpeed(sim.SpeedStep)
	case KeyP:
		c.TogglePaused()
	}
	return false
}
