package export

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/san-kum/sortvis/internal/present"
)

// SVG is a present.Renderer that records one frame as an SVG document. Each
// Clear starts a new frame; Present freezes it.
type SVG struct {
	width, height int
	sb            strings.Builder
	frame         string
}

func NewSVG(width, height int) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) Clear(bg present.Color) {
	s.sb.Reset()
	fmt.Fprintf(&s.sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.width, s.height, s.width, s.height, bg.Hex())
}

func (s *SVG) DrawFilledRect(x, y, w, h int, c present.Color) {
	fmt.Fprintf(&s.sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x, y, w, h, c.Hex())
}

func (s *SVG) DrawText(text string, x, y, size int, c present.Color) {
	// SVG anchors text at the baseline
	fmt.Fprintf(&s.sb, `<text x="%d" y="%d" font-family="monospace" font-size="%d" fill="%s">%s</text>
`, x, y+size, size, c.Hex(), html.EscapeString(text))
}

func (s *SVG) Present() {
	s.sb.WriteString("</svg>\n")
	s.frame = s.sb.String()
}

func (s *SVG) ViewportSize() (int, int) { return s.width, s.height }

// String returns the last presented frame, or "" before the first.
func (s *SVG) String() string { return s.frame }

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.frame)
	return int64(n), err
}

// WriteFile saves the last presented frame to path.
func (s *SVG) WriteFile(path string) error {
	if s.frame == "" {
		return fmt.Errorf("no frame to write")
	}
	return os.WriteFile(path, []byte(s.frame), 0644)
}
