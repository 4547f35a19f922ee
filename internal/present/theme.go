package present

import "github.com/san-kum/sortvis/internal/bars"

// Palette maps highlight states to colours.
type Palette struct {
	Background Color
	Normal     Color
	Comparing  Color
	Swapping   Color
	Sorted     Color
	Text       Color
	Muted      Color
}

func (p Palette) For(h bars.Highlight) Color {
	switch h {
	case bars.Comparing:
		return p.Comparing
	case bars.Swapping:
		return p.Swapping
	case bars.Sorted:
		return p.Sorted
	}
	return p.Normal
}

type Theme struct {
	Name    string
	Palette Palette
}

// Available themes
var (
	ThemeClassic = Theme{
		Name: "classic",
		Palette: Palette{
			Background: RGB(30, 30, 30),
			Normal:     RGB(0, 153, 255),
			Comparing:  RGB(255, 153, 0),
			Swapping:   RGB(255, 51, 51),
			Sorted:     RGB(0, 255, 102),
			Text:       RGB(230, 230, 230),
			Muted:      RGB(120, 120, 120),
		},
	}

	ThemeRetro = Theme{
		Name: "retro",
		Palette: Palette{
			Background: RGB(0, 17, 0),
			Normal:     RGB(0, 204, 0),
			Comparing:  RGB(255, 255, 0),
			Swapping:   RGB(255, 0, 0),
			Sorted:     RGB(136, 255, 136),
			Text:       RGB(0, 255, 0),
			Muted:      RGB(0, 85, 0),
		},
	}

	ThemeMinimal = Theme{
		Name: "minimal",
		Palette: Palette{
			Background: RGB(10, 10, 10),
			Normal:     RGB(180, 180, 180),
			Comparing:  RGB(255, 255, 255),
			Swapping:   RGB(0, 136, 255),
			Sorted:     RGB(140, 140, 140),
			Text:       RGB(255, 255, 255),
			Muted:      RGB(60, 60, 60),
		},
	}

	ThemeOcean = Theme{
		Name: "ocean",
		Palette: Palette{
			Background: RGB(0, 26, 51),
			Normal:     RGB(0, 119, 190),
			Comparing:  RGB(255, 215, 0),
			Swapping:   RGB(255, 68, 68),
			Sorted:     RGB(0, 255, 136),
			Text:       RGB(224, 240, 255),
			Muted:      RGB(68, 136, 170),
		},
	}

	ThemeSunset = Theme{
		Name: "sunset",
		Palette: Palette{
			Background: RGB(45, 27, 46),
			Normal:     RGB(255, 107, 107),
			Comparing:  RGB(254, 202, 87),
			Swapping:   RGB(255, 159, 243),
			Sorted:     RGB(95, 208, 104),
			Text:       RGB(255, 245, 245),
			Muted:      RGB(139, 107, 140),
		},
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

func LookupTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	if t, ok := LookupTheme(name); ok {
		return t
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
