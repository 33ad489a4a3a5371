package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the live view.
type Theme struct {
	Name  string
	Title lipgloss.Color
	Fade  lipgloss.Color
	Wire  lipgloss.Color
	Label lipgloss.Color
	Value lipgloss.Color
	Muted lipgloss.Color
	High  lipgloss.Color
	Mid   lipgloss.Color
	Low   lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:  "cyberpunk",
		Title: lipgloss.Color("#00ffff"),
		Fade:  lipgloss.Color("#ff00ff"),
		Wire:  lipgloss.Color("#ff66ff"),
		Label: lipgloss.Color("#888899"),
		Value: lipgloss.Color("#00ccff"),
		Muted: lipgloss.Color("#666688"),
		High:  lipgloss.Color("#ff4444"),
		Mid:   lipgloss.Color("#ffcc00"),
		Low:   lipgloss.Color("#00ff88"),
	}

	ThemePaper = Theme{
		Name:  "paper",
		Title: lipgloss.Color("#f5f0e1"),
		Fade:  lipgloss.Color("#c8b88a"),
		Wire:  lipgloss.Color("#e8dcc0"),
		Label: lipgloss.Color("#9a8f78"),
		Value: lipgloss.Color("#fff8e7"),
		Muted: lipgloss.Color("#6b6250"),
		High:  lipgloss.Color("#d9534f"),
		Mid:   lipgloss.Color("#e0a84f"),
		Low:   lipgloss.Color("#8fbf7f"),
	}

	ThemeOcean = Theme{
		Name:  "ocean",
		Title: lipgloss.Color("#00a8cc"),
		Fade:  lipgloss.Color("#0077be"),
		Wire:  lipgloss.Color("#66ccee"),
		Label: lipgloss.Color("#4488aa"),
		Value: lipgloss.Color("#e0f0ff"),
		Muted: lipgloss.Color("#335566"),
		High:  lipgloss.Color("#ff4444"),
		Mid:   lipgloss.Color("#ffcc00"),
		Low:   lipgloss.Color("#00ff88"),
	}

	ThemeMono = Theme{
		Name:  "mono",
		Title: lipgloss.Color("#ffffff"),
		Fade:  lipgloss.Color("#888888"),
		Wire:  lipgloss.Color("#dddddd"),
		Label: lipgloss.Color("#888888"),
		Value: lipgloss.Color("#ffffff"),
		Muted: lipgloss.Color("#555555"),
		High:  lipgloss.Color("#ffffff"),
		Mid:   lipgloss.Color("#bbbbbb"),
		Low:   lipgloss.Color("#777777"),
	}

	Themes = []Theme{ThemeCyberpunk, ThemePaper, ThemeOcean, ThemeMono}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
