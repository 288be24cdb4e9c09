package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/trace"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Bars      map[trace.State]lipgloss.Color
}

// Available themes
var (
	ThemeDark = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#60a5fa"),
		Secondary: lipgloss.Color("#22c55e"),
		Text:      lipgloss.Color("#f3f4f6"),
		Muted:     lipgloss.Color("#6b7280"),
		Bars: map[trace.State]lipgloss.Color{
			trace.Default:   "#60a5fa",
			trace.Comparing: "#ef4444",
			trace.Sorted:    "#22c55e",
			trace.Pivot:     "#eab308",
			trace.Active:    "#3b82f6",
		},
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Bars: map[trace.State]lipgloss.Color{
			trace.Default:   "#00ffff",
			trace.Comparing: "#ff00ff",
			trace.Sorted:    "#00ff00",
			trace.Pivot:     "#ffff00",
			trace.Active:    "#ff8800",
		},
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Bars: map[trace.State]lipgloss.Color{
			trace.Default:   "#008800",
			trace.Comparing: "#ffff00",
			trace.Sorted:    "#88ff88",
			trace.Pivot:     "#ffffff",
			trace.Active:    "#00ff00",
		},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Bars: map[trace.State]lipgloss.Color{
			trace.Default:   "#888888",
			trace.Comparing: "#ffffff",
			trace.Sorted:    "#cccccc",
			trace.Pivot:     "#0088ff",
			trace.Active:    "#aaaaaa",
		},
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Bars: map[trace.State]lipgloss.Color{
			trace.Default:   "#0077be",
			trace.Comparing: "#ff4444",
			trace.Sorted:    "#00ff88",
			trace.Pivot:     "#ffd700",
			trace.Active:    "#00a8cc",
		},
	}

	// Default theme
	CurrentTheme = ThemeDark

	// All available themes
	Themes = []Theme{
		ThemeDark,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDark
}
