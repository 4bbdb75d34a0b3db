package report

// Theme selects the report color scheme.
type Theme string

const (
	// ThemeLight is the light color theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// Palette holds theme-specific chart colors.
type Palette struct {
	Background string
	Text       string
	Bar        string
	Line       string
}

var darkPalette = Palette{
	Background: "#121212",
	Text:       "#ffffff",
	Bar:        "#ffa726", // orange-400.
	Line:       "#29b6f6", // light-blue-400.
}

var lightPalette = Palette{
	Background: "#ffffff",
	Text:       "#000000",
	Bar:        "#ff9800", // orange-500.
	Line:       "#039be5", // light-blue-600.
}

// GetPalette returns the chart palette for a given theme.
func GetPalette(theme Theme) Palette {
	switch theme {
	case ThemeDark:
		return darkPalette
	case ThemeLight:
		return lightPalette
	default:
		return darkPalette
	}
}
