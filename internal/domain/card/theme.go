package card

import "fmt"

// Theme is a card color scheme. Colors are hex strings fed straight to the
// renderer so exported images match the on-screen card exactly.
type Theme struct {
	Name            string
	FrontBackground string
	BackBackground  string
	Text            string
	TextMuted       string
}

// Built-in themes, matching the web app's card designer.
var themes = map[string]Theme{
	"smartwave": {
		Name:            "smartwave",
		FrontBackground: "#3b82f6",
		BackBackground:  "#1e40af",
		Text:            "#ffffff",
		TextMuted:       "#e0e7ff",
	},
	"minimal": {
		Name:            "minimal",
		FrontBackground: "#f5f1e8",
		BackBackground:  "#ede9e0",
		Text:            "#1f2937",
		TextMuted:       "#4b5563",
	},
	"professional": {
		Name:            "professional",
		FrontBackground: "#ffffff",
		BackBackground:  "#1e3a8a",
		Text:            "#1e3a8a",
		TextMuted:       "#3b82f6",
	},
}

// DefaultTheme is used when no theme is selected.
func DefaultTheme() Theme {
	return themes["smartwave"]
}

// ThemeByName resolves a theme selection.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (valid: smartwave, minimal, professional)", name)
	}
	return t, nil
}

// ThemeNames lists the available theme names in cycling order.
func ThemeNames() []string {
	return []string{"smartwave", "minimal", "professional"}
}
