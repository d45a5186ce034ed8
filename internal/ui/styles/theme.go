package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for one channel.
type Theme struct {
	Name string

	// Accent colors
	Primary   lipgloss.Color // on-air marker, ring, active controls
	Secondary lipgloss.Color // highlights inside panels

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase  lipgloss.Color // screen backdrop
	BgPanel lipgloss.Color // control panels

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Love    lipgloss.Color // thank-you message

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style // bold, bright
	Accent  lipgloss.Style // bold primary
	Active  lipgloss.Style // selected chip or tab
	Chip    lipgloss.Style // unselected chip or tab
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Love    lipgloss.Style
}

// DefaultTheme is used for unknown theme names.
const DefaultTheme = "classical"

var themes = map[string]*Theme{
	"classical": {
		Name:        "classical",
		Primary:     lipgloss.Color("#c9a962"),
		Secondary:   lipgloss.Color("#d9bc72"),
		FgBase:      lipgloss.Color("#f5f0e8"),
		FgMuted:     lipgloss.Color("#a8a29e"),
		FgSubtle:    lipgloss.Color("#6b6662"),
		BgBase:      lipgloss.Color("#1a1a1f"),
		BgPanel:     lipgloss.Color("#252528"),
		Border:      lipgloss.Color("#4a4642"),
		BorderFocus: lipgloss.Color("#c9a962"),
		Success:     lipgloss.Color("#8fbf7f"),
		Error:       lipgloss.Color("#e06c5f"),
		Warning:     lipgloss.Color("#facc15"),
		Love:        lipgloss.Color("#f9a8d4"),
	},
	"jazz": {
		Name:        "jazz",
		Primary:     lipgloss.Color("#e0a458"),
		Secondary:   lipgloss.Color("#c0564b"),
		FgBase:      lipgloss.Color("#f3e6d3"),
		FgMuted:     lipgloss.Color("#b39b85"),
		FgSubtle:    lipgloss.Color("#6e5a4c"),
		BgBase:      lipgloss.Color("#1c1412"),
		BgPanel:     lipgloss.Color("#2a1d19"),
		Border:      lipgloss.Color("#5a4036"),
		BorderFocus: lipgloss.Color("#e0a458"),
		Success:     lipgloss.Color("#9ccc65"),
		Error:       lipgloss.Color("#ef5350"),
		Warning:     lipgloss.Color("#ffca28"),
		Love:        lipgloss.Color("#f9a8d4"),
	},
	"lofi": {
		Name:        "lofi",
		Primary:     lipgloss.Color("#c4a7e7"),
		Secondary:   lipgloss.Color("#ebbcba"),
		FgBase:      lipgloss.Color("#e0def4"),
		FgMuted:     lipgloss.Color("#908caa"),
		FgSubtle:    lipgloss.Color("#56526e"),
		BgBase:      lipgloss.Color("#191724"),
		BgPanel:     lipgloss.Color("#1f1d2e"),
		Border:      lipgloss.Color("#403d52"),
		BorderFocus: lipgloss.Color("#c4a7e7"),
		Success:     lipgloss.Color("#9ccfd8"),
		Error:       lipgloss.Color("#eb6f92"),
		Warning:     lipgloss.Color("#f6c177"),
		Love:        lipgloss.Color("#f9a8d4"),
	},
}

// T returns the default theme.
func T() *Theme {
	return themes[DefaultTheme]
}

// ForName returns the theme called name, or the default theme.
func ForName(name string) *Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return T()
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Background(t.Primary).
			Bold(true).
			Padding(0, 1),
		Chip: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Padding(0, 1),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Love:    lipgloss.NewStyle().Foreground(t.Love).Bold(true),
	}
}
