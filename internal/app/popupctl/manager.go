package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/radiotedu/radiotedu-tui/internal/ui/helpbindings"
	"github.com/radiotedu/radiotedu-tui/internal/ui/overlay"
	"github.com/radiotedu/radiotedu-tui/internal/ui/pomodoroview"
	"github.com/radiotedu/radiotedu-tui/internal/ui/popup"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// Manager manages all modal popups and overlays.
type Manager struct {
	popups   map[Type]popup.Popup
	errorMsg string
	theme    *styles.Theme
	width    int
	height   int
}

// New creates a new Manager drawing with theme t.
func New(t *styles.Theme) *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		theme:  t,
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// SetTheme restyles open popups after a channel change.
func (p *Manager) SetTheme(t *styles.Theme) {
	p.theme = t
	if h, ok := p.popups[Help].(*helpbindings.Model); ok {
		h.SetTheme(t)
	}
	if s := p.Settings(); s != nil {
		s.SetTheme(t)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Help, Settings:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
		// Nothing to hide
	case Error:
		p.errorMsg = ""
	case Help, Settings:
		delete(p.popups, t)
	}
}

// ShowHelp displays the help popup with the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New(p.theme)
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowSettings displays the timer settings with the current durations.
func (p *Manager) ShowSettings(focusMinutes, breakMinutes int) tea.Cmd {
	return p.Show(Settings, pomodoroview.NewSettings(p.theme, focusMinutes, breakMinutes))
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// Settings returns the settings popup, or nil when it is closed.
func (p *Manager) Settings() *pomodoroview.Settings {
	if s, ok := p.popups[Settings].(*pomodoroview.Settings); ok {
		return s
	}
	return nil
}

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Error popup: dismiss on any key
	if p.errorMsg != "" {
		p.errorMsg = ""
		return true, nil
	}

	active := p.ActivePopup()
	if active == None {
		return false, nil
	}
	return true, p.Forward(active, msg)
}

// Forward delivers a message to a visible popup.
func (p *Manager) Forward(t Type, msg tea.Msg) tea.Cmd {
	pop := p.popups[t]
	if pop == nil {
		return nil
	}
	updated, cmd := pop.Update(msg)
	p.popups[t] = updated
	return cmd
}

// RenderOverlay renders active popup(s) centered on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		var box string
		if t == Error {
			box = p.renderError()
		} else {
			box = p.popups[t].View()
		}
		base = overlay.Place(base, box, overlay.Center, p.width, p.height, 0)
	}
	return base
}

func (p *Manager) renderError() string {
	d := popup.New(p.theme)
	d.Title = "Error"
	d.Content = p.errorMsg
	d.Footer = "Press any key to dismiss"
	return d.Box(p.width)
}
