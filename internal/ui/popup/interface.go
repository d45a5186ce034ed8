// Package popup provides modal boxes drawn over the player.
package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for modal popup components.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the popup content (without outer border or placement).
	View() string
	SetSize(width, height int)
}
