// Package helpbindings provides a scrollable popup for displaying keybindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/radiotedu/radiotedu-tui/internal/keymap"
	"github.com/radiotedu/radiotedu-tui/internal/ui"
	"github.com/radiotedu/radiotedu-tui/internal/ui/popup"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"channel",
	"player",
	"crossfader",
	"pomodoro",
	"settings",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":     "Global",
	"channel":    "Channels",
	"player":     "Player",
	"crossfader": "Crossfader",
	"pomodoro":   "Pomodoro",
	"settings":   "Timer Settings",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	theme        *styles.Theme
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a new help bindings model drawn with theme t.
func New(t *styles.Theme) Model {
	return Model{theme: t}
}

// SetTheme switches the palette, used when the channel changes.
func (m *Model) SetTheme(t *styles.Theme) {
	m.theme = t
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")

	// Width comes from all lines so the box does not resize while scrolling.
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := slices.Clone(lines[start:end])
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	d := popup.New(m.theme)
	d.Title = "Help"
	d.Content = strings.Join(visible, "\n")
	d.Footer = m.buildFooter()
	return d.Box(m.Width())
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func joinKeys(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keyLabel(k)
	}
	if len(labels) > 4 {
		return labels[0] + ".." + labels[len(labels)-1]
	}
	return strings.Join(labels, ", ")
}

func (m Model) buildContent() string {
	st := m.theme.S()
	keyStyle := st.Accent.Bold(true)
	descStyle := st.Base
	headerStyle := st.Title
	separatorStyle := st.Subtle

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(joinKeys(b.Keys)))
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(separatorStyle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		keyStr := joinKeys(b.Keys)
		sb.WriteString(keyStyle.Render(keyStr + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(keyStr))))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// Room for title, footer, borders and margins.
	return max(m.Height()-ui.PopupChrome, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
