// Package tui provides the interactive Bubble Tea dashboard for budgie.
package tui

import (
	"fmt"
	"strings"

	"budgie/internal/app"
	"budgie/internal/config"
	"budgie/internal/tui/components"
	"budgie/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabBudget = iota
	tabBlocks
	tabHistory
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	tracker *app.Tracker
	cfg     config.Config

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	statusMsg string

	// Per-tab state
	budget  budgetState
	blocks  blocksState
	history historyState

	// Modal form (huh), nil when no form is open. formVals is shared by
	// pointer because Bubble Tea copies the model on every update while the
	// form keeps writing through the bindings it was built with.
	form     *huh.Form
	formKind formKind
	formVals *formValues
}

// NewApp creates a new TUI app model around a loaded tracker.
func NewApp(tracker *app.Tracker, cfg config.Config) App {
	return App{tracker: tracker, cfg: cfg}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
			return a, nil
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
			return a, nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Open form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Blocks search mode intercepts all keys when active
		if a.activeTab == tabBlocks && a.blocks.searching {
			return a.updateBlocksSearch(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// List navigation on every tab
		switch key {
		case "j", "down":
			a.moveCursor(1)
			return a, nil
		case "k", "up":
			a.moveCursor(-1)
			return a, nil
		case "g":
			a.setCursor(0)
			return a, nil
		case "G":
			a.setCursor(1 << 30)
			return a, nil
		}

		// Tab-specific actions
		switch a.activeTab {
		case tabBudget:
			if m, cmd, handled := a.handleBudgetKey(key); handled {
				return m, cmd
			}
		case tabBlocks:
			if m, cmd, handled := a.handleBlocksKey(key); handled {
				return m, cmd
			}
		case tabHistory:
			if m, cmd, handled := a.handleHistoryKey(key); handled {
				return m, cmd
			}
		}

		// Tab navigation
		switch key {
		case "b":
			a.activeTab = tabBudget
		case "K":
			a.activeTab = tabBlocks
		case "h":
			a.activeTab = tabHistory
		case "tab", "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab", "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		}
		return a, nil
	}

	// Forward unhandled messages to the open form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.applyForm()
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		a.statusMsg = ""
		return a, nil
	}

	return a, cmd
}

// moveCursor moves the active tab's list cursor by delta, clamped.
func (a *App) moveCursor(delta int) {
	a.setCursor(a.cursor() + delta)
}

func (a *App) cursor() int {
	switch a.activeTab {
	case tabBudget:
		return a.budget.cursor
	case tabBlocks:
		return a.blocks.cursor
	default:
		return a.history.cursor
	}
}

func (a *App) setCursor(pos int) {
	var limit int
	switch a.activeTab {
	case tabBudget:
		limit = len(a.tracker.Expenses())
	case tabBlocks:
		limit = len(a.visibleBlocks())
	default:
		limit = len(a.tracker.Reports())
	}

	if pos > limit-1 {
		pos = limit - 1
	}
	if pos < 0 {
		pos = 0
	}

	switch a.activeTab {
	case tabBudget:
		a.budget.cursor = pos
	case tabBlocks:
		a.blocks.cursor = pos
	default:
		a.history.cursor = pos
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  budgie needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"b K h", "Jump to tab"},
		{"← → / tab", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"g G", "First / Last row"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Budget tab"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"m", "Set monthly payment"},
		{"u", "Set project duration"},
		{"c", "Add custom expense"},
		{"d", "Delete selected expense"},
		{"s", "Save report snapshot"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Blocks tab"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"enter/a", "Add expense from block"},
		{"n", "New block"},
		{"e", "Edit block"},
		{"t", "Toggle active"},
		{"d", "Delete block"},
		{"/", "Search blocks"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("History tab"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"s", "Save report snapshot"},
		{"d", "Delete report"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(theme.Active.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	hints := "[?]help  [q]uit"
	statusBar := components.RenderStatusBar(w, hints, a.statusMsg)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabBudget:
		content = a.renderBudgetTab(cw, contentH)
	case tabBlocks:
		content = a.renderBlocksTab(cw, contentH)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
