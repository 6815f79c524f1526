// Package tui provides the interactive Bubble Tea dashboard for osacorpus.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/theirongolddev/osacorpus/internal/config"
	"github.com/theirongolddev/osacorpus/internal/model"
	"github.com/theirongolddev/osacorpus/internal/projection"
	"github.com/theirongolddev/osacorpus/internal/tui/components"
	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	// Data
	inputs  model.Inputs
	initial model.Inputs
	cmp     *projection.Comparison
	err     error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string

	// Per-tab state
	params      paramsState
	tableOffset int
	tableDetail bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool

	configPath string
	themeName  string
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	// Scroll navigation
	scrollOverhead    = 10 // approximate header + status bar height for half-page calc
	minHalfPageScroll = 1  // minimum lines for half-page scroll
	minContentHeight  = 5  // minimum content area height
)

// Options configure a new dashboard.
type Options struct {
	ConfigPath string // where "w" and the setup form save; empty means config.Path()
	Theme      string
	NeedSetup  bool // run the setup form before showing the dashboard
}

// NewApp creates a new TUI app model. Inputs outside the control ranges are
// pulled into range.
func NewApp(in model.Inputs, opts Options) App {
	clamped := in.Clamp()

	a := App{
		inputs:     clamped,
		initial:    clamped,
		needSetup:  opts.NeedSetup,
		configPath: opts.ConfigPath,
		themeName:  opts.Theme,
		params:     newParamsState(),
	}
	if a.configPath == "" {
		a.configPath = config.Path()
	}
	if a.themeName == "" {
		a.themeName = theme.FlexokiDark.Name
	}
	if clamped != in {
		a.flash = "Some inputs were outside the control ranges and have been adjusted."
	}

	if a.needSetup {
		a.setupVals = SetupValuesFrom(a.inputs, a.themeName)
		a.setupForm = NewSetupForm(&a.setupVals)
	}

	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) recompute() {
	cmp, err := projection.Compare(context.Background(), a.inputs)
	a.cmp, a.err = cmp, err
	if cmp != nil {
		a.tableOffset = min(a.tableOffset, max(cmp.Years()-1, 0))
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabTable {
				a.scrollTable(-1)
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == tabTable {
				a.scrollTable(1)
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Check if click is in tab bar area (first 2 lines)
			if msg.Y <= 1 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
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

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Parameter editing intercepts all keys
		if a.activeTab == tabParams && a.params.editing {
			return a.updateParamInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == tabTable {
			if a.updateTableKeys(key) {
				return a, nil
			}
		}

		if a.activeTab == tabParams {
			if next, cmd, ok := a.updateParamKeys(key); ok {
				return next, cmd
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "s":
			a.inputs.Scenario = a.inputs.Scenario.Next()
			a.flash = ""
			a.recompute()
			return a, nil
		case "r":
			a.inputs = a.initial
			a.flash = "Inputs reset."
			a.recompute()
			return a, nil
		case "w":
			a.writeConfig()
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Keep the parameter input's cursor blinking
	if a.params.editing {
		var cmd tea.Cmd
		a.params.input, cmd = a.params.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// applySetup copies the setup answers into the inputs and saves them.
func (a *App) applySetup() {
	themeName, err := a.setupVals.Apply(&a.inputs)
	if err != nil {
		a.flash = "Setup: " + err.Error()
		return
	}
	a.themeName = themeName
	theme.SetActive(themeName)
	a.initial = a.inputs
	a.recompute()
	a.writeConfig()
}

// writeConfig saves the current inputs and theme to the config file.
func (a *App) writeConfig() {
	if err := config.SaveFile(a.configPath, config.FromInputs(a.inputs, a.themeName)); err != nil {
		a.flash = "Save failed: " + err.Error()
		return
	}
	a.flash = "Saved to " + a.configPath
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  osacorpus needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	section := func(b *strings.Builder, name string, binds []struct{ key, desc string }) {
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
		for _, bind := range binds {
			fmt.Fprintf(b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	section(&b, "Navigation", []struct{ key, desc string }{
		{"o t p", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move / Scroll"},
		{"^d ^u", "Half-page scroll"},
	})
	b.WriteString("\n")
	section(&b, "Inputs", []struct{ key, desc string }{
		{"s", "Cycle scenario"},
		{"Enter", "Edit parameter"},
		{"+ -", "Step parameter"},
		{"d", "Toggle table detail"},
		{"r", "Reset inputs"},
		{"w", "Write config"},
	})
	b.WriteString("\n")
	section(&b, "General", []struct{ key, desc string }{
		{"?", "Toggle help"},
		{"q", "Quit"},
	})

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Render header (tab bar + input pills)
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pills := pillStyle.Render(" ") +
		pillAccentStyle.Render(string(a.inputs.Scenario)) +
		pillStyle.Render(" │ ") + pillAccentStyle.Render(fmt.Sprintf("%dy", a.inputs.HorizonYears)) +
		pillStyle.Render(" │ renew ") + pillAccentStyle.Render(fmt.Sprintf("every %d years", a.inputs.RenewalCycleYears)) +
		pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pills)

	// 2. Render status bar
	statusBar := components.RenderStatusBar(w, a.statusHints(), string(a.inputs.Scenario))

	// 3. Calculate content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := max(h-headerH-statusH, minContentHeight)

	// 4. Render tab content
	var content string
	switch {
	case a.err != nil:
		content = a.renderError(cw)
	case a.activeTab == tabOverview:
		content = a.renderOverviewTab(cw)
	case a.activeTab == tabTable:
		content = a.renderTableTab(cw, contentH)
	case a.activeTab == tabParams:
		content = a.renderParamsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	if a.flash != "" {
		return a.flash
	}
	switch a.activeTab {
	case tabTable:
		return "[j/k] scroll  [d] detail  [s] scenario  [?] help  [q] quit"
	case tabParams:
		return "[j/k] select  [Enter] edit  [+/-] step  [w] save  [?] help"
	}
	return "[s] scenario  [r] reset  [w] save  [?] help  [q] quit"
}

func (a App) renderError(cw int) string {
	t := theme.Active
	warn := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	body := warn.Render(a.err.Error()) + "\n\n" +
		lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("Press r to reset inputs or edit them on the Parameters tab.")
	return components.ContentCard("Cannot project corpus", body, cw)
}

// ─── Helpers ────────────────────────────────────────────────────

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
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths RenderTabBar uses.
func (a App) tabAtX(x int) int {
	pos := 0
	for i := range components.Tabs {
		tabW := components.TabWidth(i)
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
