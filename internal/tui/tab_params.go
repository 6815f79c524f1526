package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/osacorpus/internal/cli"
	"github.com/theirongolddev/osacorpus/internal/model"
	"github.com/theirongolddev/osacorpus/internal/tui/components"
	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// paramLabels names each input control on the parameters tab.
var paramLabels = map[string]string{
	"alumni":        "Alumni pool",
	"graduates":     "Graduates / year",
	"fresh-fee":     "Fresh graduate fee",
	"lifetime-fee":  "Lifetime fee",
	"renewable-fee": "Renewable fee",
	"renewal-cycle": "Renewal cycle (years)",
	"portal-cost":   "Portal cost / year",
	"audit-cost":    "Audit cost / year",
	"meeting-cost":  "Meeting cost / year",
	"interest":      "Interest (%)",
	"donations":     "Donations / year",
	"years":         "Projection years",
}

// paramsState tracks the parameters tab state.
type paramsState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func newParamsState() paramsState {
	return paramsState{input: newParamInput()}
}

func newParamInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20
	return ti
}

// selectedBound is the input control under the cursor.
func (a App) selectedBound() model.Bound {
	return model.InputBounds[a.params.cursor]
}

// updateParamKeys handles navigation and stepping on the parameters tab. ok
// reports whether the key was consumed.
func (a App) updateParamKeys(key string) (next tea.Model, cmd tea.Cmd, ok bool) {
	switch key {
	case "j", "down":
		if a.params.cursor < len(model.InputBounds)-1 {
			a.params.cursor++
		}
	case "k", "up":
		if a.params.cursor > 0 {
			a.params.cursor--
		}
	case "enter":
		next, cmd = a.paramStartEdit()
		return next, cmd, true
	case "+", "=":
		a.stepParam(1)
	case "-", "_":
		a.stepParam(-1)
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) stepParam(dir float64) {
	b := a.selectedBound()
	cur := a.inputs.Fields()[b.Field]
	a.setParam(b, cur+dir*b.Step)
}

// setParam clamps v into b, assigns it and reruns the projection.
func (a *App) setParam(b model.Bound, v float64) {
	clamped := b.Clamp(v)
	a.inputs.Set(b.Field, clamped)
	a.flash = ""
	if clamped != v {
		a.flash = fmt.Sprintf("%s limited to %s", paramLabels[b.Field], formatParam(b.Field, clamped))
	}
	a.recompute()
}

func (a App) paramStartEdit() (tea.Model, tea.Cmd) {
	b := a.selectedBound()

	ti := newParamInput()
	ti.SetValue(strconv.FormatFloat(a.inputs.Fields()[b.Field], 'f', -1, 64))
	ti.Placeholder = boundHint(b)
	ti.Focus()

	a.params.editing = true
	a.params.input = ti
	a.flash = ""
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateParamInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.params.editing = false
		raw := strings.ReplaceAll(strings.TrimSpace(a.params.input.Value()), ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			a.flash = fmt.Sprintf("%q is not a number", raw)
			return a, nil
		}
		a.setParam(a.selectedBound(), v)
		return a, nil
	case "esc":
		a.params.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.params.input, cmd = a.params.input.Update(msg)
	return a, cmd
}

func boundHint(b model.Bound) string {
	if b.Max > 0 {
		return fmt.Sprintf("%g to %g", b.Min, b.Max)
	}
	return fmt.Sprintf("at least %g", b.Min)
}

// formatParam renders a field value the way the controls display it.
func formatParam(field string, v float64) string {
	switch field {
	case "alumni", "graduates":
		return cli.FormatNumber(int64(v))
	case "renewal-cycle", "years":
		return strconv.Itoa(int(v))
	case "interest":
		return cli.FormatPercent(v)
	}
	return cli.FormatRupees(v)
}

func (a App) renderParamsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	fields := a.inputs.Fields()
	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, b := range model.InputBounds {
		label := paramLabels[b.Field]
		value := formatParam(b.Field, fields[b.Field])

		// Show text input if currently editing this field
		if a.params.editing && i == a.params.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-24s ", label)))
			formBody.WriteString(a.params.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.params.cursor {
			marker := markerStyle.Render("▸ ")
			l := selectedLabelStyle.Render(fmt.Sprintf("%-24s ", label+":"))
			v := selectedStyle.Render(value)
			formBody.WriteString(marker + l + v)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(l) + lipgloss.Width(v)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-24s ", label+":")))
			formBody.WriteString(valueStyle.Render(value))
			formBody.WriteString(hintStyle.Render("  " + boundHint(b)))
		}
		formBody.WriteString("\n")
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [+/-] step  [Esc] cancel"))

	// Scenario card
	rates := a.inputs.Scenario.Rates()
	var scenBody strings.Builder
	for _, s := range model.Scenarios {
		marker, style := "( ) ", labelStyle
		if s == a.inputs.Scenario {
			marker, style = "(o) ", accentStyle
		}
		scenBody.WriteString(style.Render(marker + string(s)))
		scenBody.WriteString("\n")
	}
	scenBody.WriteString("\n")
	scenBody.WriteString(labelStyle.Render("Fresh signup:     ") + valueStyle.Render(cli.FormatPercent(rates.Fresh)) + "\n")
	scenBody.WriteString(labelStyle.Render("Old @ lifetime:   ") + valueStyle.Render(cli.FormatPercent(rates.OldLifetime)) + "\n")
	scenBody.WriteString(labelStyle.Render("Old @ renewable:  ") + valueStyle.Render(cli.FormatPercent(rates.OldRenewable)) + "\n")
	scenBody.WriteString(labelStyle.Render("Annual costs:     ") + valueStyle.Render(cli.FormatRupees(a.inputs.AnnualFixedCost())) + "\n")
	scenBody.WriteString("\n")
	scenBody.WriteString(hintStyle.Render("[s] cycle scenario  [w] save to " + a.configPath))

	if a.isCompactLayout() {
		return components.ContentCard("Parameters", formBody.String(), cw) + "\n" +
			components.ContentCard("Scenario", scenBody.String(), cw)
	}

	widths := components.LayoutRow(cw, 2)
	return components.CardRow([]string{
		components.ContentCard("Parameters", formBody.String(), widths[0]),
		components.ContentCard("Scenario", scenBody.String(), widths[1]),
	})
}
