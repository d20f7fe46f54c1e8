package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradepulse/tradepulse/internal/domain"
)

// Form field order, top to bottom
const (
	fieldCapital = iota
	fieldRisk
	fieldQuantity
	fieldUnit
	fieldExpected
	fieldCount
)

var riskProfiles = []string{domain.RiskConservative, domain.RiskBalanced, domain.RiskAggressive}

var periodUnits = []domain.PeriodUnit{domain.UnitDays, domain.UnitWeeks, domain.UnitMonths, domain.UnitYears}

// settingsForm is the in-console configuration editor. Text fields hold
// raw strings and nothing is coerced until the operator submits, so a
// rejected commit keeps the input exactly as typed.
type settingsForm struct {
	capital  textinput.Model
	quantity textinput.Model
	expected textinput.Model
	risk     int
	unit     int
	focus    int
}

// newSettingsForm builds a form prefilled from the given snapshot, so
// editing always starts from the settings currently in force. A zero
// snapshot leaves the text fields empty.
func newSettingsForm(snapshot domain.StatsSnapshot) settingsForm {
	f := settingsForm{
		capital:  newInput("100000"),
		quantity: newInput("6"),
		expected: newInput("8.5"),
	}

	if snapshot.Capital != nil {
		f.capital.SetValue(strconv.FormatFloat(*snapshot.Capital, 'f', -1, 64))
	}
	if snapshot.Settings.ExpectedReturn != nil {
		f.expected.SetValue(strconv.FormatFloat(*snapshot.Settings.ExpectedReturn, 'f', -1, 64))
	}
	for i, p := range riskProfiles {
		if p == snapshot.Settings.RiskProfile {
			f.risk = i
		}
	}
	if period, ok := domain.ParsePeriod(snapshot.Settings.InvestmentPeriod); ok {
		f.quantity.SetValue(strconv.Itoa(period.Quantity))
		for i, u := range periodUnits {
			if u == period.Unit {
				f.unit = i
			}
		}
	}

	return f
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 16
	ti.Width = 18
	return ti
}

// setFocus moves focus to the given field, wrapping at both ends, and
// returns the cursor blink command for the newly focused text field
func (f *settingsForm) setFocus(i int) tea.Cmd {
	f.focus = ((i % fieldCount) + fieldCount) % fieldCount
	f.capital.Blur()
	f.quantity.Blur()
	f.expected.Blur()

	switch f.focus {
	case fieldCapital:
		return f.capital.Focus()
	case fieldQuantity:
		return f.quantity.Focus()
	case fieldExpected:
		return f.expected.Focus()
	}
	return nil
}

// onSelector reports whether focus sits on a cycling selector rather
// than a text field
func (f *settingsForm) onSelector() bool {
	return f.focus == fieldRisk || f.focus == fieldUnit
}

// cycle advances the focused selector by delta, wrapping around
func (f *settingsForm) cycle(delta int) {
	switch f.focus {
	case fieldRisk:
		f.risk = ((f.risk+delta)%len(riskProfiles) + len(riskProfiles)) % len(riskProfiles)
	case fieldUnit:
		f.unit = ((f.unit+delta)%len(periodUnits) + len(periodUnits)) % len(periodUnits)
	}
}

// edit collects the raw field values into a candidate settings change
func (f settingsForm) edit() domain.SettingsEdit {
	return domain.SettingsEdit{
		Capital:        f.capital.Value(),
		RiskProfile:    riskProfiles[f.risk],
		PeriodQuantity: f.quantity.Value(),
		PeriodUnit:     string(periodUnits[f.unit]),
		ExpectedReturn: f.expected.Value(),
	}
}

// updateInputs forwards a message to the text fields. Only the focused
// one reacts to key presses; the others just keep cursor state in sync.
func (f *settingsForm) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds [3]tea.Cmd
	f.capital, cmds[0] = f.capital.Update(msg)
	f.quantity, cmds[1] = f.quantity.Update(msg)
	f.expected, cmds[2] = f.expected.Update(msg)
	return tea.Batch(cmds[:]...)
}
