package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/view"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		return m.handleKey(msg)

	case storeChangedMsg:
		if model, ok := m.store.Current(); ok {
			m.model = model
			m.hasModel = true
		} else {
			m.hasModel = false
		}
		m.status, m.hasStatus = m.store.Status()
		cmds = append(cmds, waitForChange(m.store))

	case tickMsg:
		m.now = time.Time(msg)
		cmds = append(cmds, tickCmd())

	case toggleDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = fmt.Sprintf("toggle failed: %v", msg.err)
		} else {
			m.errText = ""
			m.notice = fmt.Sprintf("session now %s", msg.status)
			m.status = msg.status
			m.hasStatus = true
		}

	case commitDoneMsg:
		m.busy = false
		if msg.err != nil {
			// overlay stays open and the form keeps the operator's input
			m.errText = commitErrorText(msg.err)
		} else {
			m.errText = ""
			m.notice = "settings updated"
		}

	case refreshDoneMsg:
		if msg.err != nil {
			m.errText = fmt.Sprintf("refresh failed: %v", msg.err)
		}

	default:
		// cursor blink and other component messages
		if m.views.Current() == view.ShowingConfig {
			cmds = append(cmds, m.form.updateInputs(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.views.Current() == view.ShowingConfig {
		return m.handleConfigKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		m.views.Close()

	case key.Matches(msg, keys.Config):
		m.form = newSettingsForm(m.currentSnapshot())
		cmd := m.form.setFocus(fieldCapital)
		m.views.OpenConfig()
		m.errText = ""
		m.notice = ""
		return m, cmd

	case key.Matches(msg, keys.Holdings):
		m.views.OpenHoldings()

	case key.Matches(msg, keys.Toggle):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.notice = ""
		return m, m.toggleCmd()

	case key.Matches(msg, keys.Refresh):
		m.notice = ""
		return m, m.refreshCmd()
	}

	return m, nil
}

// handleConfigKey routes keys while the configuration overlay is open.
// Everything not claimed by navigation or submission flows into the
// focused text field, so typing "c" or "q" edits instead of acting.
func (m Model) handleConfigKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		m.views.Close()
		m.errText = ""
		return m, nil

	case key.Matches(msg, keys.NextField):
		cmd := m.form.setFocus(m.form.focus + 1)
		return m, cmd

	case key.Matches(msg, keys.PrevField):
		cmd := m.form.setFocus(m.form.focus - 1)
		return m, cmd

	case key.Matches(msg, keys.Cycle), key.Matches(msg, keys.CycleBack):
		if m.form.onSelector() {
			delta := 1
			if key.Matches(msg, keys.CycleBack) {
				delta = -1
			}
			m.form.cycle(delta)
			return m, nil
		}
		// cursor movement inside a text field
		cmd := m.form.updateInputs(msg)
		return m, cmd

	case key.Matches(msg, keys.Submit):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.errText = ""
		m.notice = ""
		return m, m.commitCmd(m.form.edit())
	}

	cmd := m.form.updateInputs(msg)
	return m, cmd
}

// commitErrorText renders a commit failure for the footer, naming the
// offending field when validation caught it
func commitErrorText(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("%s: %s", verr.Field, verr.Reason)
	}
	return fmt.Sprintf("save failed: %v", err)
}
