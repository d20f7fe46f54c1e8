// Package tui renders the operator console: a live dashboard over the
// shared view model plus the configuration and holdings overlays. It
// drives the same store, overlay controller and operator service as the
// web delivery, so both surfaces stay in lockstep.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/service"
	"github.com/tradepulse/tradepulse/internal/state"
	"github.com/tradepulse/tradepulse/internal/usecase"
	"github.com/tradepulse/tradepulse/internal/view"
)

// commandTimeout bounds the engine round-trip behind a key press
const commandTimeout = 15 * time.Second

// Model is the console's Bubble Tea model. It never talks to the fund
// engine directly; key presses go through the operator service and data
// comes back through the store's change signal.
type Model struct {
	store    *state.Store
	views    *view.Controller
	operator *usecase.OperatorService
	syncer   *service.Synchronizer

	// Data
	model     domain.ViewModel
	hasModel  bool
	status    domain.SessionStatus
	hasStatus bool

	// UI state
	width   int
	height  int
	ready   bool
	busy    bool
	errText string
	notice  string
	now     time.Time

	form settingsForm
}

// Messages

type storeChangedMsg struct{}

type tickMsg time.Time

type toggleDoneMsg struct {
	status domain.SessionStatus
	err    error
}

type commitDoneMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

// NewModel creates the console model over an already wired view stack.
// The caller owns the synchronizer lifecycle; the model only consumes.
func NewModel(store *state.Store, views *view.Controller, operator *usecase.OperatorService, syncer *service.Synchronizer) Model {
	return Model{
		store:    store,
		views:    views,
		operator: operator,
		syncer:   syncer,
		now:      time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.store), tickCmd())
}

// Commands

// waitForChange blocks on the store's coalesced change signal and turns
// it into a repaint message. The update loop re-arms it after every
// delivery, so the console repaints at most once per batch of writes.
func waitForChange(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		<-store.Changes()
		return storeChangedMsg{}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) toggleCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		status, err := m.operator.ToggleStatus(ctx)
		return toggleDoneMsg{status: status, err: err}
	}
}

func (m Model) commitCmd(edit domain.SettingsEdit) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		return commitDoneMsg{err: m.operator.CommitSettings(ctx, edit)}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		return refreshDoneMsg{err: m.syncer.RefreshNow(ctx)}
	}
}

// currentSnapshot returns the latest snapshot, or a zero one before the
// first sync so the settings form can still open with empty fields
func (m Model) currentSnapshot() domain.StatsSnapshot {
	if m.hasModel {
		return m.model.Snapshot
	}
	return domain.StatsSnapshot{}
}
