// Package view tracks which dashboard overlay is visible. The state is a
// single value, so two overlays can never be observed open at once.
package view

import "sync"

// State identifies the visible overlay
type State string

// Overlay states. Closed is the initial state; opening an overlay while
// another is showing simply replaces it, last writer wins.
const (
	Closed          State = "CLOSED"
	ShowingConfig   State = "SHOWING_CONFIG"
	ShowingHoldings State = "SHOWING_HOLDINGS"
)

// Controller is the long-lived overlay state machine for one dashboard
// session. It is safe for concurrent use; the web delivery reads it while
// the operator drives it.
type Controller struct {
	mu    sync.Mutex
	state State
}

// NewController creates a controller in the Closed state
func NewController() *Controller {
	return &Controller{state: Closed}
}

// OpenConfig shows the configuration overlay
func (c *Controller) OpenConfig() {
	c.set(ShowingConfig)
}

// OpenHoldings shows the holdings overlay
func (c *Controller) OpenHoldings() {
	c.set(ShowingHoldings)
}

// Close dismisses whichever overlay is showing
func (c *Controller) Close() {
	c.set(Closed)
}

// Current returns the visible overlay state
func (c *Controller) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) set(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}
