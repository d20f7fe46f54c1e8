package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/utils"
	"github.com/tradepulse/tradepulse/internal/view"
)

const maxTradeRows = 8

func (m Model) View() string {
	if !m.ready {
		return "\n  Starting console..."
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch m.views.Current() {
	case view.ShowingConfig:
		b.WriteString(m.centered(m.viewConfig()))
	case view.ShowingHoldings:
		b.WriteString(m.centered(m.viewHoldings()))
	default:
		b.WriteString(m.viewDashboard())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

// centered places an overlay in the middle of the terminal width
func (m Model) centered(content string) string {
	if m.width <= lipgloss.Width(content) {
		return content
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("TRADEPULSE")

	badge := valueStyle.Render("--")
	if m.hasStatus {
		badge = statusStyle(m.status == domain.StatusActive).Render(string(m.status))
	}

	age := ""
	if m.hasModel {
		age = helpStyle.Render(fmt.Sprintf("updated %s ago", m.sinceFetch()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge, "  ", age)
}

func (m Model) sinceFetch() string {
	d := m.now.Sub(m.model.FetchedAt)
	if d < 0 {
		d = 0
	}
	return d.Truncate(time.Second).String()
}

func (m Model) viewDashboard() string {
	if !m.hasModel {
		return panelStyle.Render("Waiting for the first synchronization cycle...")
	}

	snap := m.model.Snapshot
	trend := domain.EquityTrendPercent(snap.Capital, snap.TotalEquity)

	rows := []string{
		statRow("Balance", utils.FormatMoney(snap.Balance)),
		statRow("Portfolio value", utils.FormatMoney(snap.PortfolioValue)),
		statRow("Total equity", utils.FormatMoney(snap.TotalEquity)),
		labelStyle.Render("Equity trend") + trendStyle(trend).Render(utils.FormatSignedPercent(trend)),
		statRow("Holdings", fmt.Sprintf("%d", snap.HoldingsCount)),
		statRow("Risk profile", orDash(snap.Settings.RiskProfile)),
		statRow("Period", orDash(snap.Settings.InvestmentPeriod)),
		statRow("Expected return", utils.FormatPercent(snap.Settings.ExpectedReturn)),
		statRow("Day", m.dayProgress()),
	}

	stats := panelStyle.Render(strings.Join(rows, "\n"))
	trades := panelStyle.Render(m.viewTrades())
	return lipgloss.JoinVertical(lipgloss.Left, stats, trades)
}

// dayProgress renders "day of total" from the session start date and the
// configured period, or a placeholder when either is missing
func (m Model) dayProgress() string {
	s := m.model.Snapshot.Settings
	if s.StartDate == nil {
		return "--"
	}
	period, ok := domain.ParsePeriod(s.InvestmentPeriod)
	if !ok {
		return "--"
	}
	day, total := domain.PeriodProgress(s.StartDate.Time, period, m.now)
	return fmt.Sprintf("%d of %d", day, total)
}

func (m Model) viewTrades() string {
	title := sectionStyle.Render(fmt.Sprintf("Recent trades (%d)", len(m.model.Trades)))
	if len(m.model.Trades) == 0 {
		return title + "\n" + helpStyle.Render("no activity yet")
	}

	lines := []string{title}
	for i, tr := range m.model.Trades {
		if i == maxTradeRows {
			lines = append(lines, helpStyle.Render(fmt.Sprintf("... %d more", len(m.model.Trades)-maxTradeRows)))
			break
		}
		lines = append(lines, tradeLine(tr))
	}
	return strings.Join(lines, "\n")
}

func tradeLine(tr domain.TradeRecord) string {
	action := gainStyle
	if tr.Action == domain.ActionSell {
		action = lossStyle
	}

	reason := tr.AIReason
	if len(reason) > 40 {
		reason = reason[:37] + "..."
	}

	return fmt.Sprintf("%s  %s %-6s %4d @ %.2f  %s",
		helpStyle.Render(utils.FormatTimestamp(tr.Timestamp.Time)),
		action.Render(fmt.Sprintf("%-4s", tr.Action)),
		tr.Symbol,
		tr.Qty,
		tr.Price,
		helpStyle.Render(reason),
	)
}

func (m Model) viewHoldings() string {
	if !m.hasModel {
		return overlayStyle.Render("No holdings to show yet")
	}

	holdings := domain.EnrichHoldings(m.model.Snapshot.Portfolio)
	lines := []string{
		sectionStyle.Render(fmt.Sprintf("Holdings (%d)", len(holdings))),
		helpStyle.Render(fmt.Sprintf("%-8s %6s %10s %10s %12s %10s  %s",
			"SYMBOL", "QTY", "AVG", "PRICE", "VALUE", "P&L", "P&L %")),
	}

	if len(holdings) == 0 {
		lines = append(lines, helpStyle.Render("portfolio is empty"))
	}
	for _, h := range holdings {
		lines = append(lines, holdingLine(h))
	}

	return overlayStyle.Render(strings.Join(lines, "\n"))
}

func holdingLine(h domain.PortfolioHolding) string {
	row := fmt.Sprintf("%-8s %6d %10.2f %10.2f %12s %10s  ",
		h.Symbol, h.Qty, h.AvgPrice, h.CurrentPrice,
		utils.FormatMoney(h.MarketValue),
		utils.FormatMoney(h.PnL),
	)
	return valueStyle.Render(row) + trendStyle(h.PnLPercent).Render(utils.FormatSignedPercent(h.PnLPercent))
}

func (m Model) viewConfig() string {
	f := m.form

	rows := []string{
		sectionStyle.Render("Session configuration"),
		"",
		formRow("Initial capital", f.capital.View(), f.focus == fieldCapital),
		formRow("Risk profile", selectorView(riskProfiles, f.risk, f.focus == fieldRisk), f.focus == fieldRisk),
		formRow("Period", f.quantity.View(), f.focus == fieldQuantity),
		formRow("Period unit", selectorView(unitLabels(), f.unit, f.focus == fieldUnit), f.focus == fieldUnit),
		formRow("Expected return %", f.expected.View(), f.focus == fieldExpected),
		"",
		helpStyle.Render("tab next field · ←/→ choose · enter save · esc cancel"),
	}

	return overlayStyle.Render(strings.Join(rows, "\n"))
}

func formRow(label, field string, focused bool) string {
	ls := labelStyle
	if focused {
		ls = labelStyle.Foreground(colors.Primary).Bold(true)
	}
	return ls.Render(label) + field
}

func selectorView(options []string, selected int, focused bool) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		switch {
		case i == selected && focused:
			parts[i] = focusStyle.Render("[" + opt + "]")
		case i == selected:
			parts[i] = valueStyle.Render("[" + opt + "]")
		default:
			parts[i] = helpStyle.Render(" " + opt + " ")
		}
	}
	return strings.Join(parts, " ")
}

func unitLabels() []string {
	out := make([]string, len(periodUnits))
	for i, u := range periodUnits {
		out[i] = string(u)
	}
	return out
}

func (m Model) viewFooter() string {
	var status string
	switch {
	case m.errText != "":
		status = errorStyle.Render(m.errText)
	case m.busy:
		status = helpStyle.Render("working...")
	case m.notice != "":
		status = noticeStyle.Render(m.notice)
	}

	help := helpStyle.Render("c configure · h holdings · t pause/resume · r refresh · esc close · q quit")
	if status == "" {
		return help
	}
	return status + "\n" + help
}

func statRow(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}
