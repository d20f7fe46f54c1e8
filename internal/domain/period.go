package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PeriodUnit is the horizon unit of an investment period
type PeriodUnit string

// Period units accepted by the engine. Kept plural exactly as selected;
// the engine matches them by substring, never by exact form.
const (
	UnitDays   PeriodUnit = "Days"
	UnitWeeks  PeriodUnit = "Weeks"
	UnitMonths PeriodUnit = "Months"
	UnitYears  PeriodUnit = "Years"
)

// Valid reports whether the unit is one of the accepted period units
func (u PeriodUnit) Valid() bool {
	switch u {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
		return true
	}
	return false
}

// dayLength returns how many days one unit spans, mirroring the engine's
// period parser: year=365, month=30, week=7, anything else is a day.
func (u PeriodUnit) dayLength() int {
	s := strings.ToLower(string(u))
	switch {
	case strings.Contains(s, "year"):
		return 365
	case strings.Contains(s, "month"):
		return 30
	case strings.Contains(s, "week"):
		return 7
	default:
		return 1
	}
}

// InvestmentPeriod is the quantity+unit pair behind strings like "6 Months"
type InvestmentPeriod struct {
	Quantity int
	Unit     PeriodUnit
}

// String renders the period exactly as the engine stores it: the quantity
// and the unit as selected, separated by a single space.
func (p InvestmentPeriod) String() string {
	return fmt.Sprintf("%d %s", p.Quantity, p.Unit)
}

// TotalDays converts the period to its day-equivalent span
func (p InvestmentPeriod) TotalDays() int {
	return p.Quantity * p.Unit.dayLength()
}

var periodDigits = regexp.MustCompile(`\d+`)

// ParsePeriod reads a period string the way the engine does: first run of
// digits is the quantity (1 when missing), unit matched by substring with
// days as the fallback. Returns ok=false only for an empty string.
func ParsePeriod(s string) (InvestmentPeriod, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return InvestmentPeriod{}, false
	}

	qty := 1
	if m := periodDigits.FindString(s); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			qty = n
		}
	}

	lower := strings.ToLower(s)
	unit := UnitDays
	switch {
	case strings.Contains(lower, "year"):
		unit = UnitYears
	case strings.Contains(lower, "month"):
		unit = UnitMonths
	case strings.Contains(lower, "week"):
		unit = UnitWeeks
	}

	return InvestmentPeriod{Quantity: qty, Unit: unit}, true
}

// PeriodProgress places now inside the session horizon: the 1-based
// investment day and the total day span. The day is clamped to the span
// once the horizon has elapsed, matching the engine's halt behavior.
func PeriodProgress(start time.Time, period InvestmentPeriod, now time.Time) (day, total int) {
	total = period.TotalDays()
	day = int(now.Sub(start).Hours()/24) + 1
	if day < 1 {
		day = 1
	}
	if total > 0 && day > total {
		day = total
	}
	return day, total
}
