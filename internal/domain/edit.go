package domain

import (
	"strconv"
	"strings"
)

// SettingsEdit is a candidate configuration change as entered by the
// operator. Fields arrive as raw strings from a form or console input and
// are only coerced when the operator commits, never on keystroke.
type SettingsEdit struct {
	Capital        string
	RiskProfile    string
	PeriodQuantity string
	PeriodUnit     string
	ExpectedReturn string
}

// SettingsUpdate is the wire payload of a settings commit. The engine
// resets the simulated session around it, so a successful commit always
// forces a cold resynchronization on the client side.
type SettingsUpdate struct {
	Balance        float64 `json:"balance"`
	Risk           string  `json:"risk"`
	Period         string  `json:"period"`
	ExpectedReturn float64 `json:"expected_return"`
}

// Validate coerces the edit into a wire-ready update. The first field
// that fails coercion aborts the commit with a ValidationError; nothing
// is ever submitted with a substituted default.
func (e SettingsEdit) Validate() (SettingsUpdate, error) {
	capital, err := strconv.ParseFloat(strings.TrimSpace(e.Capital), 64)
	if err != nil {
		return SettingsUpdate{}, &ValidationError{Field: "capital", Value: e.Capital, Reason: "must be a number"}
	}

	if !ValidRiskProfile(e.RiskProfile) {
		return SettingsUpdate{}, &ValidationError{Field: "risk_profile", Value: e.RiskProfile, Reason: "must be Conservative, Balanced or Aggressive"}
	}

	qty, err := strconv.Atoi(strings.TrimSpace(e.PeriodQuantity))
	if err != nil || qty < 1 {
		return SettingsUpdate{}, &ValidationError{Field: "period_quantity", Value: e.PeriodQuantity, Reason: "must be a positive integer"}
	}

	unit := PeriodUnit(strings.TrimSpace(e.PeriodUnit))
	if !unit.Valid() {
		return SettingsUpdate{}, &ValidationError{Field: "period_unit", Value: e.PeriodUnit, Reason: "must be Days, Weeks, Months or Years"}
	}

	expected, err := strconv.ParseFloat(strings.TrimSpace(e.ExpectedReturn), 64)
	if err != nil {
		return SettingsUpdate{}, &ValidationError{Field: "expected_return", Value: e.ExpectedReturn, Reason: "must be a number"}
	}

	period := InvestmentPeriod{Quantity: qty, Unit: unit}
	return SettingsUpdate{
		Balance:        capital,
		Risk:           e.RiskProfile,
		Period:         period.String(),
		ExpectedReturn: expected,
	}, nil
}
