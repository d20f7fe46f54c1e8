package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEdit() SettingsEdit {
	return SettingsEdit{
		Capital:        "100000",
		RiskProfile:    RiskBalanced,
		PeriodQuantity: "6",
		PeriodUnit:     "Months",
		ExpectedReturn: "15",
	}
}

func TestSettingsEditValidate(t *testing.T) {
	update, err := validEdit().Validate()
	require.NoError(t, err)

	assert.Equal(t, 100000.0, update.Balance)
	assert.Equal(t, "Balanced", update.Risk)
	assert.Equal(t, "6 Months", update.Period)
	assert.Equal(t, 15.0, update.ExpectedReturn)
}

func TestSettingsEditValidateTrimsWhitespace(t *testing.T) {
	edit := validEdit()
	edit.Capital = " 50000 "
	edit.PeriodQuantity = " 2 "

	update, err := edit.Validate()
	require.NoError(t, err)
	assert.Equal(t, 50000.0, update.Balance)
	assert.Equal(t, "2 Months", update.Period)
}

func TestSettingsEditValidateRejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SettingsEdit)
		wantField string
	}{
		{
			name:      "capital not numeric",
			mutate:    func(e *SettingsEdit) { e.Capital = "a lot" },
			wantField: "capital",
		},
		{
			name:      "quantity not an integer",
			mutate:    func(e *SettingsEdit) { e.PeriodQuantity = "6.5" },
			wantField: "period_quantity",
		},
		{
			name:      "quantity zero",
			mutate:    func(e *SettingsEdit) { e.PeriodQuantity = "0" },
			wantField: "period_quantity",
		},
		{
			name:      "quantity negative",
			mutate:    func(e *SettingsEdit) { e.PeriodQuantity = "-3" },
			wantField: "period_quantity",
		},
		{
			name:      "unknown unit",
			mutate:    func(e *SettingsEdit) { e.PeriodUnit = "Fortnights" },
			wantField: "period_unit",
		},
		{
			name:      "unknown risk profile",
			mutate:    func(e *SettingsEdit) { e.RiskProfile = "YOLO" },
			wantField: "risk_profile",
		},
		{
			name:      "expected return not numeric",
			mutate:    func(e *SettingsEdit) { e.ExpectedReturn = "ten" },
			wantField: "expected_return",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edit := validEdit()
			tt.mutate(&edit)

			_, err := edit.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}
