package dto

// SettingsForm is a raw settings submission. Fields stay strings so
// coercion and validation happen at commit time, exactly once.
type SettingsForm struct {
	Capital        string `json:"capital"`
	RiskProfile    string `json:"risk_profile"`
	PeriodQuantity string `json:"period_quantity"`
	PeriodUnit     string `json:"period_unit"`
	ExpectedReturn string `json:"expected_return"`
}

// ToggleResponse reports the confirmed session status after a toggle
type ToggleResponse struct {
	Status string `json:"status"`
}
