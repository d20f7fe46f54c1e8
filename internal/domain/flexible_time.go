package domain

import (
	"fmt"
	"strings"
	"time"
)

// FlexibleTime handles the timestamp formats the Python engine emits.
// datetime.isoformat() carries no timezone and a variable number of
// fractional digits, so a plain time.Time field would fail to decode.
type FlexibleTime struct {
	time.Time
}

// UnmarshalJSON implements custom JSON unmarshalling for flexible timestamp parsing
func (ft *FlexibleTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "" || s == "null" {
		ft.Time = time.Time{}
		return nil
	}

	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999", // Python datetime format without timezone
		"2006-01-02T15:04:05",
		time.DateTime,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			ft.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse timestamp: %s", s)
}
