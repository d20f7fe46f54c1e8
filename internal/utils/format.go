package utils

import (
	"fmt"
	"os"
	"time"
)

var displayLoc *time.Location

func init() {
	tz := os.Getenv("DISPLAY_TZ")
	if tz == "" {
		displayLoc = time.Local
		return
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		// Fallback to Local if timezone data is missing
		// In production docker, ensure tzdata is installed
		displayLoc = time.Local
		return
	}
	displayLoc = loc
}

// DisplayLocation returns the timezone timestamps render in
func DisplayLocation() *time.Location {
	return displayLoc
}

// FormatMoney renders a nullable currency value with two decimals. A
// missing value renders as a placeholder instead of a fake zero.
func FormatMoney(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.2f", *v)
}

// FormatPercent renders a nullable percent value with two decimals
func FormatPercent(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// FormatSignedPercent renders a percent with an explicit plus on
// strictly positive values. The sign follows the raw value, not the
// rounded one, so +0.001 keeps its direction as "+0.00%".
func FormatSignedPercent(v *float64) string {
	if v == nil {
		return "--"
	}
	if *v > 0 {
		return fmt.Sprintf("+%.2f%%", *v)
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// FormatTimestamp renders an instant in the display timezone
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.In(displayLoc).Format("2006-01-02 15:04:05")
}
