package view

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats an amount stored as cents into a human-readable string.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%.2f €", float64(cents)/100.0)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// Bar renders a fixed-width progress bar filled proportionally to value/max.
// Values beyond max fill the whole bar.
func Bar(value, max float64, width int) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if max > 0 {
		filled = int(value / max * float64(width))
	}

	if filled > width {
		filled = width
	}

	if filled < 0 {
		filled = 0
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
