// Package gate enforces the tradition that an omikuji is drawn on New
// Year's Day. The fortune itself is pure computation; this is the only
// calendar-aware piece.
package gate

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotNewYear is returned when a draw is attempted outside January 1st
// without the force override.
var ErrNotNewYear = errors.New("omikuji can only be drawn on January 1st (use --force to override)")

// Check decides whether a draw may proceed. The date defaults to now in
// local time; override, when non-empty, replaces it for testing and must
// be formatted YYYY-MM-DD. warn is true when the draw only proceeds
// because force bypassed the gate.
func Check(now time.Time, override string, force bool) (warn bool, err error) {
	day := now
	if override != "" {
		day, err = time.Parse("2006-01-02", override)
		if err != nil {
			return false, fmt.Errorf("parse date override %q: %w", override, err)
		}
	}

	if day.Month() == time.January && day.Day() == 1 {
		return false, nil
	}
	if force {
		return true, nil
	}
	return false, ErrNotNewYear
}
