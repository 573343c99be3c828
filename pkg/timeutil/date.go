// Package timeutil holds the small date formatting helpers shared by the
// editor header and the carryover views.
package timeutil

import (
	"fmt"
	"time"
)

// Ordinal returns the day number with its English suffix: 1st, 2nd, 22nd,
// 11th through 13th are all th.
func Ordinal(n int) string {
	if m := n % 100; m >= 11 && m <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}

// HeaderDate formats a date the way the editor header shows it, e.g.
// "September 8th 2025".
func HeaderDate(t time.Time) string {
	return fmt.Sprintf("%s %s %d", t.Month(), Ordinal(t.Day()), t.Year())
}
