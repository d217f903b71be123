package domain

import "time"

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. The end instant is excluded, so a checkout at
// 12:00 and a check-in at 12:00 on the same room do not conflict.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}

// Nights returns the number of whole days between check-in and check-out.
// Both arguments are expected to be start-of-day timestamps.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}
