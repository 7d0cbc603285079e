package domain

import "time"

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// intersect. Intervals that only touch at a boundary do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// ValidRange reports whether [start, end) is a non-empty interval.
func ValidRange(start, end time.Time) bool {
	return start.Before(end)
}

// CanonicalTime returns t in UTC at the microsecond precision storage keeps,
// so values read back compare equal to the values written.
func CanonicalTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
