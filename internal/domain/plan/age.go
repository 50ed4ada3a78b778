package plan

import "time"

// AgeOn returns the whole-year age of someone born on birthDate as of
// reference. The comparison is field-wise (year, then month, then day) so
// anniversary boundaries are exact regardless of leap years or month
// lengths. A birth date after the reference yields a negative result; the
// caller guards that case.
func AgeOn(birthDate, reference time.Time) int {
	age := reference.Year() - birthDate.Year()
	if reference.Month() < birthDate.Month() ||
		(reference.Month() == birthDate.Month() && reference.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AgeInYear returns the age as of December 31 of the given calendar year.
func AgeInYear(birthDate time.Time, year int) int {
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return AgeOn(birthDate, yearEnd)
}

// WholeYearsBetween returns the number of complete years elapsed between
// from and to, counting a year only once its anniversary day has passed.
// Used for years-married arithmetic.
func WholeYearsBetween(from, to time.Time) int {
	return AgeOn(from, to)
}
