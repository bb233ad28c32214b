package calendar

import "github.com/carlosjhr64/jd"

// Century anchors key almanac tables that start on a century boundary. A
// table for "the 1900s" is looked up by the year 2000 as well, so an exact
// century year belongs to the bucket before it.

// CenturyEpochJDN returns the day number of January 1 of the century anchor
// for year:
//
//	2017 -> 2000-01-01
//	2000 -> 1900-01-01 (exact centuries fall back one bucket)
//	  50 -> 0000-01-01
//	 -50 -> -100-01-01
//	   0 -> -200-01-01 (floor division; a truncating division would give -100)
//
// The day number comes from the integer Gregorian formula, so it is the
// JDN of that day at noon.
func CenturyEpochJDN(year int) int {
	return jd.YMD2J(centuryAnchor(year, false), 1, 1)
}

// NormalizedCenturyYear returns the table index year for year. Positive
// years from 100 on always map to the century before their own
// (2017 -> 1900, 2000 -> 1900); years 1 to 99 map to 0. Years <= 0 bucket
// as in CenturyEpochJDN, so year 0 maps to -200.
func NormalizedCenturyYear(year int) int {
	return centuryAnchor(year, true)
}

// centuryAnchor buckets year into a century start year. When always is set
// every positive year above 99 steps back one century; otherwise only exact
// multiples of 100 do.
func centuryAnchor(year int, always bool) int {
	if year <= 0 {
		return (floorDiv(-year-1, 100) - 1) * 100
	}

	century := year / 100
	if century > 0 && (always || year%100 == 0) {
		century--
	}
	return century * 100
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
