package settlement

// =============================================================================
// TENURE - Elapsed employment as whole months plus leftover days
// =============================================================================

// Tenure expresses an employment interval as whole calendar months plus
// leftover days, the shape every downstream formula consumes.
type Tenure struct {
	Months    int
	ExtraDays int
}

// TenureBetween computes the tenure from start to end such that
// start + Months months + ExtraDays days lands on end, with ExtraDays in
// [0, days in the month preceding end).
//
// The rule is a calendar-month difference with a borrow: months counted by
// year/month position, day-of-month difference on top, and when the day
// difference is negative one month is borrowed and converted into the length
// of the month immediately preceding end. No other normalization happens;
// 31st-vs-28th edges resolve exactly as the borrow dictates. This is not a
// calendar-day count.
//
// Total: an inverted interval yields negative Months. Callers that feed
// tenure into money must reject that case first (see Validate).
func TenureBetween(start, end Date) Tenure {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	days := end.Day() - start.Day()

	if days < 0 {
		months--
		days += end.DaysInPrecedingMonth()
	}

	return Tenure{Months: months, ExtraDays: days}
}

// FullYears returns the completed years of service for indemnity purposes:
// floor(Months/12), plus one when the leftover fraction is six months or
// more. Leftover days are ignored; only whole months count toward the
// half-year rule. Negative tenure clamps to zero.
func (t Tenure) FullYears() int {
	if t.Months <= 0 {
		return 0
	}
	years := t.Months / 12
	if t.Months%12 >= 6 {
		years++
	}
	return years
}
