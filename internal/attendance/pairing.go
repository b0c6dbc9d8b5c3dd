package attendance

import "sort"

const (
	DirectionCheckIn  = 1
	DirectionCheckOut = 2
)

// ScanPunch is one terminal punch as the pairer sees it. Dates are ISO
// YYYY-MM-DD and times HH:MM:SS, both already normalized by the importer.
type ScanPunch struct {
	TerminalID string
	Date       string
	Time       string
	EmployeeID string
	Direction  int
}

// DailyPair is one employee's resolved attendance for one work date.
// WorkDate is always the check-in's date, even when the check-out falls on
// the next calendar day; that keeps night-shift OT on the day the employee
// arrived. Either side may be nil, never both.
type DailyPair struct {
	EmployeeID string
	WorkDate   string
	CheckIn    *ScanPunch
	CheckOut   *ScanPunch
}

// CheckOutCrossedMidnight reports whether the check-out landed on a later
// calendar date than the check-in.
func (p DailyPair) CheckOutCrossedMidnight() bool {
	return p.CheckIn != nil && p.CheckOut != nil && p.CheckOut.Date != p.WorkDate
}

// PairScans folds one employee's punches into daily check-in/check-out
// pairs. Events are sorted chronologically first, so the result does not
// depend on input order. A single pending check-in slot is carried through
// the fold:
//   - a new check-in while one is pending flushes the pending one as an
//     open pair (no check-out) on its own date,
//   - a check-out closes the pending check-in and is attributed to the
//     check-in's date,
//   - a check-out with nothing pending is an orphan and is dropped,
//   - a pending check-in left at the end of the stream is flushed open.
func PairScans(punches []ScanPunch) []DailyPair {
	sorted := make([]ScanPunch, len(punches))
	copy(sorted, punches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Time < sorted[j].Time
	})

	pairs := make([]DailyPair, 0, len(sorted)/2+1)
	var pending *ScanPunch

	for i := range sorted {
		punch := sorted[i]

		switch punch.Direction {
		case DirectionCheckIn:
			if pending != nil {
				pairs = append(pairs, DailyPair{
					EmployeeID: pending.EmployeeID,
					WorkDate:   pending.Date,
					CheckIn:    pending,
				})
			}
			p := punch
			pending = &p

		case DirectionCheckOut:
			if pending == nil {
				// Orphaned check-out; nothing to attach it to.
				continue
			}
			out := punch
			pairs = append(pairs, DailyPair{
				EmployeeID: pending.EmployeeID,
				WorkDate:   pending.Date,
				CheckIn:    pending,
				CheckOut:   &out,
			})
			pending = nil
		}
	}

	if pending != nil {
		pairs = append(pairs, DailyPair{
			EmployeeID: pending.EmployeeID,
			WorkDate:   pending.Date,
			CheckIn:    pending,
		})
	}

	return pairs
}

// PairsByWorkDate indexes pairs by work date for period iteration. When two
// check-ins share a date the later pair replaces the earlier open one, which
// matches how the books were kept before: the completed pair wins.
func PairsByWorkDate(pairs []DailyPair) map[string]DailyPair {
	byDate := make(map[string]DailyPair, len(pairs))
	for _, p := range pairs {
		byDate[p.WorkDate] = p
	}
	return byDate
}
