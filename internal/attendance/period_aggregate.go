package attendance

import "time"

const dateLayout = "2006-01-02"

// DailyOTResult is the computed outcome for one employee/day. ActualOT is
// the payable figure: tripled on Sundays, equal to OTHours otherwise.
type DailyOTResult struct {
	Date     string  `json:"date"`
	OTHours  float64 `json:"ot_hours"`
	IsSunday bool    `json:"is_sunday"`
	ActualOT float64 `json:"actual_ot"`
	OnLeave  bool    `json:"is_leave"`
}

// PeriodAggregate is one employee's totals for one payroll period.
// SundayOTHours keeps the raw Sunday hours for audit; SundayOTCalculated is
// the tripled figure that feeds payroll.
type PeriodAggregate struct {
	EmployeeID         string
	PeriodStart        time.Time
	PeriodEnd          time.Time
	Days               []DailyOTResult
	TotalWorkDays      int
	RegularOTHours     float64
	SundayOTHours      float64
	SundayOTCalculated float64
	TotalOTHours       float64
}

// LeaveKey builds the lookup key used to flag on-leave days.
func LeaveKey(employeeID, date string) string {
	return employeeID + "_" + date
}

// BuildPeriodAggregate walks every calendar day from start to end inclusive
// and computes the employee's overtime for each. Days without any pair get
// zero hours but still appear, so downstream storage stays day-indexed.
// TotalWorkDays counts only days with nonzero OT; that is how the books
// have always been kept and payroll reporting depends on it.
func BuildPeriodAggregate(
	employeeID, department string,
	punches []ScanPunch,
	onLeave map[string]struct{},
	start, end time.Time,
) PeriodAggregate {
	byDate := PairsByWorkDate(PairScans(punches))

	agg := PeriodAggregate{
		EmployeeID:  employeeID,
		PeriodStart: start,
		PeriodEnd:   end,
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(dateLayout)
		isSunday := d.Weekday() == time.Sunday

		var checkIn, checkOut string
		crossedMidnight := false
		if pair, ok := byDate[dateStr]; ok {
			if pair.CheckIn != nil {
				checkIn = pair.CheckIn.Time
			}
			if pair.CheckOut != nil {
				checkOut = pair.CheckOut.Time
			}
			crossedMidnight = pair.CheckOutCrossedMidnight()
		}

		window := ResolveShift(department, checkIn)
		ot := ComputeDailyOT(window, checkIn, checkOut, crossedMidnight)

		otHours := ot.TotalOT
		actualOT := otHours
		if isSunday {
			actualOT = otHours * 3
		}

		_, leave := onLeave[LeaveKey(employeeID, dateStr)]
		agg.Days = append(agg.Days, DailyOTResult{
			Date:     dateStr,
			OTHours:  otHours,
			IsSunday: isSunday,
			ActualOT: actualOT,
			OnLeave:  leave,
		})

		if otHours > 0 {
			agg.TotalWorkDays++
			if isSunday {
				agg.SundayOTHours += otHours
				agg.SundayOTCalculated += actualOT
			} else {
				agg.RegularOTHours += otHours
			}
		}
	}

	agg.TotalOTHours = agg.RegularOTHours + agg.SundayOTCalculated
	return agg
}
