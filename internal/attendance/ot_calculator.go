package attendance

import (
	"strconv"
	"strings"
)

const (
	noonMinutes = 12 * 60
	dayMinutes  = 24 * 60
)

// OTBreakdown is the computed overtime for one employee/day, in hours
// rounded to half-hour steps.
type OTBreakdown struct {
	EarlyOT float64 `json:"early_ot"`
	LateOT  float64 `json:"late_ot"`
	TotalOT float64 `json:"total_ot"`
}

// timeToMinutes converts HH:MM[:SS] to minutes since midnight. Seconds are
// dropped. Inputs are validated upstream; this assumes well-formed strings.
func timeToMinutes(t string) int {
	parts := strings.Split(t, ":")
	hours, _ := strconv.Atoi(parts[0])
	minutes := 0
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours*60 + minutes
}

// roundToHalfHour truncates a minute count to half-hour steps: the fraction
// of the final hour rounds to 0.5 at >= 30 minutes and drops below that.
// Negative gaps never produce negative OT.
func roundToHalfHour(minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	hours := float64(minutes / 60)
	if minutes%60 >= 30 {
		hours += 0.5
	}
	return hours
}

func earlyOT(checkIn, scheduledIn string) float64 {
	ci := timeToMinutes(checkIn)
	si := timeToMinutes(scheduledIn)
	if ci >= si {
		return 0
	}
	return roundToHalfHour(si - ci)
}

// lateOT handles the midnight wraparound: on an overnight shift both the
// scheduled out and the actual out are shifted by 24h whenever their raw
// time-of-day falls before noon, so "05:30 tomorrow" compares after "20:00
// today". A check-out that crossed the date boundary is normalized the same
// way, and when it did cross, a scheduled out before noon (the dawn shift)
// shifts with it so the two stay on the same day.
func lateOT(checkOut, scheduledOut string, overnight, crossedMidnight bool) float64 {
	co := timeToMinutes(checkOut)
	so := timeToMinutes(scheduledOut)

	if overnight {
		if so < noonMinutes {
			so += dayMinutes
		}
		if co < noonMinutes {
			co += dayMinutes
		}
	} else if crossedMidnight && co < noonMinutes {
		co += dayMinutes
		if so < noonMinutes {
			so += dayMinutes
		}
	}

	if co <= so {
		return 0
	}
	return roundToHalfHour(co - so)
}

// ComputeDailyOT computes early-arrival and late-departure overtime against
// a shift window. A missing check-in or check-out zeroes its term; it is
// never an error.
func ComputeDailyOT(window ShiftWindow, checkIn, checkOut string, checkOutCrossedMidnight bool) OTBreakdown {
	var result OTBreakdown

	if checkIn != "" {
		result.EarlyOT = earlyOT(checkIn, window.ScheduledIn)
	}
	if checkOut != "" {
		result.LateOT = lateOT(checkOut, window.ScheduledOut, window.IsOvernight, checkOutCrossedMidnight)
	}

	result.TotalOT = result.EarlyOT + result.LateOT
	return result
}
