package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToHalfHour(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{-10, 0},
		{0, 0},
		{29, 0},
		{30, 0.5},
		{59, 0.5},
		{60, 1},
		{89, 1},
		{90, 1.5},
		{125, 2},
		{150, 2.5},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, roundToHalfHour(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestComputeDailyOT_EarlyArrival(t *testing.T) {
	window := ShiftWindow{ScheduledIn: "08:00:00", ScheduledOut: "17:30:00"}

	ot := ComputeDailyOT(window, "06:55:00", "17:30:00", false)
	assert.Equal(t, 1.0, ot.EarlyOT)
	assert.Equal(t, 0.0, ot.LateOT)
	assert.Equal(t, 1.0, ot.TotalOT)

	// 29 early minutes round away entirely.
	ot = ComputeDailyOT(window, "07:31:00", "17:30:00", false)
	assert.Equal(t, 0.0, ot.TotalOT)
}

func TestComputeDailyOT_LateDeparture(t *testing.T) {
	window := ShiftWindow{ScheduledIn: "08:00:00", ScheduledOut: "17:30:00"}

	ot := ComputeDailyOT(window, "08:00:00", "19:05:00", false)
	assert.Equal(t, 1.5, ot.LateOT)
	assert.Equal(t, 1.5, ot.TotalOT)

	// Leaving before scheduled out is not negative OT.
	ot = ComputeDailyOT(window, "08:00:00", "16:00:00", false)
	assert.Equal(t, 0.0, ot.TotalOT)
}

func TestComputeDailyOT_NightShiftScenario(t *testing.T) {
	// Check-in 00:27:19 lands in the 00:30-05:30 window; 3 early minutes
	// and 10 late minutes both round away to zero.
	window := ResolveShift("production", "00:27:19")
	assert.Equal(t, ShiftWindow{ScheduledIn: "00:30:00", ScheduledOut: "05:30:00"}, window)

	ot := ComputeDailyOT(window, "00:27:19", "05:40:00", false)
	assert.Equal(t, 0.0, ot.EarlyOT)
	assert.Equal(t, 0.0, ot.LateOT)
	assert.Equal(t, 0.0, ot.TotalOT)
}

func TestComputeDailyOT_OvernightShift(t *testing.T) {
	window := ResolveShift("production", "19:55:00")
	assert.True(t, window.IsOvernight)

	// Check-out 06:00 next day against scheduled 05:30: both normalize
	// past midnight, 30 minutes late.
	ot := ComputeDailyOT(window, "19:55:00", "06:00:00", true)
	assert.Equal(t, 0.0, ot.EarlyOT)
	assert.Equal(t, 0.5, ot.LateOT)

	// Check-out before midnight on the same calendar day stays put.
	ot = ComputeDailyOT(window, "19:55:00", "23:00:00", false)
	assert.Equal(t, 0.0, ot.LateOT)
}

func TestComputeDailyOT_DayShiftCrossedMidnight(t *testing.T) {
	window := ShiftWindow{ScheduledIn: "08:00:00", ScheduledOut: "17:30:00"}

	// Worked past midnight on a day shift: 01:00 next day is 7.5h past
	// scheduled out.
	ot := ComputeDailyOT(window, "08:00:00", "01:00:00", true)
	assert.Equal(t, 7.5, ot.LateOT)
}

func TestComputeDailyOT_DawnShiftCrossedMidnight(t *testing.T) {
	// Dawn window whose scheduled out is before noon: a check-out that
	// crossed midnight drags the scheduled out with it, so leaving at 01:00
	// against a 05:30 out is early, not 19.5h of late OT.
	window := ShiftWindow{ScheduledIn: "00:30:00", ScheduledOut: "05:30:00"}

	ot := ComputeDailyOT(window, "04:00:00", "01:00:00", true)
	assert.Equal(t, 0.0, ot.LateOT)
	assert.Equal(t, 0.0, ot.TotalOT)

	// Staying past the shifted 05:30 still accrues.
	ot = ComputeDailyOT(window, "04:00:00", "07:10:00", true)
	assert.Equal(t, 1.5, ot.LateOT)
}

func TestComputeDailyOT_MissingSidesZeroTerms(t *testing.T) {
	window := ShiftWindow{ScheduledIn: "08:00:00", ScheduledOut: "17:30:00"}

	ot := ComputeDailyOT(window, "07:00:00", "", false)
	assert.Equal(t, 1.0, ot.EarlyOT)
	assert.Equal(t, 0.0, ot.LateOT)

	ot = ComputeDailyOT(window, "", "19:00:00", false)
	assert.Equal(t, 0.0, ot.EarlyOT)
	assert.Equal(t, 1.5, ot.LateOT)

	ot = ComputeDailyOT(window, "", "", false)
	assert.Equal(t, 0.0, ot.TotalOT)
}
