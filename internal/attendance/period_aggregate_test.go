package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, _ := time.Parse(dateLayout, s)
	return d
}

func TestBuildPeriodAggregate_EveryDayPresent(t *testing.T) {
	agg := BuildPeriodAggregate("EMP001", "production", nil, nil,
		date("2025-01-01"), date("2025-01-15"))

	assert.Len(t, agg.Days, 15)
	assert.Equal(t, "2025-01-01", agg.Days[0].Date)
	assert.Equal(t, "2025-01-15", agg.Days[14].Date)
	assert.Equal(t, 0, agg.TotalWorkDays)
	assert.Equal(t, 0.0, agg.TotalOTHours)
}

func TestBuildPeriodAggregate_RegularWeekday(t *testing.T) {
	punches := []ScanPunch{
		punch("2025-01-15", "06:55:00", DirectionCheckIn),
		punch("2025-01-15", "19:05:00", DirectionCheckOut),
	}

	agg := BuildPeriodAggregate("EMP001", "production", punches, nil,
		date("2025-01-13"), date("2025-01-17"))

	// 06:55 falls in the 06:00-17:00 bucket: no early OT, 125 late minutes.
	day := agg.Days[2]
	assert.Equal(t, "2025-01-15", day.Date)
	assert.False(t, day.IsSunday)
	assert.Equal(t, 2.0, day.OTHours)
	assert.Equal(t, 2.0, day.ActualOT)

	assert.Equal(t, 1, agg.TotalWorkDays)
	assert.Equal(t, 2.0, agg.RegularOTHours)
	assert.Equal(t, 0.0, agg.SundayOTHours)
	assert.Equal(t, 2.0, agg.TotalOTHours)
}

func TestBuildPeriodAggregate_SundayTripled(t *testing.T) {
	punches := []ScanPunch{
		punch("2025-01-19", "08:00:00", DirectionCheckIn),
		punch("2025-01-19", "19:30:00", DirectionCheckOut),
	}

	agg := BuildPeriodAggregate("EMP001", "production", punches, nil,
		date("2025-01-19"), date("2025-01-19"))

	day := agg.Days[0]
	assert.True(t, day.IsSunday)
	assert.Equal(t, 2.0, day.OTHours)
	assert.Equal(t, 6.0, day.ActualOT)

	assert.Equal(t, 2.0, agg.SundayOTHours)
	assert.Equal(t, 6.0, agg.SundayOTCalculated)
	assert.Equal(t, 0.0, agg.RegularOTHours)
	assert.Equal(t, 6.0, agg.TotalOTHours)
}

func TestBuildPeriodAggregate_OvernightCountedOnCheckInDay(t *testing.T) {
	punches := []ScanPunch{
		punch("2025-01-15", "19:55:00", DirectionCheckIn),
		punch("2025-01-16", "06:00:00", DirectionCheckOut),
	}

	agg := BuildPeriodAggregate("EMP001", "production", punches, nil,
		date("2025-01-15"), date("2025-01-16"))

	assert.Equal(t, 0.5, agg.Days[0].OTHours)
	assert.Equal(t, 0.0, agg.Days[1].OTHours)
	assert.Equal(t, 1, agg.TotalWorkDays)
}

func TestBuildPeriodAggregate_DawnShiftCrossedMidnight(t *testing.T) {
	// Dawn-shift check-in with a check-out after the next midnight: the
	// 05:30 scheduled out shifts forward with the check-out, so a 01:00
	// departure is within the window and the day earns nothing.
	punches := []ScanPunch{
		punch("2025-01-15", "04:00:00", DirectionCheckIn),
		punch("2025-01-16", "01:00:00", DirectionCheckOut),
	}

	agg := BuildPeriodAggregate("EMP001", "production", punches, nil,
		date("2025-01-15"), date("2025-01-16"))

	assert.Equal(t, 0.0, agg.Days[0].OTHours)
	assert.Equal(t, 0.0, agg.TotalOTHours)
	assert.Equal(t, 0, agg.TotalWorkDays)
}

func TestBuildPeriodAggregate_LeaveFlaggedWithoutChangingOT(t *testing.T) {
	punches := []ScanPunch{
		punch("2025-01-15", "06:55:00", DirectionCheckIn),
		punch("2025-01-15", "19:05:00", DirectionCheckOut),
	}
	onLeave := map[string]struct{}{
		LeaveKey("EMP001", "2025-01-15"): {},
		LeaveKey("EMP001", "2025-01-16"): {},
	}

	agg := BuildPeriodAggregate("EMP001", "production", punches, onLeave,
		date("2025-01-15"), date("2025-01-16"))

	assert.True(t, agg.Days[0].OnLeave)
	assert.Equal(t, 2.0, agg.Days[0].OTHours)
	assert.True(t, agg.Days[1].OnLeave)
	assert.Equal(t, 0.0, agg.Days[1].OTHours)
}

func TestBuildPeriodAggregate_OtherEmployeeLeaveIgnored(t *testing.T) {
	onLeave := map[string]struct{}{
		LeaveKey("EMP999", "2025-01-15"): {},
	}

	agg := BuildPeriodAggregate("EMP001", "production", nil, onLeave,
		date("2025-01-15"), date("2025-01-15"))

	assert.False(t, agg.Days[0].OnLeave)
}

func TestBuildPeriodAggregate_Deterministic(t *testing.T) {
	punches := []ScanPunch{
		punch("2025-01-16", "18:40:00", DirectionCheckOut),
		punch("2025-01-15", "06:55:00", DirectionCheckIn),
		punch("2025-01-16", "07:58:00", DirectionCheckIn),
		punch("2025-01-15", "19:05:00", DirectionCheckOut),
	}
	shuffled := []ScanPunch{punches[3], punches[1], punches[0], punches[2]}

	a := BuildPeriodAggregate("EMP001", "production", punches, nil,
		date("2025-01-15"), date("2025-01-16"))
	b := BuildPeriodAggregate("EMP001", "production", shuffled, nil,
		date("2025-01-15"), date("2025-01-16"))

	assert.Equal(t, a, b)
}
