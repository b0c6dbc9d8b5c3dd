package attendance

// DepartmentTransport is the one department with its own shift windows.
const DepartmentTransport = "transport"

// ShiftWindow is the expected working window for a day. IsOvernight marks
// the 20:00-05:30 shift whose scheduled out rolls past midnight.
type ShiftWindow struct {
	ScheduledIn  string `json:"scheduled_in"`
	ScheduledOut string `json:"scheduled_out"`
	IsOvernight  bool   `json:"is_overnight"`
}

// shiftRule maps an inclusive check-in minute bucket to a window, with an
// optional transport-department override. Rules are evaluated in order and
// together cover every minute 0..1439 exactly once.
type shiftRule struct {
	fromMinute int
	toMinute   int
	window     ShiftWindow
	transport  *ShiftWindow
}

// defaultWindow applies when no check-in exists, for every department.
var defaultWindow = ShiftWindow{ScheduledIn: "08:00:00", ScheduledOut: "17:30:00"}

var shiftTable = []shiftRule{
	{0, 300, ShiftWindow{ScheduledIn: "00:30:00", ScheduledOut: "05:30:00"}, nil},
	{301, 450,
		ShiftWindow{ScheduledIn: "06:00:00", ScheduledOut: "17:00:00"},
		&ShiftWindow{ScheduledIn: "08:00:00", ScheduledOut: "17:00:00"}},
	{451, 480,
		ShiftWindow{ScheduledIn: "06:00:00", ScheduledOut: "17:30:00"},
		&ShiftWindow{ScheduledIn: "08:00:00", ScheduledOut: "17:30:00"}},
	{481, 720, ShiftWindow{ScheduledIn: "08:00:00", ScheduledOut: "17:30:00"}, nil},
	{721, 1050, ShiftWindow{ScheduledIn: "13:00:00", ScheduledOut: "17:30:00"}, nil},
	{1051, 1439, ShiftWindow{ScheduledIn: "20:00:00", ScheduledOut: "05:30:00", IsOvernight: true}, nil},
}

// ResolveShift returns the scheduled window for a check-in time-of-day.
// An empty checkInTime means no scan that day and yields the default window.
func ResolveShift(department, checkInTime string) ShiftWindow {
	if checkInTime == "" {
		return defaultWindow
	}

	minutes := timeToMinutes(checkInTime)
	for _, rule := range shiftTable {
		if minutes < rule.fromMinute || minutes > rule.toMinute {
			continue
		}
		if rule.transport != nil && department == DepartmentTransport {
			return *rule.transport
		}
		return rule.window
	}

	// The table is total over 0..1439; only out-of-range garbage lands here.
	return defaultWindow
}
