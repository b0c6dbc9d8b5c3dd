package scan

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	DirectionCheckIn  = 1
	DirectionCheckOut = 2
)

// ScanEvent is one structured terminal punch parsed from the raw text dump.
// Date is already reformatted to ISO YYYY-MM-DD.
type ScanEvent struct {
	TerminalID string
	Date       string
	Time       string
	EmployeeID string
	Direction  int
}

// ParseText turns a raw multi-line scan dump into structured events.
// Expected line shape, whitespace-separated:
//
//	terminal_id  DD-MM-YYYY  HH:MM:SS  'employee_id  direction
//
// The employee id may carry a leading apostrophe (spreadsheet export
// artifact) which is stripped. Lines with fewer than five tokens or a
// direction outside {1,2} are skipped with a warning; a single bad line
// never aborts the batch. Dates are reordered to ISO but not otherwise
// validated here.
func ParseText(text string, logger *zap.Logger) []ScanEvent {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("scan.parser")

	var events []ScanEvent
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			log.Warn("invalid scan line format", zap.String("line", line))
			continue
		}

		direction, err := strconv.Atoi(fields[4])
		if err != nil || (direction != DirectionCheckIn && direction != DirectionCheckOut) {
			log.Warn("invalid scan direction", zap.String("line", line))
			continue
		}

		events = append(events, ScanEvent{
			TerminalID: fields[0],
			Date:       normalizeDate(fields[1]),
			Time:       fields[2],
			EmployeeID: strings.TrimPrefix(fields[3], "'"),
			Direction:  direction,
		})
	}

	return events
}

// normalizeDate reorders DD-MM-YYYY to YYYY-MM-DD. Anything that is not
// three dash-separated parts passes through untouched and is caught
// downstream when the date is actually used.
func normalizeDate(raw string) string {
	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		return raw
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
