// Package inbox implements the inbox resolution and presentation engine:
// turning fetched threads into addressable, filterable, human-readable
// output.
package inbox

import (
	"strconv"
	"strings"
	"time"
)

// RelativeAge converts a server timestamp in the local-naive
// YYYY-MM-DDTHH:MM:SS form into a coarse age label relative to now:
// "now", "5m", "3h", "2d". Malformed or future timestamps yield "".
//
// The epoch arithmetic is deliberately approximate (365-day years, 30-day
// months, no timezone). Output is bucketed into coarse human units, so the
// drift never shows.
func RelativeAge(timestamp string, now time.Time) string {
	parts := strings.Split(timestamp, "T")
	if len(parts) != 2 {
		return ""
	}

	dateParts, ok := parseFields(strings.Split(parts[0], "-"))
	if !ok || len(dateParts) != 3 {
		return ""
	}
	timeParts, ok := parseFields(strings.Split(parts[1], ":"))
	if !ok || len(timeParts) < 2 {
		return ""
	}

	days := (dateParts[0]-1970)*365 + (dateParts[1]-1)*30 + dateParts[2]
	secs := days*86400 + timeParts[0]*3600 + timeParts[1]*60

	elapsed := now.Unix() - secs
	if elapsed < 0 {
		return ""
	}

	switch {
	case elapsed < 60:
		return "now"
	case elapsed < 3600:
		return strconv.FormatInt(elapsed/60, 10) + "m"
	case elapsed < 86400:
		return strconv.FormatInt(elapsed/3600, 10) + "h"
	default:
		return strconv.FormatInt(elapsed/86400, 10) + "d"
	}
}

func parseFields(fields []string) ([]int64, bool) {
	parsed := make([]int64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, false
		}
		parsed = append(parsed, int64(value))
	}
	return parsed, true
}
