package rendering

import "strings"

// FormatDateRange formats a start/end date pair for display.
// An end date of "present" or "current" (any case) renders as "Present".
// A missing end date renders the start date alone.
func FormatDateRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" {
		return ""
	}
	switch strings.ToLower(end) {
	case "":
		return start
	case "present", "current":
		return start + " -- Present"
	default:
		return start + " -- " + end
	}
}
