package availability

import "strings"

// monthNumbers is the fixed table of accepted month abbreviations. Anything
// outside it makes the date unparseable; time.Parse is deliberately not
// used because it accepts layouts this table must reject.
var monthNumbers = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// NormalizeDate converts a checkout date string such as "Mar 5 2025" into
// the canonical "2025-03-05" form used as the join key against the
// calendar. It returns false when the input is empty, does not split into
// exactly three whitespace-separated tokens, or names an unknown month.
// The year is passed through unmodified; no timezone handling is applied.
func NormalizeDate(raw string) (string, bool) {
	parts := strings.Fields(raw)
	if len(parts) != 3 {
		return "", false
	}

	month, ok := monthNumbers[parts[0]]
	if !ok {
		return "", false
	}

	day := parts[1]
	if len(day) == 1 {
		day = "0" + day
	}

	return parts[2] + "-" + month + "-" + day, true
}

// NormalizeTime collapses every run of whitespace to a single space and
// trims the ends, preserving the checkout's exact wording otherwise. Slot
// labels in the calendar are expected to already use this convention.
func NormalizeTime(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
