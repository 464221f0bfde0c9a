package availability

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pen-dragon-house/delivery-slot-backend/internal/calendar"
)

const dateLayout = "2006-01-02"

// SlotFormatter renders the remaining count as the display string shown by
// the storefront widget. The numeric remaining value stays authoritative;
// formatters only change wording.
type SlotFormatter func(remaining int) string

// FormatSlots is the default storefront wording.
func FormatSlots(remaining int) string {
	if remaining <= 0 {
		return "Fully Booked"
	}
	return fmt.Sprintf("%d slots left", remaining)
}

// FormatSlotsTiered switches to urgency wording as capacity runs low.
func FormatSlotsTiered(remaining int) string {
	switch {
	case remaining <= 0:
		return "Fully Booked"
	case remaining == 1:
		return "Only 1 slot left!"
	case remaining <= 3:
		return fmt.Sprintf("Only %d slots left", remaining)
	default:
		return fmt.Sprintf("%d slots left", remaining)
	}
}

// buildTable computes remaining capacity for every future date in the
// town's calendar across every configured time slot. Dates are compared
// date-only against today, today itself included. Every slot label defined
// in the calendar appears in each date's entry; none are invented or
// omitted. Remaining counts at or below zero collapse to fully booked, so
// over-booked slots never report a negative count.
func buildTable(cal calendar.Calendar, town string, booked SlotCounts, today time.Time, format SlotFormatter, log *zap.Logger) Table {
	table := Table{}

	townRec, ok := cal.Towns[town]
	if !ok {
		return table
	}

	cutoff := today.Format(dateLayout)
	for _, entry := range townRec.Dates {
		if _, err := time.Parse(dateLayout, entry.Date); err != nil {
			log.Debug("skipping malformed calendar date",
				zap.String("town", town),
				zap.String("date", entry.Date))
			continue
		}
		// Canonical dates order lexicographically, so a plain string
		// comparison is a date comparison.
		if entry.Date < cutoff {
			continue
		}

		slots := make(map[string]SlotStatus, len(cal.TimeSlots))
		for label, capacity := range cal.TimeSlots {
			remaining := capacity.MaxOrders - booked[entry.Date][label]
			status := SlotStatus{Display: format(remaining)}
			if remaining > 0 {
				status.Remaining = remaining
			}
			slots[label] = status
		}
		table[entry.Date] = slots
	}

	return table
}
