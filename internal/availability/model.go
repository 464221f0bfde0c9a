package availability

// SlotStatus is the availability of one (date, time-slot) pair. Remaining
// is the authoritative value, clamped to 0 when the slot is at or over
// capacity; Display carries the formatter's wording for the storefront.
type SlotStatus struct {
	Remaining int    `json:"remaining"`
	Display   string `json:"display"`
}

// FullyBooked reports whether the slot has no capacity left.
func (s SlotStatus) FullyBooked() bool {
	return s.Remaining <= 0
}

// Table maps a canonical date (YYYY-MM-DD) to time-slot label to status.
// Built fresh per computation and never persisted.
type Table map[string]map[string]SlotStatus

// SlotCounts maps a canonical date to time-slot label to the number of
// orders booked against it.
type SlotCounts map[string]map[string]int
