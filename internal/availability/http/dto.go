package http

import (
	"github.com/pen-dragon-house/delivery-slot-backend/internal/availability"
)

// CheckRequest defines query parameters for the availability lookup. An
// empty town computes availability across every town.
type CheckRequest struct {
	Town string `form:"town"`
}

// SlotStatusResponse mirrors one slot's availability. Remaining is the
// authoritative count; Display is the storefront wording.
type SlotStatusResponse struct {
	Remaining int    `json:"remaining"`
	Display   string `json:"display"`
}

// AvailabilityResponse maps date to time-slot label to slot status.
type AvailabilityResponse map[string]map[string]SlotStatusResponse

func NewAvailabilityResponse(table availability.Table) AvailabilityResponse {
	out := make(AvailabilityResponse, len(table))
	for date, slots := range table {
		entry := make(map[string]SlotStatusResponse, len(slots))
		for label, status := range slots {
			entry[label] = SlotStatusResponse{
				Remaining: status.Remaining,
				Display:   status.Display,
			}
		}
		out[date] = entry
	}
	return out
}

// TownsResponse lists the towns offering delivery, for the storefront's
// town picker.
type TownsResponse struct {
	Towns []string `json:"towns"`
}
