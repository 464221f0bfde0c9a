package calendar

import (
	"encoding/json"
	"sort"
	"strings"
)

// timeSlotsKey is reserved in the calendar document and is never a town.
const timeSlotsKey = "time_slots"

// DateEntry is one serviceable date for a town.
type DateEntry struct {
	Date string `json:"date"` // ISO-8601, e.g. "2025-03-05"
}

// Town is one delivery service area: its postal codes and the dates it can
// be served on.
type Town struct {
	ZipCodes []string    `json:"zip_codes"`
	Dates    []DateEntry `json:"dates"`
}

// Slot holds the booking capacity for one time-slot label. Capacity is
// defined once globally and applies per date.
type Slot struct {
	MaxOrders int `json:"max_orders"`
}

// Calendar is the published delivery calendar: town records keyed by town
// name plus one global time-slot capacity table.
type Calendar struct {
	Towns     map[string]Town
	TimeSlots map[string]Slot

	// sortedNames is filled once at decode time; postal-code resolution
	// walks it for every order, so it must not be rebuilt per lookup.
	// Calendars assembled by hand sort on demand instead.
	sortedNames []string
}

// UnmarshalJSON splits the reserved "time_slots" key out of the flat
// mapping used by the published document, leaving only town records in
// Towns.
func (c *Calendar) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Towns = make(map[string]Town, len(raw))
	c.TimeSlots = map[string]Slot{}

	for key, value := range raw {
		if key == timeSlotsKey {
			if err := json.Unmarshal(value, &c.TimeSlots); err != nil {
				return err
			}
			continue
		}

		var town Town
		if err := json.Unmarshal(value, &town); err != nil {
			return err
		}
		c.Towns[key] = town
	}

	c.sortedNames = make([]string, 0, len(c.Towns))
	for name := range c.Towns {
		c.sortedNames = append(c.sortedNames, name)
	}
	sort.Strings(c.sortedNames)

	return nil
}

// TownNames returns every town name in sorted order so that iteration over
// towns is deterministic within a run.
func (c Calendar) TownNames() []string {
	if c.sortedNames != nil {
		return c.sortedNames
	}

	names := make([]string, 0, len(c.Towns))
	for name := range c.Towns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasTown reports whether the calendar defines the given town.
func (c Calendar) HasTown(name string) bool {
	_, ok := c.Towns[name]
	return ok
}

// TownForZip resolves a postal code to the town whose zip_codes list
// contains it, exact-match after trimming both sides. When misconfigured
// data maps one postal code to several towns, the first town in sorted
// order wins; this is a tie-break, not an error.
func (c Calendar) TownForZip(zip string) (string, bool) {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return "", false
	}

	for _, name := range c.TownNames() {
		for _, candidate := range c.Towns[name].ZipCodes {
			if strings.TrimSpace(candidate) == zip {
				return name, true
			}
		}
	}
	return "", false
}
