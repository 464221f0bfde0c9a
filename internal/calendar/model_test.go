package calendar

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
	"riverside": {
		"zip_codes": ["12345", "12346"],
		"dates": [{"date": "2025-03-05"}, {"date": "2025-03-07"}]
	},
	"lakeside": {
		"zip_codes": [" 54321 "],
		"dates": [{"date": "2025-03-06"}]
	},
	"time_slots": {
		"9:00 AM": {"max_orders": 5},
		"2:00 PM": {"max_orders": 3}
	}
}`

func TestCalendarUnmarshalSplitsTimeSlots(t *testing.T) {
	var cal Calendar
	require.NoError(t, json.Unmarshal([]byte(sampleDocument), &cal))

	require.Len(t, cal.Towns, 2)
	require.False(t, cal.HasTown(timeSlotsKey), "reserved key must never become a town")

	require.Equal(t, []string{"lakeside", "riverside"}, cal.TownNames())
	require.Equal(t, 5, cal.TimeSlots["9:00 AM"].MaxOrders)
	require.Equal(t, 3, cal.TimeSlots["2:00 PM"].MaxOrders)

	riverside := cal.Towns["riverside"]
	require.Equal(t, []string{"12345", "12346"}, riverside.ZipCodes)
	require.Equal(t, "2025-03-05", riverside.Dates[0].Date)
}

func TestTownForZip(t *testing.T) {
	var cal Calendar
	require.NoError(t, json.Unmarshal([]byte(sampleDocument), &cal))

	tests := []struct {
		name     string
		zip      string
		wantTown string
		wantOK   bool
	}{
		{name: "exact match", zip: "12345", wantTown: "riverside", wantOK: true},
		{name: "surrounding whitespace trimmed", zip: " 12345 ", wantTown: "riverside", wantOK: true},
		{name: "configured zip with whitespace", zip: "54321", wantTown: "lakeside", wantOK: true},
		{name: "no formatting normalization", zip: "012345", wantOK: false},
		{name: "unknown zip", zip: "99999", wantOK: false},
		{name: "empty zip", zip: "", wantOK: false},
		{name: "whitespace-only zip", zip: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			town, ok := cal.TownForZip(tt.zip)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantTown, town)
		})
	}
}

func TestTownNamesSortedOnDecode(t *testing.T) {
	var cal Calendar
	require.NoError(t, json.Unmarshal([]byte(sampleDocument), &cal))

	// Decoding precomputes the sorted list; repeated calls return it
	// without re-sorting.
	require.NotNil(t, cal.sortedNames)
	require.Equal(t, []string{"lakeside", "riverside"}, cal.sortedNames)
	require.Equal(t, cal.sortedNames, cal.TownNames())

	// Hand-assembled calendars have no precomputed list but still
	// iterate in sorted order.
	literal := Calendar{Towns: map[string]Town{
		"riverside": {},
		"ashford":   {},
		"lakeside":  {},
	}}
	require.Nil(t, literal.sortedNames)
	require.Equal(t, []string{"ashford", "lakeside", "riverside"}, literal.TownNames())
}

func TestTownForZipTieBreakIsDeterministic(t *testing.T) {
	// Misconfigured data: both towns claim the same postal code. The first
	// town in sorted order must win every time.
	cal := Calendar{Towns: map[string]Town{
		"riverside": {ZipCodes: []string{"11111"}},
		"lakeside":  {ZipCodes: []string{"11111"}},
	}}

	for i := 0; i < 10; i++ {
		town, ok := cal.TownForZip("11111")
		require.True(t, ok)
		require.Equal(t, "lakeside", town)
	}
}
