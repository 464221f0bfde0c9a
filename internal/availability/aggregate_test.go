package availability

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/pen-dragon-house/delivery-slot-backend/internal/calendar"
	"github.com/pen-dragon-house/delivery-slot-backend/internal/shopify"
)

func testCalendar() calendar.Calendar {
	return calendar.Calendar{
		Towns: map[string]calendar.Town{
			"riverside": {
				ZipCodes: []string{"12345"},
				Dates:    []calendar.DateEntry{{Date: "2025-03-05"}},
			},
			"lakeside": {
				ZipCodes: []string{"54321"},
				Dates:    []calendar.DateEntry{{Date: "2025-03-06"}},
			},
		},
		TimeSlots: map[string]calendar.Slot{
			"9:00 AM": {MaxOrders: 5},
			"2:00 PM": {MaxOrders: 3},
		},
	}
}

func deliveryOrder(name, date, timeOfDay, zip string) shopify.Order {
	return shopify.Order{
		Name: name,
		CustomAttributes: []shopify.Attribute{
			{Key: shopify.AttrDeliveryDate, Value: date},
			{Key: shopify.AttrDeliveryTime, Value: timeOfDay},
			{Key: shopify.AttrDeliveryPostalCode, Value: zip},
		},
	}
}

func TestCountBookedSlots(t *testing.T) {
	cal := testCalendar()

	tests := []struct {
		name   string
		orders []shopify.Order
		town   string
		want   SlotCounts
	}{
		{
			name: "matching orders counted per date and slot",
			orders: []shopify.Order{
				deliveryOrder("#1001", "Mar 5 2025", "9:00 AM", "12345"),
				deliveryOrder("#1002", "Mar 5 2025", "9:00   AM", "12345"),
				deliveryOrder("#1003", "Mar 5 2025", "2:00 PM", "12345"),
			},
			town: "riverside",
			want: SlotCounts{"2025-03-05": {"9:00 AM": 2, "2:00 PM": 1}},
		},
		{
			name: "order for another town excluded",
			orders: []shopify.Order{
				deliveryOrder("#1001", "Mar 5 2025", "9:00 AM", "12345"),
			},
			town: "lakeside",
			want: SlotCounts{},
		},
		{
			name: "missing attribute skipped",
			orders: []shopify.Order{
				{Name: "#1001", CustomAttributes: []shopify.Attribute{
					{Key: shopify.AttrDeliveryDate, Value: "Mar 5 2025"},
					{Key: shopify.AttrDeliveryTime, Value: "9:00 AM"},
				}},
			},
			town: "riverside",
			want: SlotCounts{},
		},
		{
			name: "empty attribute value treated as missing",
			orders: []shopify.Order{
				deliveryOrder("#1001", "Mar 5 2025", "", "12345"),
			},
			town: "riverside",
			want: SlotCounts{},
		},
		{
			name: "unparseable date skipped",
			orders: []shopify.Order{
				deliveryOrder("#1001", "2025-03-05", "9:00 AM", "12345"),
			},
			town: "riverside",
			want: SlotCounts{},
		},
		{
			name: "unmatched postal code skipped",
			orders: []shopify.Order{
				deliveryOrder("#1001", "Mar 5 2025", "9:00 AM", "99999"),
			},
			town: "riverside",
			want: SlotCounts{},
		},
		{
			name: "postal code trimmed before matching",
			orders: []shopify.Order{
				deliveryOrder("#1001", "Mar 5 2025", "9:00 AM", " 12345 "),
			},
			town: "riverside",
			want: SlotCounts{"2025-03-05": {"9:00 AM": 1}},
		},
		{
			name:   "no orders",
			orders: nil,
			town:   "riverside",
			want:   SlotCounts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countBookedSlots(tt.orders, cal, tt.town, zap.NewNop())
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("countBookedSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}
