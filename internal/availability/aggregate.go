package availability

import (
	"go.uber.org/zap"

	"github.com/pen-dragon-house/delivery-slot-backend/internal/calendar"
	"github.com/pen-dragon-house/delivery-slot-backend/internal/shopify"
)

// countBookedSlots folds the order list into per-date, per-time-slot
// booking counts for the given town. Orders missing any delivery
// attribute, carrying an unparseable date, or resolving to a different
// town are skipped; a skip emits a diagnostic log event and never aborts
// the fold.
func countBookedSlots(orders []shopify.Order, cal calendar.Calendar, town string, log *zap.Logger) SlotCounts {
	booked := SlotCounts{}

	for _, order := range orders {
		rawDate, _ := order.Attribute(shopify.AttrDeliveryDate)
		rawTime, _ := order.Attribute(shopify.AttrDeliveryTime)
		zip, _ := order.Attribute(shopify.AttrDeliveryPostalCode)

		if rawDate == "" || rawTime == "" || zip == "" {
			log.Debug("skipping order without delivery details",
				zap.String("order", order.Name))
			continue
		}

		date, ok := NormalizeDate(rawDate)
		if !ok {
			log.Debug("skipping order with unparseable delivery date",
				zap.String("order", order.Name),
				zap.String("delivery_date", rawDate))
			continue
		}
		slot := NormalizeTime(rawTime)

		orderTown, ok := cal.TownForZip(zip)
		if !ok {
			log.Debug("skipping order with unmatched postal code",
				zap.String("order", order.Name),
				zap.String("postal_code", zip))
			continue
		}
		if orderTown != town {
			// Booked against another town; not a diagnostic condition.
			continue
		}

		if booked[date] == nil {
			booked[date] = map[string]int{}
		}
		booked[date][slot]++
	}

	return booked
}
