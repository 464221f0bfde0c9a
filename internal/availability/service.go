package availability

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pen-dragon-house/delivery-slot-backend/internal/calendar"
	"github.com/pen-dragon-house/delivery-slot-backend/internal/shopify"
)

// OrderSource yields recent storefront orders.
type OrderSource interface {
	FetchOrders(ctx context.Context) ([]shopify.Order, error)
}

// CalendarSource yields the delivery calendar document.
type CalendarSource interface {
	FetchCalendar(ctx context.Context) (calendar.Calendar, error)
}

type Service interface {
	// Check returns the availability table for the given town, or for
	// every town merged when the selector is empty. The table is always
	// well-formed: acquisition failures and unknown towns yield an empty
	// table, with the detail going to the log rather than the caller.
	Check(ctx context.Context, town string) Table
	// Towns returns the sorted list of towns offering delivery.
	Towns(ctx context.Context) ([]string, error)
}

type service struct {
	orders   OrderSource
	calendar CalendarSource
	format   SlotFormatter
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates the availability service. A nil formatter falls back
// to the default storefront wording.
func NewService(orders OrderSource, cal CalendarSource, format SlotFormatter, log *zap.Logger) Service {
	if format == nil {
		format = FormatSlots
	}
	return &service{
		orders:   orders,
		calendar: cal,
		format:   format,
		log:      log,
		now:      time.Now,
	}
}

func (s *service) Check(ctx context.Context, town string) Table {
	town = strings.ToLower(strings.TrimSpace(town))

	var (
		orders []shopify.Order
		cal    calendar.Calendar
	)

	// Neither source depends on the other, so fetch both at once. A
	// failure of either fails the whole acquisition; no partial results.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orders.FetchOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cal, err = s.calendar.FetchCalendar(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("availability check failed to acquire source data", zap.Error(err))
		return Table{}
	}

	if town != "" && !cal.HasTown(town) {
		s.log.Warn("no calendar data for requested town", zap.String("town", town))
		return Table{}
	}

	targets := []string{town}
	if town == "" {
		targets = cal.TownNames()
	}

	table := Table{}
	for _, target := range targets {
		booked := countBookedSlots(orders, cal, target, s.log)
		for date, slots := range buildTable(cal, target, booked, s.now(), s.format, s.log) {
			// Town date lists are expected to be town-specific; on a
			// shared date the last town in sorted order wins.
			table[date] = slots
		}
	}
	return table
}

func (s *service) Towns(ctx context.Context) ([]string, error) {
	cal, err := s.calendar.FetchCalendar(ctx)
	if err != nil {
		return nil, err
	}
	return cal.TownNames(), nil
}
