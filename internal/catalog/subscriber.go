package catalog

import (
	"context"
	"fmt"

	"staysoft_backend/internal/events"
)

// RegisterSubscribers hooks the catalog module into the event bus. Interest
// events from the lead pipeline credit product interest counters.
func (m *Module) RegisterSubscribers(bus events.Bus) {
	bus.Subscribe(events.LeadInterestSet{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		interestSet, ok := event.(events.LeadInterestSet)
		if !ok {
			return fmt.Errorf("unexpected event type %T", event)
		}
		return m.svc.RecordInterest(ctx, interestSet.StoreID, interestSet.Interest)
	}))
}
