// Package notification alerts store owners about pipeline activity. It is a
// pure event consumer with no HTTP surface.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"staysoft_backend/internal/events"
	storestransport "staysoft_backend/internal/stores/transport"
	"staysoft_backend/platform/logger"
)

// MessageSender delivers a text message. internal/whatsapp.Client satisfies
// it, including as a nil client that drops sends.
type MessageSender interface {
	SendMessage(ctx context.Context, phone, text string) error
}

// StoreGetter is the slice of the stores service the notifier needs.
type StoreGetter interface {
	Get(ctx context.Context, storeID uuid.UUID) (storestransport.StoreResponse, error)
}

// Notifier sends hot-lead alerts to store owners over WhatsApp.
type Notifier struct {
	stores StoreGetter
	sender MessageSender
	log    *logger.Logger
}

// New creates a notifier.
func New(stores StoreGetter, sender MessageSender, log *logger.Logger) *Notifier {
	return &Notifier{stores: stores, sender: sender, log: log}
}

// RegisterSubscribers hooks the notifier into the event bus.
func (n *Notifier) RegisterSubscribers(bus events.Bus) {
	bus.Subscribe(events.LeadBecameHot{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		becameHot, ok := event.(events.LeadBecameHot)
		if !ok {
			return fmt.Errorf("unexpected event type %T", event)
		}
		return n.notifyHotLead(ctx, becameHot)
	}))
}

func (n *Notifier) notifyHotLead(ctx context.Context, event events.LeadBecameHot) error {
	store, err := n.stores.Get(ctx, event.StoreID)
	if err != nil {
		return fmt.Errorf("notify hot lead: %w", err)
	}

	if !store.NotifyHotLeads {
		return nil
	}
	if store.Phone == "" {
		n.log.Warn("hot lead alert skipped, store has no phone", "storeId", event.StoreID)
		return nil
	}

	if err := n.sender.SendMessage(ctx, store.Phone, hotLeadAlert(event)); err != nil {
		return fmt.Errorf("notify hot lead: %w", err)
	}

	n.log.Info("hot lead alert sent", "storeId", event.StoreID, "leadId", event.LeadID)
	return nil
}

func hotLeadAlert(event events.LeadBecameHot) string {
	who := event.Name
	if who == "" {
		who = event.Phone
	}
	return fmt.Sprintf("🔥 Lead quente: %s\nÚltima mensagem: %s", who, event.LastMessage)
}
