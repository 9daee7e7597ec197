package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"staysoft_backend/internal/leads/ports"
)

func TestGetStatsZeroLeads(t *testing.T) {
	f := newFixture()

	stats, err := f.svc.GetStats(context.Background(), f.storeID)
	if err != nil {
		t.Fatalf("getStats: %v", err)
	}

	if stats.TotalLeads != 0 {
		t.Errorf("expected 0 leads, got %d", stats.TotalLeads)
	}
	if stats.ConversionRate != "0.0" {
		t.Errorf("zero leads must yield conversion rate 0.0, got %q", stats.ConversionRate)
	}
	if stats.OpenValueCents != 0 || stats.WonValueCents != 0 || stats.HotLeads != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
	if len(stats.RecentLeads) != 0 {
		t.Errorf("expected no recent leads, got %d", len(stats.RecentLeads))
	}
}

func TestGetStatsFunnelScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.catalog.items = []ports.CatalogItem{
		{Name: "RTX 4060", PriceCents: 250000},
		{Name: "i5", Model: "12400", PriceCents: 90000},
	}

	wonLead, err := f.svc.Upsert(ctx, f.storeID, "5511911111111", "qual o valor?", "")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := f.svc.SetInterest(ctx, f.storeID, "5511911111111", "RTX 4060 Dual"); err != nil {
		t.Fatalf("set interest: %v", err)
	}
	if _, err := f.svc.UpdateStatus(ctx, wonLead.ID, f.storeID, "WON"); err != nil {
		t.Fatalf("update status: %v", err)
	}

	if _, err := f.svc.Upsert(ctx, f.storeID, "5511922222222", "hello", ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := f.svc.SetInterest(ctx, f.storeID, "5511922222222", "i5 processor"); err != nil {
		t.Fatalf("set interest: %v", err)
	}

	stats, err := f.svc.GetStats(ctx, f.storeID)
	if err != nil {
		t.Fatalf("getStats: %v", err)
	}

	if stats.TotalLeads != 2 {
		t.Errorf("expected totalLeads 2, got %d", stats.TotalLeads)
	}
	if stats.ConversionRate != "50.0" {
		t.Errorf("expected conversionRate 50.0, got %q", stats.ConversionRate)
	}
	if stats.WonValueCents != 250000 {
		t.Errorf("expected wonValue 250000, got %d", stats.WonValueCents)
	}
	if stats.OpenValueCents != 90000 {
		t.Errorf("expected openValue 90000, got %d", stats.OpenValueCents)
	}
	if stats.HotLeads != 1 {
		t.Errorf("expected 1 hot lead, got %d", stats.HotLeads)
	}
}

func TestGetStatsFirstCatalogMatchWins(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	// Both items match the interest text; only the first in catalog order
	// may be credited.
	f.catalog.items = []ports.CatalogItem{
		{Name: "RTX 4060", PriceCents: 250000},
		{Name: "RTX 4060 Ti", PriceCents: 310000},
	}

	if _, err := f.svc.Upsert(ctx, f.storeID, "5511911111111", "hi", ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := f.svc.SetInterest(ctx, f.storeID, "5511911111111", "rtx 4060 ti please"); err != nil {
		t.Fatalf("set interest: %v", err)
	}

	stats, err := f.svc.GetStats(ctx, f.storeID)
	if err != nil {
		t.Fatalf("getStats: %v", err)
	}
	if stats.OpenValueCents != 250000 {
		t.Fatalf("expected first match credited once (250000), got %d", stats.OpenValueCents)
	}
}

func TestGetStatsLeadWithoutInterestContributesZero(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.catalog.items = []ports.CatalogItem{{Name: "RTX 4060", PriceCents: 250000}}

	if _, err := f.svc.Upsert(ctx, f.storeID, "5511911111111", "hi", ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	stats, err := f.svc.GetStats(ctx, f.storeID)
	if err != nil {
		t.Fatalf("getStats: %v", err)
	}
	if stats.OpenValueCents != 0 {
		t.Fatalf("expected zero open value, got %d", stats.OpenValueCents)
	}
}

func TestGetStatsFailsWhenCatalogUnavailable(t *testing.T) {
	f := newFixture()
	f.catalog.err = errors.New("catalog down")

	if _, err := f.svc.GetStats(context.Background(), f.storeID); err == nil {
		t.Fatal("expected error when catalog lookup fails")
	}
}

func TestGetStatsRecentLeadsCappedAtFive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		phoneNumber := fmt.Sprintf("55119%08d", i)
		if _, err := f.svc.Upsert(ctx, f.storeID, phoneNumber, "hi", ""); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	stats, err := f.svc.GetStats(ctx, f.storeID)
	if err != nil {
		t.Fatalf("getStats: %v", err)
	}
	if stats.TotalLeads != 7 {
		t.Fatalf("expected 7 leads, got %d", stats.TotalLeads)
	}
	if len(stats.RecentLeads) != 5 {
		t.Fatalf("expected 5 recent leads, got %d", len(stats.RecentLeads))
	}
	// Most recently updated lead comes first, straight from list order.
	if stats.RecentLeads[0].Phone != "5511900000006" {
		t.Fatalf("expected newest lead first, got %s", stats.RecentLeads[0].Phone)
	}
}

func TestGetStatsServedFromCache(t *testing.T) {
	f := newCachedFixture()
	ctx := context.Background()

	if _, err := f.svc.Upsert(ctx, f.storeID, "5511911111111", "hi", ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	first, err := f.svc.GetStats(ctx, f.storeID)
	if err != nil {
		t.Fatalf("first getStats: %v", err)
	}
	if f.cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", f.cache.sets)
	}

	second, err := f.svc.GetStats(ctx, f.storeID)
	if err != nil {
		t.Fatalf("second getStats: %v", err)
	}
	if f.cache.sets != 1 {
		t.Fatal("second call should be a cache hit, not recompute")
	}
	if first.TotalLeads != second.TotalLeads || first.ConversionRate != second.ConversionRate {
		t.Fatal("cached stats must match computed stats")
	}
}

func TestGetStatsCacheInvalidatedByMutation(t *testing.T) {
	f := newCachedFixture()
	ctx := context.Background()

	if _, err := f.svc.Upsert(ctx, f.storeID, "5511911111111", "hi", ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := f.svc.GetStats(ctx, f.storeID); err != nil {
		t.Fatalf("getStats: %v", err)
	}

	// New contact invalidates the cached summary.
	if _, err := f.svc.Upsert(ctx, f.storeID, "5511922222222", "hi", ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	stats, err := f.svc.GetStats(ctx, f.storeID)
	if err != nil {
		t.Fatalf("getStats after mutation: %v", err)
	}
	if stats.TotalLeads != 2 {
		t.Fatalf("expected fresh stats with 2 leads, got %d", stats.TotalLeads)
	}
}

func TestFormatConversionRateRounding(t *testing.T) {
	cases := []struct {
		won, total int
		want       string
	}{
		{0, 0, "0.0"},
		{1, 3, "33.3"},
		{1, 2, "50.0"},
		{2, 3, "66.7"},
		{3, 3, "100.0"},
	}
	for _, tc := range cases {
		if got := formatConversionRate(tc.won, tc.total); got != tc.want {
			t.Errorf("formatConversionRate(%d, %d) = %q, want %q", tc.won, tc.total, got, tc.want)
		}
	}
}
