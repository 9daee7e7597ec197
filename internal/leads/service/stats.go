package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"staysoft_backend/internal/leads/domain"
	"staysoft_backend/internal/leads/ports"
	"staysoft_backend/internal/leads/transport"
)

const recentLeadsLimit = 5

// GetStats computes the funnel summary for a store. Leads and catalog are
// fetched concurrently; a catalog lookup failure fails the whole call rather
// than silently reporting a zero pipeline value. Results are cached briefly
// when a cache is configured, and cache failures never fail the request.
func (s *Service) GetStats(ctx context.Context, storeID uuid.UUID) (transport.StatsResponse, error) {
	cacheKey := statsCacheKey(storeID)
	if s.cache != nil {
		var cached transport.StatsResponse
		found, err := s.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			s.log.CacheError("get stats", err)
		} else if found {
			return cached, nil
		}
	}

	var leads []domain.Lead
	var items []ports.CatalogItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leads, err = s.repo.ListByStore(gctx, storeID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.catalog.ListItems(gctx, storeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.StatsResponse{}, err
	}

	stats := computeStats(leads, items)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, stats, s.cacheTTL); err != nil {
			s.log.CacheError("set stats", err)
		}
	}

	return stats, nil
}

// computeStats derives the summary from a lead list already ordered by
// updated_at descending.
func computeStats(leads []domain.Lead, items []ports.CatalogItem) transport.StatsResponse {
	stats := transport.StatsResponse{
		TotalLeads:  len(leads),
		RecentLeads: make([]transport.LeadResponse, 0, recentLeadsLimit),
	}

	wonCount := 0
	for _, lead := range leads {
		if lead.IsHot {
			stats.HotLeads++
		}

		switch {
		case lead.Status == domain.StatusWon:
			wonCount++
			stats.WonValueCents += interestValueCents(lead, items)
		case lead.Status.IsOpen():
			stats.OpenValueCents += interestValueCents(lead, items)
		}

		if len(stats.RecentLeads) < recentLeadsLimit {
			stats.RecentLeads = append(stats.RecentLeads, toLeadResponse(lead))
		}
	}

	stats.ConversionRate = formatConversionRate(wonCount, len(leads))
	return stats
}

// interestValueCents credits a lead with the price of the first catalog item
// whose name or model appears inside the lead's interest subject. The scan is
// a deterministic linear pass in catalog order; the first hit wins and a lead
// is never credited twice.
func interestValueCents(lead domain.Lead, items []ports.CatalogItem) int64 {
	if lead.InterestSubject == nil {
		return 0
	}
	interest := strings.ToLower(*lead.InterestSubject)
	if interest == "" {
		return 0
	}

	for _, item := range items {
		if name := strings.ToLower(item.Name); name != "" && strings.Contains(interest, name) {
			return item.PriceCents
		}
		if model := strings.ToLower(item.Model); model != "" && strings.Contains(interest, model) {
			return item.PriceCents
		}
	}
	return 0
}

// formatConversionRate renders won/total as a percentage with exactly one
// decimal digit. Zero leads yields "0.0", never a division error.
func formatConversionRate(won, total int) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(won)/float64(total)*100)
}

func statsCacheKey(storeID uuid.UUID) string {
	return "leads:stats:" + storeID.String()
}

func (s *Service) invalidateStats(ctx context.Context, storeID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, statsCacheKey(storeID)); err != nil {
		s.log.CacheError("invalidate stats", err)
	}
}
