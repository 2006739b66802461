package ingest

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/whalewatch/polymarket-data/internal/model"
)

// Filter returns the trades whose cost meets the threshold.
func Filter(trades []model.Trade, threshold decimal.Decimal) []model.Trade {
	qualifying := make([]model.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Qualifies(threshold) {
			qualifying = append(qualifying, t)
		}
	}
	return qualifying
}

// DistinctDisplayNames returns the sorted unique display names.
func DistinctDisplayNames(trades []model.Trade) []string {
	return distinct(trades, func(t model.Trade) string { return t.DisplayName })
}

// DistinctWalletAddresses returns the sorted unique wallet addresses.
func DistinctWalletAddresses(trades []model.Trade) []string {
	return distinct(trades, func(t model.Trade) string { return t.WalletAddress })
}

// DistinctEventSlugs returns the sorted unique event slugs.
func DistinctEventSlugs(trades []model.Trade) []string {
	return distinct(trades, func(t model.Trade) string { return t.EventSlug })
}

func distinct(trades []model.Trade, key func(model.Trade) string) []string {
	seen := make(map[string]struct{}, len(trades))
	out := make([]string, 0, len(trades))
	for _, t := range trades {
		k := key(t)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
