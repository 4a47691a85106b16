package catalog

import (
	"sort"
	"strings"

	"github.com/poketerminal/tcg-market-gateway/pkg/ppt"
)

// variantPreference fixes the order in which variant-keyed histories are
// searched. Map iteration order is not deterministic, and the chosen
// variant decides what the UI charts, so the search must be stable across
// calls: named printings first, any others in sorted order.
var variantPreference = []string{
	ppt.VariantNormal,
	ppt.VariantHolofoil,
	ppt.VariantReverseHolofoil,
}

// extractPriceHistory pulls the Near Mint price series out of a vendor
// card and computes its percentage change.
//
// Search order: the first variant-keyed history with a non-empty Near Mint
// series, then the top-level condition-keyed Near Mint series. Cards with
// no usable history get an empty series and a deterministic fallback
// change value, so the UI shows a stable trend instead of flickering on
// every reload.
func extractPriceHistory(vendorCard *ppt.Card) ([]PricePoint, float64) {
	var series []ppt.HistoryPoint

	if ph := vendorCard.PriceHistory; ph != nil {
		for _, variant := range orderedVariants(ph.Variants) {
			nm := ph.Variants[variant][ppt.ConditionNearMint]
			if len(nm.History) > 0 {
				series = nm.History
				break
			}
		}
		if series == nil {
			if nm, ok := ph.Conditions[ppt.ConditionNearMint]; ok && len(nm.History) > 0 {
				series = nm.History
			}
		}
	}

	if len(series) == 0 {
		return nil, FallbackPriceChange(vendorCard.TCGPlayerID)
	}

	history := make([]PricePoint, len(series))
	for i, point := range series {
		history[i] = PricePoint{
			Time:  strings.SplitN(point.Date, "T", 2)[0],
			Value: point.Market,
		}
	}

	return history, priceChange(history)
}

// orderedVariants returns the variant keys in deterministic search order.
func orderedVariants(variants map[string]map[string]ppt.ConditionHistory) []string {
	if len(variants) == 0 {
		return nil
	}

	ordered := make([]string, 0, len(variants))
	seen := make(map[string]bool, len(variants))
	for _, name := range variantPreference {
		if _, ok := variants[name]; ok {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}

	rest := make([]string, 0, len(variants))
	for name := range variants {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}

// priceChange computes the percentage change between the chronologically
// first and last points. A zero or missing first value yields 0 rather
// than a division error.
func priceChange(history []PricePoint) float64 {
	if len(history) == 0 {
		return 0
	}
	first := history[0].Value
	last := history[len(history)-1].Value
	if first <= 0 || last == 0 {
		return 0
	}
	return (last - first) / first * 100
}

// FallbackPriceChange generates a deterministic pseudo-random price change
// for cards without real history. The value is derived from a 32-bit
// rolling hash of the card id, scaled to roughly -15% to +25% with a
// positive bias. Stable across calls: same id, same value.
func FallbackPriceChange(cardID string) float64 {
	var hash int32
	for _, r := range cardID {
		hash = hash<<5 - hash + int32(r)
	}
	// Widen before negating: -MinInt32 does not fit in an int32.
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	normalized := float64(abs%1000) / 1000
	return (normalized - 0.3) * 30
}
