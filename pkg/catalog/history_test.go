package catalog

import (
	"testing"

	"github.com/poketerminal/tcg-market-gateway/pkg/ppt"
)

func historyCard(id string, ph *ppt.PriceHistory) *ppt.Card {
	return &ppt.Card{TCGPlayerID: id, PriceHistory: ph}
}

func TestExtractPriceHistory_Conditions(t *testing.T) {
	card := historyCard("c1", &ppt.PriceHistory{
		Conditions: map[string]ppt.ConditionHistory{
			ppt.ConditionNearMint: {History: []ppt.HistoryPoint{
				{Date: "2025-01-01T00:00:00.000Z", Market: 100},
				{Date: "2025-02-01T00:00:00.000Z", Market: 110},
				{Date: "2025-03-01T00:00:00.000Z", Market: 120},
			}},
		},
	})

	history, change := extractPriceHistory(card)

	if len(history) != 3 {
		t.Fatalf("len(history) = %d, want 3", len(history))
	}
	if history[0].Time != "2025-01-01" {
		t.Errorf("Time = %q, want the date part only", history[0].Time)
	}
	if history[2].Value != 120 {
		t.Errorf("Value = %v", history[2].Value)
	}
	if change != 20 {
		t.Errorf("change = %v, want 20 (100 -> 120)", change)
	}
}

func TestExtractPriceHistory_VariantsBeforeConditions(t *testing.T) {
	card := historyCard("c2", &ppt.PriceHistory{
		Conditions: map[string]ppt.ConditionHistory{
			ppt.ConditionNearMint: {History: []ppt.HistoryPoint{{Date: "2025-01-01", Market: 1}}},
		},
		Variants: map[string]map[string]ppt.ConditionHistory{
			ppt.VariantHolofoil: {
				ppt.ConditionNearMint: {History: []ppt.HistoryPoint{{Date: "2025-01-01", Market: 99}}},
			},
		},
	})

	history, _ := extractPriceHistory(card)
	if len(history) != 1 || history[0].Value != 99 {
		t.Errorf("history = %+v, want the variant series to win", history)
	}
}

func TestExtractPriceHistory_VariantOrderIsDeterministic(t *testing.T) {
	// Normal outranks Holofoil even when both carry data; map iteration
	// order must never decide.
	card := historyCard("c3", &ppt.PriceHistory{
		Variants: map[string]map[string]ppt.ConditionHistory{
			ppt.VariantHolofoil: {
				ppt.ConditionNearMint: {History: []ppt.HistoryPoint{{Date: "2025-01-01", Market: 50}}},
			},
			ppt.VariantNormal: {
				ppt.ConditionNearMint: {History: []ppt.HistoryPoint{{Date: "2025-01-01", Market: 10}}},
			},
		},
	})

	for i := 0; i < 20; i++ {
		history, _ := extractPriceHistory(card)
		if len(history) != 1 || history[0].Value != 10 {
			t.Fatalf("iteration %d: history = %+v, want the Normal series", i, history)
		}
	}
}

func TestExtractPriceHistory_EmptyVariantSkipped(t *testing.T) {
	// A variant key with an empty Near Mint series must not shadow a
	// usable one further down the order.
	card := historyCard("c4", &ppt.PriceHistory{
		Variants: map[string]map[string]ppt.ConditionHistory{
			ppt.VariantNormal:   {ppt.ConditionNearMint: {History: nil}},
			ppt.VariantHolofoil: {ppt.ConditionNearMint: {History: []ppt.HistoryPoint{{Date: "2025-01-01", Market: 7}}}},
		},
	})

	history, _ := extractPriceHistory(card)
	if len(history) != 1 || history[0].Value != 7 {
		t.Errorf("history = %+v, want the Holofoil series", history)
	}
}

func TestExtractPriceHistory_NoHistoryUsesFallback(t *testing.T) {
	tests := []struct {
		name string
		card *ppt.Card
	}{
		{"nil history", historyCard("swsh4-25", nil)},
		{"empty history", historyCard("swsh4-25", &ppt.PriceHistory{})},
		{"other condition only", historyCard("swsh4-25", &ppt.PriceHistory{
			Conditions: map[string]ppt.ConditionHistory{
				ppt.ConditionDamaged: {History: []ppt.HistoryPoint{{Date: "2025-01-01", Market: 5}}},
			},
		})},
	}

	want := FallbackPriceChange("swsh4-25")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history, change := extractPriceHistory(tt.card)
			if history != nil {
				t.Errorf("history = %+v, want nil", history)
			}
			if change != want {
				t.Errorf("change = %v, want fallback %v", change, want)
			}
		})
	}
}

func TestPriceChange(t *testing.T) {
	tests := []struct {
		name    string
		history []PricePoint
		want    float64
	}{
		{"empty", nil, 0},
		{"rise", []PricePoint{{Value: 100}, {Value: 110}, {Value: 120}}, 20},
		{"fall", []PricePoint{{Value: 100}, {Value: 50}}, -50},
		{"single point", []PricePoint{{Value: 100}}, 0},
		{"zero first", []PricePoint{{Value: 0}, {Value: 50}}, 0},
		{"zero last", []PricePoint{{Value: 100}, {Value: 0}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := priceChange(tt.history); got != tt.want {
				t.Errorf("priceChange = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFallbackPriceChange(t *testing.T) {
	ids := []string{"", "a", "swsh4-25", "sv3pt5-199", "base1-4", "some-very-long-card-identifier-000"}

	for _, id := range ids {
		first := FallbackPriceChange(id)
		for i := 0; i < 10; i++ {
			if got := FallbackPriceChange(id); got != first {
				t.Fatalf("FallbackPriceChange(%q) unstable: %v vs %v", id, got, first)
			}
		}
		if first < -9.0 || first > 21.0 {
			t.Errorf("FallbackPriceChange(%q) = %v, outside [-9, 21]", id, first)
		}
	}

	if FallbackPriceChange("swsh4-25") == FallbackPriceChange("swsh4-26") {
		t.Error("distinct ids should rarely collide; these two must not")
	}
}
