package collection

import (
	"testing"
	"time"

	"github.com/poketerminal/tcg-market-gateway/pkg/catalog"
)

func card(id string) catalog.Card {
	return catalog.Card{ID: id, Name: "Card " + id}
}

func price(v float64) *float64 { return &v }

func TestWatchlistAdd(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	var w Watchlist
	w = w.Add(card("a"), now)
	w = w.Add(card("b"), now)

	if len(w) != 2 {
		t.Fatalf("len = %d, want 2", len(w))
	}
	if !w.Contains("a") || !w.Contains("b") {
		t.Error("added cards must be tracked")
	}
	if w[0].AddedAt != now {
		t.Errorf("AddedAt = %v", w[0].AddedAt)
	}

	// Adding an already-tracked card is a no-op.
	again := w.Add(card("a"), now.Add(time.Hour))
	if len(again) != 2 {
		t.Errorf("duplicate add grew the list to %d", len(again))
	}
}

func TestWatchlistAddDoesNotMutateOriginal(t *testing.T) {
	now := time.Now()
	original := Watchlist{}.Add(card("a"), now)

	_ = original.Add(card("b"), now)
	_ = original.Remove("a")
	_ = original.SetNotes("a", "changed")

	if len(original) != 1 || original[0].Notes != "" {
		t.Errorf("original snapshot mutated: %+v", original)
	}
}

func TestWatchlistRemove(t *testing.T) {
	now := time.Now()
	w := Watchlist{}.Add(card("a"), now).Add(card("b"), now)

	w = w.Remove("a")
	if len(w) != 1 || w.Contains("a") {
		t.Errorf("remove failed: %+v", w)
	}

	// Unknown id is a no-op.
	if got := w.Remove("ghost"); len(got) != 1 {
		t.Errorf("unknown remove changed the list: %+v", got)
	}
}

func TestWatchlistPriceAlertAndNotes(t *testing.T) {
	now := time.Now()
	w := Watchlist{}.Add(card("a"), now)

	w = w.SetPriceAlert("a", price(100))
	if w[0].PriceAlert == nil || *w[0].PriceAlert != 100 {
		t.Errorf("PriceAlert = %v", w[0].PriceAlert)
	}

	w = w.SetPriceAlert("a", nil)
	if w[0].PriceAlert != nil {
		t.Error("nil should clear the alert")
	}

	w = w.SetNotes("a", "grail")
	if w[0].Notes != "grail" {
		t.Errorf("Notes = %q", w[0].Notes)
	}
}

func TestWatchlistReorder(t *testing.T) {
	now := time.Now()
	w := Watchlist{}.Add(card("a"), now).Add(card("b"), now).Add(card("c"), now)

	ids := func(w Watchlist) []string {
		out := make([]string, len(w))
		for i, item := range w {
			out[i] = item.CardID
		}
		return out
	}

	got := ids(w.Reorder(0, 2))
	if got[0] != "b" || got[1] != "c" || got[2] != "a" {
		t.Errorf("Reorder(0,2) = %v", got)
	}

	got = ids(w.Reorder(2, 0))
	if got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Errorf("Reorder(2,0) = %v", got)
	}

	// Out-of-range indices leave the order alone.
	got = ids(w.Reorder(0, 9))
	if got[0] != "a" || got[2] != "c" {
		t.Errorf("out-of-range reorder changed the list: %v", got)
	}
}

func TestWatchlistAlerts(t *testing.T) {
	now := time.Now()
	w := Watchlist{}.
		Add(card("cheap"), now).
		Add(card("rising"), now).
		Add(card("unknown"), now)
	w = w.SetPriceAlert("cheap", price(1000))
	w = w.SetPriceAlert("rising", price(50))
	w = w.SetPriceAlert("unknown", price(10))

	prices := map[string]*float64{
		"cheap":  price(20),
		"rising": price(75),
		// "unknown" has no market price
	}

	triggered := w.Alerts(func(c catalog.Card) *float64 {
		return prices[c.ID]
	})

	if len(triggered) != 1 || triggered[0].CardID != "rising" {
		t.Errorf("triggered = %+v, want only the rising card", triggered)
	}
}
