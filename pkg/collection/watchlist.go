package collection

import (
	"time"

	"github.com/poketerminal/tcg-market-gateway/pkg/catalog"
)

// Add appends a card to the watchlist. Adding a card that is already
// tracked is a no-op, not a duplicate.
func (w Watchlist) Add(card catalog.Card, at time.Time) Watchlist {
	if w.Contains(card.ID) {
		return w
	}
	next := make(Watchlist, len(w), len(w)+1)
	copy(next, w)
	return append(next, WatchlistItem{
		CardID:  card.ID,
		Card:    card,
		AddedAt: at,
	})
}

// Remove drops a card from the watchlist. Unknown ids are a no-op.
func (w Watchlist) Remove(cardID string) Watchlist {
	next := make(Watchlist, 0, len(w))
	for _, item := range w {
		if item.CardID != cardID {
			next = append(next, item)
		}
	}
	return next
}

// Contains reports whether a card is tracked.
func (w Watchlist) Contains(cardID string) bool {
	for _, item := range w {
		if item.CardID == cardID {
			return true
		}
	}
	return false
}

// SetPriceAlert sets or clears (nil) the alert threshold for a card.
func (w Watchlist) SetPriceAlert(cardID string, price *float64) Watchlist {
	next := make(Watchlist, len(w))
	copy(next, w)
	for i := range next {
		if next[i].CardID == cardID {
			next[i].PriceAlert = price
		}
	}
	return next
}

// SetNotes replaces the notes on a card.
func (w Watchlist) SetNotes(cardID, notes string) Watchlist {
	next := make(Watchlist, len(w))
	copy(next, w)
	for i := range next {
		if next[i].CardID == cardID {
			next[i].Notes = notes
		}
	}
	return next
}

// Reorder moves the item at fromIndex to toIndex, shifting the rest.
// Out-of-range indices leave the list unchanged.
func (w Watchlist) Reorder(fromIndex, toIndex int) Watchlist {
	if fromIndex < 0 || fromIndex >= len(w) || toIndex < 0 || toIndex >= len(w) {
		return w
	}

	next := make(Watchlist, len(w))
	copy(next, w)

	moved := next[fromIndex]
	next = append(next[:fromIndex], next[fromIndex+1:]...)

	tail := make(Watchlist, 0, len(w))
	tail = append(tail, next[:toIndex]...)
	tail = append(tail, moved)
	tail = append(tail, next[toIndex:]...)
	return tail
}

// Alerts returns the tracked cards whose current price has reached their
// alert threshold.
func (w Watchlist) Alerts(price PriceFunc) []WatchlistItem {
	var triggered []WatchlistItem
	for _, item := range w {
		if item.PriceAlert == nil {
			continue
		}
		current := price(item.Card)
		if current != nil && *current >= *item.PriceAlert {
			triggered = append(triggered, item)
		}
	}
	return triggered
}
