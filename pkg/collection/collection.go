// Package collection manages the user's watchlist and portfolio.
//
// All mutations are pure functions over immutable snapshots: they take a
// value, return a new value and never touch shared state. Persistence is a
// separate concern behind the Repository interface, so callers decide when
// a mutated snapshot becomes durable. Pricing is injected as a function,
// keeping the package free of any vendor coupling.
package collection

import (
	"time"

	"github.com/google/uuid"

	"github.com/poketerminal/tcg-market-gateway/pkg/catalog"
)

// TransactionBuy and TransactionSell are the two transaction kinds.
const (
	TransactionBuy  = "buy"
	TransactionSell = "sell"
)

// Transaction is one buy or sell event recorded against a holding.
type Transaction struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes,omitempty"`
}

// NewTransaction builds a transaction stamped with a fresh id and the
// current time. Kept separate from Apply so the mutation itself stays
// deterministic and testable.
func NewTransaction(txType string, quantity int, price float64, notes string) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Type:     txType,
		Quantity: quantity,
		Price:    price,
		Date:     time.Now().UTC(),
		Notes:    notes,
	}
}

// WatchlistItem is one tracked card.
type WatchlistItem struct {
	CardID     string       `json:"cardId"`
	Card       catalog.Card `json:"card"`
	AddedAt    time.Time    `json:"addedAt"`
	PriceAlert *float64     `json:"priceAlert,omitempty"`
	Notes      string       `json:"notes,omitempty"`
}

// Watchlist is an ordered snapshot of tracked cards.
type Watchlist []WatchlistItem

// PortfolioItem is one holding: a card, its quantity, the average cost
// paid per copy, and the transactions behind those numbers.
type PortfolioItem struct {
	CardID       string        `json:"cardId"`
	Card         catalog.Card  `json:"card"`
	Quantity     int           `json:"quantity"`
	AvgCost      float64       `json:"avgCost"`
	Transactions []Transaction `json:"transactions"`
}

// Portfolio is a snapshot of all holdings.
type Portfolio []PortfolioItem

// PriceFunc resolves the current market price of a card. Returning nil
// means no price is known; valuations count such cards at zero.
type PriceFunc func(card catalog.Card) *float64
