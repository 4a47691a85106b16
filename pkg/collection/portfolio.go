package collection

import (
	"github.com/poketerminal/tcg-market-gateway/pkg/catalog"
)

// Apply records a transaction against the portfolio.
//
// Buys on an existing holding merge into it and recompute the average
// cost across all copies; sells reduce the quantity without touching the
// average. A holding whose quantity reaches zero (or below) is removed
// entirely. A sell against a card that is not held is a no-op.
func (p Portfolio) Apply(card catalog.Card, tx Transaction) Portfolio {
	idx := p.index(card.ID)

	if idx < 0 {
		if tx.Type != TransactionBuy {
			return p
		}
		next := make(Portfolio, len(p), len(p)+1)
		copy(next, p)
		return append(next, PortfolioItem{
			CardID:       card.ID,
			Card:         card,
			Quantity:     tx.Quantity,
			AvgCost:      tx.Price,
			Transactions: []Transaction{tx},
		})
	}

	existing := p[idx]
	newQuantity := existing.Quantity
	if tx.Type == TransactionBuy {
		newQuantity += tx.Quantity
	} else {
		newQuantity -= tx.Quantity
	}

	if newQuantity <= 0 {
		return p.Remove(card.ID)
	}

	avgCost := existing.AvgCost
	if tx.Type == TransactionBuy {
		totalCost := existing.AvgCost*float64(existing.Quantity) + tx.Price*float64(tx.Quantity)
		avgCost = totalCost / float64(newQuantity)
	}

	next := make(Portfolio, len(p))
	copy(next, p)

	transactions := make([]Transaction, len(existing.Transactions), len(existing.Transactions)+1)
	copy(transactions, existing.Transactions)

	next[idx] = PortfolioItem{
		CardID:       existing.CardID,
		Card:         existing.Card,
		Quantity:     newQuantity,
		AvgCost:      avgCost,
		Transactions: append(transactions, tx),
	}
	return next
}

// Remove drops a holding regardless of quantity.
func (p Portfolio) Remove(cardID string) Portfolio {
	next := make(Portfolio, 0, len(p))
	for _, item := range p {
		if item.CardID != cardID {
			next = append(next, item)
		}
	}
	return next
}

// Item returns the holding for a card, nil when not held.
func (p Portfolio) Item(cardID string) *PortfolioItem {
	idx := p.index(cardID)
	if idx < 0 {
		return nil
	}
	item := p[idx]
	return &item
}

// TotalCost is the sum of average cost times quantity across holdings.
func (p Portfolio) TotalCost() float64 {
	total := 0.0
	for _, item := range p {
		total += item.AvgCost * float64(item.Quantity)
	}
	return total
}

// TotalValue prices every holding at its current market value. Cards the
// price function cannot resolve count as zero.
func (p Portfolio) TotalValue(price PriceFunc) float64 {
	total := 0.0
	for _, item := range p {
		if current := price(item.Card); current != nil {
			total += *current * float64(item.Quantity)
		}
	}
	return total
}

// TotalPnL is current value minus cost basis.
func (p Portfolio) TotalPnL(price PriceFunc) float64 {
	return p.TotalValue(price) - p.TotalCost()
}

func (p Portfolio) index(cardID string) int {
	for i, item := range p {
		if item.CardID == cardID {
			return i
		}
	}
	return -1
}
