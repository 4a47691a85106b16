// Package ppt implements the HTTP client for the PokemonPriceTracker
// pricing API (v2) together with the raw response shapes it returns.
//
// The vendor payload is loosely typed and deeply nested; every field that
// can be absent is a pointer, a map or a slice so that partial payloads
// decode without error. The adapter in pkg/catalog is responsible for
// turning these shapes into the application's canonical model.
package ppt

// Condition labels used by the vendor's per-grading price breakdown.
const (
	ConditionNearMint         = "Near Mint"
	ConditionLightlyPlayed    = "Lightly Played"
	ConditionModeratelyPlayed = "Moderately Played"
	ConditionHeavilyPlayed    = "Heavily Played"
	ConditionDamaged          = "Damaged"
)

// Variant labels used by the vendor's per-printing breakdowns.
const (
	VariantNormal          = "Normal"
	VariantHolofoil        = "Holofoil"
	VariantReverseHolofoil = "Reverse Holofoil"
)

// Set is a vendor set record.
type Set struct {
	ID          string `json:"id"`
	TCGPlayerID string `json:"tcgPlayerId"`
	Name        string `json:"name"`
	Series      string `json:"series"`
	ReleaseDate string `json:"releaseDate"`
	CardCount   int    `json:"cardCount"`
	ImageURL    string `json:"imageUrl"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Card is a vendor card record.
type Card struct {
	ID             string        `json:"id"`
	TCGPlayerID    string        `json:"tcgPlayerId"`
	SetID          string        `json:"setId"`
	SetTCGPlayerID string        `json:"setTcgPlayerId,omitempty"`
	SetName        string        `json:"setName"`
	SetCardCount   *int          `json:"setCardCount,omitempty"`
	SetReleaseDate string        `json:"setReleaseDate,omitempty"`
	Name           string        `json:"name"`
	CardNumber     string        `json:"cardNumber"`
	Rarity         string        `json:"rarity"`
	CardType       string        `json:"cardType"`
	HP             *int          `json:"hp,omitempty"`
	Stage          string        `json:"stage,omitempty"`
	Attacks        []Attack      `json:"attacks,omitempty"`
	Weakness       *TypeValue    `json:"weakness,omitempty"`
	Resistance     *TypeValue    `json:"resistance,omitempty"`
	RetreatCost    *int          `json:"retreatCost,omitempty"`
	Artist         *string       `json:"artist,omitempty"`
	TCGPlayerURL   string        `json:"tcgPlayerUrl"`
	Prices         Prices        `json:"prices"`
	PriceHistory   *PriceHistory `json:"priceHistory,omitempty"`
	ImageURL       string        `json:"imageUrl"`
	ImageCDNURL200 string        `json:"imageCdnUrl200,omitempty"`
	ImageCDNURL400 string        `json:"imageCdnUrl400,omitempty"`
	ImageCDNURL800 string        `json:"imageCdnUrl800,omitempty"`
	CreatedAt      string        `json:"createdAt"`
	UpdatedAt      string        `json:"updatedAt"`
}

// Attack is a single vendor attack entry.
type Attack struct {
	Cost   []string `json:"cost"`
	Name   string   `json:"name"`
	Damage string   `json:"damage"`
	Text   string   `json:"text,omitempty"`
}

// TypeValue is the vendor's weakness/resistance pair. Type carries the
// sentinel "None" when the card has no such modifier; Value may be null
// even when Type is set.
type TypeValue struct {
	Type  string  `json:"type"`
	Value *string `json:"value"`
}

// ConditionPrice is the price for one grading condition.
type ConditionPrice struct {
	Price    float64 `json:"price"`
	Listings int     `json:"listings"`
}

// Prices is the vendor's nested price object: a primary market value plus
// optional per-condition and per-variant breakdowns.
type Prices struct {
	Market      *float64                             `json:"market"`
	Listings    *int                                 `json:"listings,omitempty"`
	Conditions  map[string]ConditionPrice            `json:"conditions,omitempty"`
	Variants    map[string]map[string]ConditionPrice `json:"variants,omitempty"`
	LastUpdated string                               `json:"lastUpdated,omitempty"`
}

// HistoryPoint is a single (date, market price) sample.
type HistoryPoint struct {
	Date   string  `json:"date"`
	Market float64 `json:"market"`
	Volume *int    `json:"volume,omitempty"`
}

// ConditionHistory is the chronological price series for one condition.
type ConditionHistory struct {
	History     []HistoryPoint `json:"history"`
	DataPoints  int            `json:"dataPoints,omitempty"`
	LatestPrice float64        `json:"latestPrice,omitempty"`
	LatestDate  string         `json:"latestDate,omitempty"`
}

// PriceHistory holds price series keyed by condition and/or by
// variant+condition. Either nesting (or both, or neither) may be present.
type PriceHistory struct {
	Conditions map[string]ConditionHistory            `json:"conditions,omitempty"`
	Variants   map[string]map[string]ConditionHistory `json:"variants,omitempty"`
}

// ListMeta is the pagination metadata on vendor list responses.
type ListMeta struct {
	Total   int  `json:"total"`
	Count   int  `json:"count"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore,omitempty"`
}

// SetsResponse is the vendor /sets response.
type SetsResponse struct {
	Data     []Set     `json:"data"`
	Metadata *ListMeta `json:"metadata,omitempty"`
}

// CardsResponse is the vendor /cards response.
type CardsResponse struct {
	Data     []Card   `json:"data"`
	Metadata ListMeta `json:"metadata"`
}
