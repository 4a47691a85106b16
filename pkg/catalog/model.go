// Package catalog defines the application's canonical card/set model and
// the adapter that builds it from raw vendor payloads.
//
// Canonical values are plain value objects: constructed fresh on every
// transform, never mutated, no identity beyond field equality. The adapter
// is total by construction: a partial vendor payload degrades field by
// field, it never produces an error or a panic.
package catalog

// Supertype is the fixed three-way card classification.
const (
	SupertypePokemon = "Pokémon"
	SupertypeTrainer = "Trainer"
	SupertypeEnergy  = "Energy"
)

// PokemonTypes is the static enumeration served by the types endpoint.
// The list never changes, so it lives here rather than behind a vendor
// call.
var PokemonTypes = []string{
	"Colorless",
	"Darkness",
	"Dragon",
	"Fairy",
	"Fighting",
	"Fire",
	"Grass",
	"Lightning",
	"Metal",
	"Psychic",
	"Water",
}

// Set is the canonical set representation.
type Set struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Series       string    `json:"series"`
	PrintedTotal int       `json:"printedTotal"`
	Total        int       `json:"total"`
	ReleaseDate  string    `json:"releaseDate"`
	UpdatedAt    string    `json:"updatedAt"`
	Images       SetImages `json:"images"`
}

// SetImages holds resolved set artwork URLs. Unresolved images are empty
// strings, never null, so renderers need no nil checks.
type SetImages struct {
	Symbol string `json:"symbol"`
	Logo   string `json:"logo"`
}

// CardImages holds card artwork URLs.
type CardImages struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

// Attack is a canonical attack entry.
type Attack struct {
	Name                string   `json:"name"`
	Cost                []string `json:"cost"`
	ConvertedEnergyCost int      `json:"convertedEnergyCost"`
	Damage              string   `json:"damage"`
	Text                string   `json:"text"`
}

// TypeValue is a canonical weakness or resistance entry. Present only when
// the vendor value was not the "None" sentinel.
type TypeValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// PriceData is the fixed five-slot price breakdown for one variant. Absent
// conditions are nil, never zero.
type PriceData struct {
	Low       *float64 `json:"low"`
	Mid       *float64 `json:"mid"`
	High      *float64 `json:"high"`
	Market    *float64 `json:"market"`
	DirectLow *float64 `json:"directLow"`
}

// TCGPlayerPrices holds per-variant breakdowns. Normal is always present;
// holofoil variants appear only when the vendor payload included them.
type TCGPlayerPrices struct {
	Normal          *PriceData `json:"normal,omitempty"`
	Holofoil        *PriceData `json:"holofoil,omitempty"`
	ReverseHolofoil *PriceData `json:"reverseHolofoil,omitempty"`
}

// TCGPlayerData is the canonical pricing block.
type TCGPlayerData struct {
	URL       string          `json:"url"`
	UpdatedAt string          `json:"updatedAt"`
	Prices    TCGPlayerPrices `json:"prices"`
}

// PricePoint is a single (date, price) sample in a card's history.
type PricePoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// Card is the canonical card representation.
type Card struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Supertype            string        `json:"supertype"`
	HP                   string        `json:"hp,omitempty"`
	Types                []string      `json:"types,omitempty"`
	Attacks              []Attack      `json:"attacks,omitempty"`
	Weaknesses           []TypeValue   `json:"weaknesses,omitempty"`
	Resistances          []TypeValue   `json:"resistances,omitempty"`
	RetreatCost          []string      `json:"retreatCost,omitempty"`
	ConvertedRetreatCost *int          `json:"convertedRetreatCost,omitempty"`
	Set                  Set           `json:"set"`
	Number               string        `json:"number"`
	Artist               string        `json:"artist,omitempty"`
	Rarity               string        `json:"rarity,omitempty"`
	Images               CardImages    `json:"images"`
	TCGPlayer            TCGPlayerData `json:"tcgplayer"`
	PriceChange          float64       `json:"priceChange"`
	PriceHistory         []PricePoint  `json:"priceHistory,omitempty"`
}

// CardsPage is a paginated slice of canonical cards.
type CardsPage struct {
	Data       []Card `json:"data"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	Count      int    `json:"count"`
	TotalCount int    `json:"totalCount"`
}

// SetsPage is a paginated slice of canonical sets.
type SetsPage struct {
	Data       []Set `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Count      int   `json:"count"`
	TotalCount int   `json:"totalCount"`
}
