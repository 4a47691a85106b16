package catalog

import (
	"strconv"
	"strings"

	"github.com/poketerminal/tcg-market-gateway/pkg/ppt"
)

// TransformSet builds the canonical form of a vendor set: series derived
// from the display name, artwork resolved through the set identity table,
// release date normalized to YYYY/MM/DD.
func TransformSet(vendorSet ppt.Set) Set {
	return Set{
		ID:           vendorSet.TCGPlayerID,
		Name:         vendorSet.Name,
		Series:       SeriesFor(vendorSet.Name),
		PrintedTotal: vendorSet.CardCount,
		Total:        vendorSet.CardCount,
		ReleaseDate:  normalizeReleaseDate(vendorSet.ReleaseDate),
		UpdatedAt:    vendorSet.UpdatedAt,
		Images:       ImageURLs(vendorSet.TCGPlayerID),
	}
}

// TransformSets filters the vendor catalog through the allow-list and maps
// the survivors. Count and pagination metadata reflect the post-filter
// list, not the raw vendor count; callers paginate the materialized result
// themselves.
func TransformSets(vendorSets []ppt.Set) SetsPage {
	included := make([]Set, 0, len(vendorSets))
	for _, vendorSet := range vendorSets {
		if !ShouldIncludeSet(vendorSet.Name) {
			continue
		}
		included = append(included, TransformSet(vendorSet))
	}

	return SetsPage{
		Data:       included,
		Page:       1,
		PageSize:   len(included),
		Count:      len(included),
		TotalCount: len(included),
	}
}

// TransformCard builds the canonical form of a vendor card. The transform
// is total: any missing nested field degrades to its zero or absent form.
func TransformCard(vendorCard *ppt.Card) Card {
	history, priceChange := extractPriceHistory(vendorCard)

	card := Card{
		ID:           vendorCard.TCGPlayerID,
		Name:         cleanCardName(vendorCard.Name),
		Supertype:    determineSupertype(vendorCard.CardType, vendorCard.Name),
		Set:          buildCardSet(vendorCard),
		Number:       vendorCard.CardNumber,
		Rarity:       vendorCard.Rarity,
		Images:       cardImages(vendorCard),
		TCGPlayer:    tcgPlayerData(vendorCard),
		PriceChange:  priceChange,
		PriceHistory: history,
	}

	if vendorCard.HP != nil {
		card.HP = strconv.Itoa(*vendorCard.HP)
	}
	if vendorCard.Artist != nil && *vendorCard.Artist != "" {
		card.Artist = *vendorCard.Artist
	}

	// The vendor overloads cardType: energy type for Pokémon, class label
	// for everything else. Only the former becomes a type list.
	if t := vendorCard.CardType; t != "" && t != "Trainer" && t != "Energy" && t != "Pokemon" {
		card.Types = []string{t}
	}

	for _, attack := range vendorCard.Attacks {
		card.Attacks = append(card.Attacks, Attack{
			Name:                attack.Name,
			Cost:                attack.Cost,
			ConvertedEnergyCost: len(attack.Cost),
			Damage:              attack.Damage,
			Text:                attack.Text,
		})
	}

	card.Weaknesses = typeValueList(vendorCard.Weakness, "x2")
	card.Resistances = typeValueList(vendorCard.Resistance, "-30")

	if rc := vendorCard.RetreatCost; rc != nil {
		card.ConvertedRetreatCost = rc
		if *rc > 0 {
			cost := make([]string, *rc)
			for i := range cost {
				cost[i] = "Colorless"
			}
			card.RetreatCost = cost
		}
	}

	return card
}

// TransformCards wraps a vendor card search into the canonical page
// envelope. Page number is derived from the vendor's offset/limit; counts
// are vendor-reported.
func TransformCards(vendorCards []ppt.Card, meta ppt.ListMeta) CardsPage {
	page := 1
	if meta.Limit > 0 {
		page = meta.Offset/meta.Limit + 1
	}

	cards := make([]Card, 0, len(vendorCards))
	for i := range vendorCards {
		cards = append(cards, TransformCard(&vendorCards[i]))
	}

	return CardsPage{
		Data:       cards,
		Page:       page,
		PageSize:   meta.Limit,
		Count:      meta.Count,
		TotalCount: meta.Total,
	}
}

// cleanCardName strips the vendor's " - <set suffix>" decoration.
func cleanCardName(name string) string {
	return strings.SplitN(name, " - ", 2)[0]
}

// determineSupertype classifies a card as Trainer, Energy or Pokémon:
// exact cardType match first, then name substring, then the default.
func determineSupertype(cardType, name string) string {
	lowerType := strings.ToLower(cardType)
	lowerName := strings.ToLower(name)

	if lowerType == "trainer" || strings.Contains(lowerName, "trainer") {
		return SupertypeTrainer
	}
	if lowerType == "energy" || strings.Contains(lowerName, "energy") {
		return SupertypeEnergy
	}
	return SupertypePokemon
}

// typeValueList converts a vendor weakness/resistance into canonical form.
// The vendor sentinel "None" (and an empty type) means absent. A missing
// value gets the conventional default for its kind.
func typeValueList(tv *ppt.TypeValue, defaultValue string) []TypeValue {
	if tv == nil || tv.Type == "" || tv.Type == "None" {
		return nil
	}
	value := defaultValue
	if tv.Value != nil && *tv.Value != "" {
		value = *tv.Value
	}
	return []TypeValue{{Type: tv.Type, Value: value}}
}

// buildCardSet rebuilds set info from the fields embedded on the card
// payload rather than a separate lookup. Cards without a set slug derive
// one from the set name.
func buildCardSet(vendorCard *ppt.Card) Set {
	setID := vendorCard.SetTCGPlayerID
	if setID == "" {
		setID = DeriveSetID(vendorCard.SetName)
	}

	cardCount := 0
	if vendorCard.SetCardCount != nil {
		cardCount = *vendorCard.SetCardCount
	}

	return Set{
		ID:           setID,
		Name:         vendorCard.SetName,
		Series:       SeriesFor(vendorCard.SetName),
		PrintedTotal: cardCount,
		Total:        cardCount,
		ReleaseDate:  normalizeReleaseDate(vendorCard.SetReleaseDate),
		UpdatedAt:    vendorCard.UpdatedAt,
		Images:       ImageURLs(setID),
	}
}

// cardImages picks artwork with documented fallback precedence: the CDN
// rendition closest to the display size first, then the vendor's raw image
// URL, then empty.
func cardImages(vendorCard *ppt.Card) CardImages {
	small := vendorCard.ImageCDNURL200
	if small == "" {
		small = vendorCard.ImageURL
	}

	large := vendorCard.ImageCDNURL800
	if large == "" {
		large = vendorCard.ImageCDNURL400
	}
	if large == "" {
		large = vendorCard.ImageURL
	}

	return CardImages{Small: small, Large: large}
}

// conditionPrice returns the price for one grading condition, nil when the
// condition is absent. Absent is nil, never zero.
func conditionPrice(conditions map[string]ppt.ConditionPrice, condition string) *float64 {
	cp, ok := conditions[condition]
	if !ok {
		return nil
	}
	price := cp.Price
	return &price
}

// variantPriceData maps one vendor variant's per-condition prices onto the
// fixed five-slot breakdown. The slot assignment is fixed:
// Damaged=low, Moderately Played=mid, Near Mint=high,
// Lightly Played=directLow.
func variantPriceData(conditions map[string]ppt.ConditionPrice, market *float64) *PriceData {
	return &PriceData{
		Low:       conditionPrice(conditions, ppt.ConditionDamaged),
		Mid:       conditionPrice(conditions, ppt.ConditionModeratelyPlayed),
		High:      conditionPrice(conditions, ppt.ConditionNearMint),
		Market:    market,
		DirectLow: conditionPrice(conditions, ppt.ConditionLightlyPlayed),
	}
}

// tcgPlayerData builds the canonical pricing block. The normal breakdown
// is always present; holofoil variants appear only when the vendor payload
// included them; the adapter never synthesizes a variant.
func tcgPlayerData(vendorCard *ppt.Card) TCGPlayerData {
	prices := vendorCard.Prices

	data := TCGPlayerData{
		URL:       vendorCard.TCGPlayerURL,
		UpdatedAt: prices.LastUpdated,
		Prices: TCGPlayerPrices{
			Normal: variantPriceData(prices.Conditions, prices.Market),
		},
	}
	if data.UpdatedAt == "" {
		data.UpdatedAt = vendorCard.UpdatedAt
	}

	if holo, ok := prices.Variants[ppt.VariantHolofoil]; ok {
		market := conditionPrice(holo, ppt.ConditionNearMint)
		if market == nil {
			market = prices.Market
		}
		data.Prices.Holofoil = variantPriceData(holo, market)
	}
	if reverse, ok := prices.Variants[ppt.VariantReverseHolofoil]; ok {
		data.Prices.ReverseHolofoil = variantPriceData(reverse, conditionPrice(reverse, ppt.ConditionNearMint))
	}

	return data
}

// normalizeReleaseDate converts a vendor timestamp to the YYYY/MM/DD
// display form. Empty input stays empty.
func normalizeReleaseDate(date string) string {
	date = strings.SplitN(date, "T", 2)[0]
	return strings.ReplaceAll(date, "-", "/")
}
