package catalog

import (
	"regexp"
	"strings"
)

// SeriesRule classifies a set display name into an era/series bucket.
type SeriesRule struct {
	Pattern *regexp.Regexp
	Series  string
}

// seriesRules is evaluated in order, first match wins. Order is
// load-bearing: specific special-set names must be checked before the
// generic era prefixes that would also match them. Reordering changes
// classification output.
var seriesRules = []SeriesRule{
	// Mega Evolution sets belong to the Scarlet & Violet era.
	{regexp.MustCompile(`(?i)^ME\d{2}:`), "Scarlet & Violet"},
	{regexp.MustCompile(`(?i)^SV\d{2}:`), "Scarlet & Violet"},
	{regexp.MustCompile(`(?i)^SV:`), "Scarlet & Violet"},
	{regexp.MustCompile(`(?i)^SWSH\d{2}:`), "Sword & Shield"},
	{regexp.MustCompile(`(?i)Crown Zenith`), "Sword & Shield"},
	{regexp.MustCompile(`(?i)Shining Fates`), "Sword & Shield"},
	{regexp.MustCompile(`(?i)Champion's Path`), "Sword & Shield"},
	{regexp.MustCompile(`(?i)Hidden Fates`), "Sword & Shield"},
	{regexp.MustCompile(`(?i)^SM\s`), "Sun & Moon"},
	{regexp.MustCompile(`(?i)Dragon Majesty`), "Sun & Moon"},
	{regexp.MustCompile(`(?i)Shining Legends`), "Sun & Moon"},
	{regexp.MustCompile(`(?i)Detective Pikachu`), "Sun & Moon"},
	{regexp.MustCompile(`(?i)^XY\s*-`), "XY"},
	{regexp.MustCompile(`(?i)^XY Base Set`), "XY"},
	{regexp.MustCompile(`(?i)^Generations`), "XY"},
	{regexp.MustCompile(`(?i)^BW\d{2}:`), "Black & White"},
	{regexp.MustCompile(`(?i)Noble Victories`), "Black & White"},
	{regexp.MustCompile(`(?i)Dragons Exalted`), "Black & White"},
	{regexp.MustCompile(`(?i)Legendary Treasures`), "Black & White"},
	{regexp.MustCompile(`(?i)^HGSS`), "HeartGold & SoulSilver"},
	{regexp.MustCompile(`(?i)Undaunted`), "HeartGold & SoulSilver"},
	{regexp.MustCompile(`(?i)Unleashed`), "HeartGold & SoulSilver"},
	{regexp.MustCompile(`(?i)Triumphant`), "HeartGold & SoulSilver"},
	{regexp.MustCompile(`(?i)Platinum`), "Platinum"},
	{regexp.MustCompile(`(?i)Arceus`), "Platinum"},
	{regexp.MustCompile(`(?i)^Neo `), "Neo"},
	{regexp.MustCompile(`(?i)Expedition`), "E-Card"},
	{regexp.MustCompile(`(?i)Aquapolis`), "E-Card"},
	{regexp.MustCompile(`(?i)Skyridge`), "E-Card"},
	{regexp.MustCompile(`(?i)^Gym `), "Gym"},
	{regexp.MustCompile(`(?i)^Base Set`), "Base Set"},
	{regexp.MustCompile(`(?i)^Jungle$`), "Base Set"},
	{regexp.MustCompile(`(?i)^Fossil$`), "Base Set"},
	{regexp.MustCompile(`(?i)^Team Rocket$`), "Base Set"},
	{regexp.MustCompile(`(?i)Celebrations`), "Special"},
	{regexp.MustCompile(`(?i)Battle Academy`), "Special"},
	{regexp.MustCompile(`(?i)Trainer Gallery`), "Special"},
	{regexp.MustCompile(`(?i)Galarian Gallery`), "Special"},
	{regexp.MustCompile(`(?i)Shiny Vault`), "Special"},
	{regexp.MustCompile(`(?i)Radiant Collection`), "Special"},
}

// SeriesFor derives the era/series label from a set display name. Names
// matching no rule fall into the "Other" bucket.
func SeriesFor(name string) string {
	for _, rule := range seriesRules {
		if rule.Pattern.MatchString(name) {
			return rule.Series
		}
	}
	return "Other"
}

// allowedSetPatterns is the curation allow-list: only main expansions and a
// handful of special sets people actually track. The vendor catalog also
// carries oddly-named regional/promo variants that the product does not
// surface. Matching is unordered; any hit includes the set.
var allowedSetPatterns = []*regexp.Regexp{
	// Scarlet & Violet era
	regexp.MustCompile(`(?i)^SV\d{2}:`),
	regexp.MustCompile(`(?i)^ME\d{2}:`),
	regexp.MustCompile(`(?i)^SV: Prismatic`),
	regexp.MustCompile(`(?i)^SV: Shrouded`),
	regexp.MustCompile(`(?i)^SV: Paldean`),
	regexp.MustCompile(`(?i)^SV: Scarlet & Violet 151`),
	regexp.MustCompile(`(?i)^SV: Black Bolt`),
	regexp.MustCompile(`(?i)^SV: White Flare`),
	// Sword & Shield era
	regexp.MustCompile(`(?i)^SWSH\d{2}:`),
	regexp.MustCompile(`(?i)Crown Zenith`),
	regexp.MustCompile(`(?i)Shining Fates`),
	regexp.MustCompile(`(?i)Champion's Path`),
	regexp.MustCompile(`(?i)Hidden Fates`),
	// Sun & Moon era
	regexp.MustCompile(`(?i)^SM\s`),
	regexp.MustCompile(`(?i)Dragon Majesty`),
	regexp.MustCompile(`(?i)Shining Legends`),
	regexp.MustCompile(`(?i)Detective Pikachu`),
	// XY era
	regexp.MustCompile(`(?i)^XY\s*-`),
	regexp.MustCompile(`(?i)Generations$`),
	// Black & White era
	regexp.MustCompile(`(?i)^BW\d{2}:`),
	regexp.MustCompile(`(?i)Noble Victories`),
	regexp.MustCompile(`(?i)Dragons Exalted`),
	regexp.MustCompile(`(?i)Legendary Treasures$`),
	// HeartGold SoulSilver
	regexp.MustCompile(`(?i)^HGSS`),
	regexp.MustCompile(`(?i)Undaunted`),
	regexp.MustCompile(`(?i)Unleashed`),
	regexp.MustCompile(`(?i)Triumphant`),
	// Diamond & Pearl / Platinum
	regexp.MustCompile(`(?i)^DP\d`),
	regexp.MustCompile(`(?i)Platinum`),
	regexp.MustCompile(`(?i)Arceus`),
	// Classics
	regexp.MustCompile(`(?i)^Base Set$`),
	regexp.MustCompile(`(?i)^Base Set \(Shadowless\)`),
	regexp.MustCompile(`(?i)^Base Set 2$`),
	regexp.MustCompile(`(?i)^Jungle$`),
	regexp.MustCompile(`(?i)^Fossil$`),
	regexp.MustCompile(`(?i)^Team Rocket$`),
	regexp.MustCompile(`(?i)^XY Base Set$`),
	regexp.MustCompile(`(?i)^SM Base Set$`),
	regexp.MustCompile(`(?i)^Gym Heroes$`),
	regexp.MustCompile(`(?i)^Gym Challenge$`),
	regexp.MustCompile(`(?i)^Neo Genesis$`),
	regexp.MustCompile(`(?i)^Neo Discovery$`),
	regexp.MustCompile(`(?i)^Neo Revelation$`),
	regexp.MustCompile(`(?i)^Neo Destiny$`),
	regexp.MustCompile(`(?i)^Expedition$`),
	regexp.MustCompile(`(?i)^Aquapolis$`),
	regexp.MustCompile(`(?i)^Skyridge$`),
	// Special sets people care about
	regexp.MustCompile(`(?i)Celebrations`),
	regexp.MustCompile(`(?i)Battle Academy`),
	regexp.MustCompile(`(?i)Radiant Collection`),
	regexp.MustCompile(`(?i)Trainer Gallery`),
	regexp.MustCompile(`(?i)Galarian Gallery`),
	regexp.MustCompile(`(?i)Shiny Vault`),
}

// ShouldIncludeSet reports whether a vendor set is exposed at all. Sets
// matching no allow-list pattern are silently dropped from every listing.
func ShouldIncludeSet(name string) bool {
	for _, pattern := range allowedSetPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

var (
	slugStrip    = regexp.MustCompile(`[:']`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugHyphens  = regexp.MustCompile(`-+`)
	slugTrimEdge = regexp.MustCompile(`^-|-$`)
)

// DeriveSetID derives a vendor-style set slug from a set display name, for
// cards whose payload carries no set slug of its own.
//
//	"ME02: Phantasmal Flames"     => "me02-phantasmal-flames"
//	"SV: Prismatic Evolutions"    => "sv-prismatic-evolutions"
//
// The derivation is deterministic: the same name always yields the same
// slug, and the result never contains colons, apostrophes, ampersands,
// repeated hyphens or edge hyphens.
func DeriveSetID(name string) string {
	s := strings.ToLower(name)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&", "and")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	s = slugTrimEdge.ReplaceAllString(s, "")
	return s
}
