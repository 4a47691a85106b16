package cache

import "time"

// TTLs per resource class. Longer TTLs mean fewer vendor API calls; the
// values follow how often each resource actually changes upstream.
const (
	// TTLTypes covers the static type enumeration. Types never change.
	TTLTypes = 7 * 24 * time.Hour

	// TTLSets covers set listings. New sets appear a few times a year.
	TTLSets = 7 * 24 * time.Hour

	// TTLSetDetail covers single-set lookups.
	TTLSetDetail = 24 * time.Hour

	// TTLCards covers card search results.
	TTLCards = 6 * time.Hour

	// TTLCardDetail covers single-card lookups. Vendor prices update daily.
	TTLCardDetail = 24 * time.Hour

	// DefaultTTL is used when a caller passes a zero or negative TTL.
	DefaultTTL = 5 * time.Minute
)
