package ppt

import (
	"net/url"
	"strconv"
)

// Days of price history requested from the vendor. The pro tier supports up
// to a year; illiquid cards need the full window to show any trend at all.
const historyDays = 365

// CardQuery describes a vendor /cards search. Zero values are omitted from
// the request.
type CardQuery struct {
	Search    string
	Set       string
	Rarity    string
	CardType  string
	MinPrice  string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Values renders the query as vendor request parameters.
//
// The vendor rejects unfiltered requests: at least one of search, set,
// rarity, cardType or minPrice must be present. When the caller supplied
// none, minPrice=0 is added as a permissive default. Unsorted queries
// default to price descending. Price history is always requested so the
// adapter can compute real price changes.
func (q CardQuery) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Set != "" {
		v.Set("set", q.Set)
	}
	if q.Rarity != "" {
		v.Set("rarity", q.Rarity)
	}
	if q.CardType != "" {
		v.Set("cardType", q.CardType)
	}
	if q.MinPrice != "" {
		v.Set("minPrice", q.MinPrice)
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", q.SortOrder)
	}

	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("offset", strconv.Itoa(q.Offset))
	v.Set("includeHistory", "true")
	v.Set("days", strconv.Itoa(historyDays))

	if q.Search == "" && q.Set == "" && q.Rarity == "" && q.CardType == "" && q.MinPrice == "" {
		v.Set("minPrice", "0")
	}
	if q.SortBy == "" {
		v.Set("sortBy", "price")
		v.Set("sortOrder", "desc")
	}
	return v
}

// CacheParams flattens the effective vendor parameters into the map shape
// the cache key builder takes. Keying on the effective request (defaults
// included) means two queries that hit the vendor identically share a cache
// entry.
func (q CardQuery) CacheParams() map[string]string {
	values := q.Values()
	params := make(map[string]string, len(values))
	for name := range values {
		params[name] = values.Get(name)
	}
	return params
}
