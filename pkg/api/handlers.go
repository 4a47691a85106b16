package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/poketerminal/tcg-market-gateway/pkg/cache"
	"github.com/poketerminal/tcg-market-gateway/pkg/catalog"
	"github.com/poketerminal/tcg-market-gateway/pkg/ppt"
)

// setsFetchLimit covers the full vendor set catalog in one page. The
// curated listing is paginated locally, so the vendor call always asks for
// everything.
const setsFetchLimit = 250

const (
	defaultCardsPageSize = 24
	defaultSetsPageSize  = 100
)

// detail is the single-entity response envelope.
type detail[T any] struct {
	Data T `json:"data"`
}

// handleCards serves the card search. The cache key is built from the
// effective vendor parameters, so clients spelling the same query through
// different aliases share one entry.
func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	q := cardQueryFromRequest(r)
	key := cache.Key("ppt:cards", q.CacheParams())

	page, err := cache.GetOrSet(r.Context(), s.store, key, cache.TTLCards,
		func(ctx context.Context) (catalog.CardsPage, error) {
			resp, err := s.client.FetchCards(ctx, q)
			if err != nil {
				return catalog.CardsPage{}, err
			}
			return catalog.TransformCards(resp.Data, resp.Metadata), nil
		})
	if err != nil {
		s.writeError(w, r, "Failed to fetch cards", err)
		return
	}

	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleCardByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	key := "ppt:card:" + id

	card, err := cache.GetOrSet(r.Context(), s.store, key, cache.TTLCardDetail,
		func(ctx context.Context) (catalog.Card, error) {
			vendorCard, err := s.client.FetchCardByID(ctx, id)
			if err != nil {
				return catalog.Card{}, err
			}
			return catalog.TransformCard(vendorCard), nil
		})
	if err != nil {
		s.writeError(w, r, "Failed to fetch card", err)
		return
	}

	s.writeJSON(w, http.StatusOK, detail[catalog.Card]{Data: card})
}

// handleSets serves the curated set listing. The vendor cannot paginate
// the allow-list-filtered view, so the full catalog is fetched, filtered
// and sliced locally; the cache key carries the local page coordinates.
func (s *Server) handleSets(w http.ResponseWriter, r *http.Request) {
	pageNum := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", defaultSetsPageSize)

	key := cache.Key("ppt:sets", map[string]string{
		"page":     strconv.Itoa(pageNum),
		"pageSize": strconv.Itoa(pageSize),
	})

	page, err := cache.GetOrSet(r.Context(), s.store, key, cache.TTLSets,
		func(ctx context.Context) (catalog.SetsPage, error) {
			resp, err := s.client.FetchSets(ctx, setsFetchLimit)
			if err != nil {
				return catalog.SetsPage{}, err
			}
			all := catalog.TransformSets(resp.Data)
			return sliceSetsPage(all, pageNum, pageSize), nil
		})
	if err != nil {
		s.writeError(w, r, "Failed to fetch sets", err)
		return
	}

	s.writeJSON(w, http.StatusOK, page)
}

// handleSetByID resolves one set by its vendor slug or internal id. The
// vendor has no per-set endpoint, so the full catalog is scanned. A miss
// (or a set outside the allow-list) surfaces as the generic failure.
func (s *Server) handleSetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	key := "ppt:set:" + id

	set, err := cache.GetOrSet(r.Context(), s.store, key, cache.TTLSetDetail,
		func(ctx context.Context) (catalog.Set, error) {
			resp, err := s.client.FetchSets(ctx, setsFetchLimit)
			if err != nil {
				return catalog.Set{}, err
			}
			for _, vendorSet := range resp.Data {
				if vendorSet.TCGPlayerID != id && vendorSet.ID != id {
					continue
				}
				if !catalog.ShouldIncludeSet(vendorSet.Name) {
					break
				}
				return catalog.TransformSet(vendorSet), nil
			}
			return catalog.Set{}, ppt.ErrNotFound
		})
	if err != nil {
		s.writeError(w, r, "Failed to fetch set", err)
		return
	}

	s.writeJSON(w, http.StatusOK, detail[catalog.Set]{Data: set})
}

// handleTypes serves the static type enumeration. No vendor call, no
// caching.
func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, detail[[]string]{Data: catalog.PokemonTypes})
}

// cardQueryFromRequest maps the inbound search parameters onto the vendor
// query. Several aliases are accepted for historical reasons; the first
// non-empty one wins.
func cardQueryFromRequest(r *http.Request) ppt.CardQuery {
	params := r.URL.Query()
	first := func(names ...string) string {
		for _, name := range names {
			if v := params.Get(name); v != "" {
				return v
			}
		}
		return ""
	}

	pageNum := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", defaultCardsPageSize)

	return ppt.CardQuery{
		Search:    first("q", "name", "search"),
		Set:       first("set", "setId"),
		Rarity:    params.Get("rarity"),
		CardType:  first("types", "cardType"),
		MinPrice:  params.Get("minPrice"),
		SortBy:    params.Get("sortBy"),
		SortOrder: params.Get("sortOrder"),
		Limit:     pageSize,
		Offset:    (pageNum - 1) * pageSize,
	}
}

// sliceSetsPage applies local pagination to the materialized filtered
// list. Out-of-range pages yield an empty data slice, not an error.
func sliceSetsPage(all catalog.SetsPage, pageNum, pageSize int) catalog.SetsPage {
	start := (pageNum - 1) * pageSize
	end := start + pageSize
	if start > len(all.Data) {
		start = len(all.Data)
	}
	if end > len(all.Data) {
		end = len(all.Data)
	}

	sliced := all.Data[start:end]
	return catalog.SetsPage{
		Data:       sliced,
		Page:       pageNum,
		PageSize:   pageSize,
		Count:      len(sliced),
		TotalCount: all.TotalCount,
	}
}

// queryInt parses a positive integer query parameter, falling back to the
// default on absence or garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
