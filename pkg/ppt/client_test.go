package ppt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, zerolog.Nop())
	return client, server
}

func TestCardQuery_Values_Defaults(t *testing.T) {
	v := CardQuery{Limit: 24, Offset: 0}.Values()

	// The vendor rejects unfiltered requests; minPrice=0 is the permissive
	// default filter.
	if got := v.Get("minPrice"); got != "0" {
		t.Errorf("minPrice = %q, want %q", got, "0")
	}
	if got := v.Get("sortBy"); got != "price" {
		t.Errorf("sortBy = %q, want %q", got, "price")
	}
	if got := v.Get("sortOrder"); got != "desc" {
		t.Errorf("sortOrder = %q, want %q", got, "desc")
	}
	if got := v.Get("includeHistory"); got != "true" {
		t.Errorf("includeHistory = %q, want %q", got, "true")
	}
	if got := v.Get("days"); got != "365" {
		t.Errorf("days = %q, want %q", got, "365")
	}
}

func TestCardQuery_Values_NoDefaultWhenFiltered(t *testing.T) {
	tests := []struct {
		name  string
		query CardQuery
	}{
		{"search", CardQuery{Search: "pikachu", Limit: 24}},
		{"set", CardQuery{Set: "base-set", Limit: 24}},
		{"rarity", CardQuery{Rarity: "Rare Holo", Limit: 24}},
		{"cardType", CardQuery{CardType: "Lightning", Limit: 24}},
		{"minPrice", CardQuery{MinPrice: "100", Limit: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.query.Values()
			if tt.query.MinPrice == "" && v.Get("minPrice") != "" {
				t.Errorf("minPrice default applied despite filter %s", tt.name)
			}
		})
	}
}

func TestCardQuery_CacheParams_MatchValues(t *testing.T) {
	q := CardQuery{Search: "charizard", Limit: 24, Offset: 48}
	values := q.Values()
	params := q.CacheParams()

	if len(params) != len(values) {
		t.Fatalf("params has %d entries, values has %d", len(params), len(values))
	}
	for name := range values {
		if params[name] != values.Get(name) {
			t.Errorf("params[%q] = %q, want %q", name, params[name], values.Get(name))
		}
	}
}

func TestClient_FetchCards(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards" {
			t.Errorf("path = %q, want /cards", r.URL.Path)
		}
		if got := r.URL.Query().Get("search"); got != "pikachu" {
			t.Errorf("search = %q, want pikachu", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [{"tcgPlayerId": "12345", "name": "Pikachu", "prices": {"market": 4.2}}],
			"metadata": {"total": 1, "count": 1, "limit": 24, "offset": 0}
		}`))
	})

	resp, err := client.FetchCards(context.Background(), CardQuery{Search: "pikachu", Limit: 24})
	if err != nil {
		t.Fatalf("FetchCards failed: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Name != "Pikachu" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
	if resp.Metadata.Total != 1 {
		t.Errorf("Total = %d, want 1", resp.Metadata.Total)
	}
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data": [], "metadata": {}}`))
	}))
	defer server.Close()

	withKey := New(Config{BaseURL: server.URL, APIKey: "secret"}, zerolog.Nop())
	if _, err := withKey.FetchCards(context.Background(), CardQuery{Limit: 1}); err != nil {
		t.Fatalf("FetchCards failed: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret")
	}

	// Absent key still attempts the call, with no header.
	withoutKey := New(Config{BaseURL: server.URL}, zerolog.Nop())
	if _, err := withoutKey.FetchCards(context.Background(), CardQuery{Limit: 1}); err != nil {
		t.Fatalf("FetchCards without key failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClient_NonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.FetchCards(context.Background(), CardQuery{Limit: 24})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
	if !apiErr.Temporary() {
		t.Error("429 should be temporary")
	}
}

func TestClient_FetchCardByID_ObjectPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tcgPlayerId"); got != "98765" {
			t.Errorf("tcgPlayerId = %q, want 98765", got)
		}
		w.Write([]byte(`{"data": {"tcgPlayerId": "98765", "name": "Charizard", "prices": {"market": 310.0}}}`))
	})

	card, err := client.FetchCardByID(context.Background(), "98765")
	if err != nil {
		t.Fatalf("FetchCardByID failed: %v", err)
	}
	if card.Name != "Charizard" {
		t.Errorf("Name = %q, want Charizard", card.Name)
	}
}

func TestClient_FetchCardByID_ArrayPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"tcgPlayerId": "98765", "name": "Charizard", "prices": {}}]}`))
	})

	card, err := client.FetchCardByID(context.Background(), "98765")
	if err != nil {
		t.Fatalf("FetchCardByID failed: %v", err)
	}
	if card.TCGPlayerID != "98765" {
		t.Errorf("TCGPlayerID = %q, want 98765", card.TCGPlayerID)
	}
}

func TestClient_FetchCardByID_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `{"data": []}`},
		{"null data", `{"data": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := client.FetchCardByID(context.Background(), "missing")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestClient_FetchSets(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sets" {
			t.Errorf("path = %q, want /sets", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "250" {
			t.Errorf("limit = %q, want 250", got)
		}
		w.Write([]byte(`{"data": [{"tcgPlayerId": "base-set", "name": "Base Set", "cardCount": 102}]}`))
	})

	resp, err := client.FetchSets(context.Background(), 250)
	if err != nil {
		t.Fatalf("FetchSets failed: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Name != "Base Set" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

// Partial payloads must decode: every optional nested field tolerates
// absence.
func TestClient_PartialCardPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"tcgPlayerId": "1", "name": "Mystery", "prices": {"market": null}}],
			"metadata": {"total": 1, "count": 1, "limit": 1, "offset": 0}}`))
	})

	resp, err := client.FetchCards(context.Background(), CardQuery{Limit: 1})
	if err != nil {
		t.Fatalf("FetchCards failed: %v", err)
	}
	card := resp.Data[0]
	if card.Prices.Market != nil {
		t.Errorf("Market = %v, want nil", *card.Prices.Market)
	}
	if card.HP != nil || card.Weakness != nil || card.PriceHistory != nil {
		t.Error("absent optionals should stay nil")
	}
}

func TestClient_ContextTimeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"data": []}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.FetchSets(ctx, 250)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("timeout should be a transport error, got *APIError: %v", apiErr)
	}
}
