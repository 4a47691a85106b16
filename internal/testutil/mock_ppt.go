// Package testutil provides testing utilities for the market gateway.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/poketerminal/tcg-market-gateway/pkg/ppt"
)

// MockResponse defines the behavior for a mock vendor endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockPPT is a configurable mock vendor API server for testing.
type MockPPT struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	LastRequestHeader http.Header
	LastRequestQuery  map[string]string
}

// NewMockPPT creates a new mock vendor server. Paths without a configured
// handler return an empty 200 payload.
func NewMockPPT() *MockPPT {
	mock := &MockPPT{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		query := make(map[string]string)
		for name := range r.URL.Query() {
			query[name] = r.URL.Query().Get(name)
		}
		mock.LastRequestQuery = query
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"data":[],"metadata":{"total":0,"count":0,"limit":0,"offset":0}}`)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockPPT) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockPPT) Close() {
	m.server.Close()
}

// Reset clears all tracking state.
func (m *MockPPT) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastRequestHeader = nil
	m.LastRequestQuery = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockPPT) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a fixed response for a path.
func (m *MockPPT) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetCardsResponse serves a canned card search payload on /cards.
func (m *MockPPT) SetCardsResponse(cards []ppt.Card, meta ppt.ListMeta) {
	body, _ := json.Marshal(ppt.CardsResponse{Data: cards, Metadata: meta})
	m.SetResponse("/cards", MockResponse{
		StatusCode: http.StatusOK,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	})
}

// SetSetsResponse serves a canned set catalog payload on /sets.
func (m *MockPPT) SetSetsResponse(sets []ppt.Set) {
	meta := ppt.ListMeta{Total: len(sets), Count: len(sets), Limit: len(sets)}
	body, _ := json.Marshal(ppt.SetsResponse{Data: sets, Metadata: &meta})
	m.SetResponse("/sets", MockResponse{
		StatusCode: http.StatusOK,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	})
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockPPT) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// SampleCard builds a minimal but realistic vendor card payload.
func SampleCard(id, name, setName string) ppt.Card {
	market := 12.5
	return ppt.Card{
		TCGPlayerID: id,
		Name:        name,
		SetName:     setName,
		CardNumber:  "001",
		Rarity:      "Rare",
		CardType:    "Fire",
		Prices: ppt.Prices{
			Market: &market,
			Conditions: map[string]ppt.ConditionPrice{
				ppt.ConditionNearMint: {Price: market},
			},
		},
	}
}

// SampleSet builds a minimal vendor set payload.
func SampleSet(slug, name string) ppt.Set {
	return ppt.Set{
		ID:          "internal-" + slug,
		TCGPlayerID: slug,
		Name:        name,
		ReleaseDate: "2023-03-31T00:00:00.000Z",
		CardCount:   200,
	}
}
