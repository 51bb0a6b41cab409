package pokemon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"pokeblog/models"
)

const defaultBaseURL = "https://pokeapi.co/api/v2"

// Client fetches Pokemon data from the PokeAPI REST service and caches
// lookups for a short window so editor typeahead does not hammer the API.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	mu    sync.Mutex
	cache map[string]cacheEntry
	ttl   time.Duration

	speciesMu      sync.Mutex
	speciesCached  []string
	speciesExpires time.Time
}

type cacheEntry struct {
	pokemon   models.Pokemon
	expiresAt time.Time
}

func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		cache:   make(map[string]cacheEntry),
		ttl:     5 * time.Minute,
	}
}

type apiPokemon struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

// Fetch looks up one Pokemon by name or numeric id and returns the
// snapshot shape stored on blog documents. Height stays in decimetres
// and weight in hectograms, as the API reports them.
func (c *Client) Fetch(ctx context.Context, name string) (*models.Pokemon, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("pokemon name is required")
	}

	c.mu.Lock()
	if e, ok := c.cache[key]; ok && time.Now().Before(e.expiresAt) {
		p := e.pokemon
		c.mu.Unlock()
		return &p, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/pokemon/"+key, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pokeapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pokeapi returned status %d", resp.StatusCode)
	}

	var raw apiPokemon
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode pokeapi response: %w", err)
	}

	types := make([]string, 0, len(raw.Types))
	for _, t := range raw.Types {
		types = append(types, t.Type.Name)
	}

	sprite := raw.Sprites.Other.OfficialArtwork.FrontDefault
	if sprite == "" {
		sprite = raw.Sprites.FrontDefault
	}

	p := models.Pokemon{
		ID:        raw.ID,
		Name:      raw.Name,
		Types:     types,
		SpriteURL: sprite,
		Height:    raw.Height,
		Weight:    raw.Weight,
	}

	c.mu.Lock()
	c.cache[key] = cacheEntry{pokemon: p, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return &p, nil
}

// ErrNotFound is returned when PokeAPI has no Pokemon with that name.
var ErrNotFound = fmt.Errorf("pokemon not found")

type speciesPage struct {
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

// SearchSpecies returns up to limit species names starting with prefix.
// The species list is small and changes rarely, so one fetch per TTL
// window is fine.
func (c *Client) SearchSpecies(ctx context.Context, prefix string, limit int) ([]string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if limit <= 0 {
		limit = 10
	}

	names, err := c.speciesNames(ctx)
	if err != nil {
		return nil, err
	}

	matches := []string{}
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			matches = append(matches, n)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches, nil
}

func (c *Client) speciesNames(ctx context.Context) ([]string, error) {
	c.speciesMu.Lock()
	defer c.speciesMu.Unlock()
	if c.speciesCached != nil && time.Now().Before(c.speciesExpires) {
		return c.speciesCached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/pokemon-species?limit=2000", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pokeapi species request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pokeapi returned status %d", resp.StatusCode)
	}

	var page speciesPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode species list: %w", err)
	}

	names := make([]string, 0, len(page.Results))
	for _, r := range page.Results {
		names = append(names, r.Name)
	}

	c.speciesCached = names
	c.speciesExpires = time.Now().Add(c.ttl)
	return names, nil
}
