package pokemon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"types": [
		{"slot": 1, "type": {"name": "electric"}}
	],
	"sprites": {
		"front_default": "https://sprites/front.png",
		"other": {
			"official-artwork": {"front_default": "https://sprites/artwork.png"}
		}
	}
}`

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient()
	c.BaseURL = srv.URL
	c.HTTP = srv.Client()
	return c, srv
}

func TestFetchSnapshot(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon/pikachu" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(pikachuJSON))
	})

	p, err := c.Fetch(context.Background(), "Pikachu")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if p.ID != 25 || p.Name != "pikachu" {
		t.Fatalf("unexpected snapshot: %+v", p)
	}
	if !reflect.DeepEqual(p.Types, []string{"electric"}) {
		t.Fatalf("unexpected types: %v", p.Types)
	}
	if p.SpriteURL != "https://sprites/artwork.png" {
		t.Fatalf("expected official artwork to win, got %q", p.SpriteURL)
	}
	if p.Height != 4 || p.Weight != 60 {
		t.Fatalf("height/weight must stay in API units: %+v", p)
	}
}

func TestFetchFallsBackToFrontSprite(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"name":"bulbasaur","sprites":{"front_default":"https://sprites/front.png","other":{"official-artwork":{"front_default":""}}}}`))
	})

	p, err := c.Fetch(context.Background(), "bulbasaur")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if p.SpriteURL != "https://sprites/front.png" {
		t.Fatalf("expected front sprite fallback, got %q", p.SpriteURL)
	}
}

func TestFetchNotFound(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := c.Fetch(context.Background(), "missingno"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchUsesCache(t *testing.T) {
	calls := 0
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(pikachuJSON))
	})

	for i := 0; i < 3; i++ {
		if _, err := c.Fetch(context.Background(), "pikachu"); err != nil {
			t.Fatalf("Fetch: %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls)
	}
}

func TestSearchSpecies(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon-species" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"results":[{"name":"bulbasaur"},{"name":"charmander"},{"name":"charizard"},{"name":"pikachu"}]}`))
	})

	got, err := c.SearchSpecies(context.Background(), "char", 10)
	if err != nil {
		t.Fatalf("SearchSpecies: %v", err)
	}
	want := []string{"charmander", "charizard"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSearchSpeciesLimit(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"name":"aa"},{"name":"ab"},{"name":"ac"}]}`))
	})

	got, err := c.SearchSpecies(context.Background(), "a", 2)
	if err != nil {
		t.Fatalf("SearchSpecies: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %v", got)
	}
}
