package search

import (
	"reflect"
	"testing"
)

func TestTokenizeLowersAndDedupes(t *testing.T) {
	got := Tokenize("Redis REDIS redis rocks")
	want := []string{"redis", "rocks"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeDropsStopWords(t *testing.T) {
	got := Tokenize("the state of search in Go")
	want := []string{"state", "search", "go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeSplitsOnPunctuation(t *testing.T) {
	got := Tokenize("hello, world! it's v2.5")
	want := []string{"hello", "world", "it", "s", "v2", "5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize("   "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}
