package storefront

import (
	"encoding/json"
	"testing"
)

func TestKeyPrimitives(t *testing.T) {
	cases := []struct {
		name string
		ref  interface{}
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc123", "abc123"},
		{"int", 7, "7"},
		{"int64", int64(42), "42"},
		{"float whole", float64(3), "3"},
		{"float fractional", 3.5, "3.5"},
		{"json number", json.Number("19"), "19"},
		{"unsupported type", struct{ X int }{1}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Key(tc.ref); got != tc.want {
				t.Fatalf("Key(%v) = %q, want %q", tc.ref, got, tc.want)
			}
		})
	}
}

func TestKeyItemPriorityOrder(t *testing.T) {
	full := Item{MongoID: "m1", ID: 2, Slug: "the-slug"}
	if got := Key(full); got != "m1" {
		t.Fatalf("expected backend _id to win, got %q", got)
	}

	noMongo := Item{ID: 2, Slug: "the-slug"}
	if got := Key(noMongo); got != "2" {
		t.Fatalf("expected local id to win over slug, got %q", got)
	}

	slugOnly := Item{Slug: "the-slug"}
	if got := Key(slugOnly); got != "the-slug" {
		t.Fatalf("expected slug fallback, got %q", got)
	}

	if got := Key(Item{Title: "Nameless"}); got != "" {
		t.Fatalf("expected empty key for unidentified item, got %q", got)
	}
}

func TestKeyPointerAndCartItem(t *testing.T) {
	item := Item{MongoID: "m1"}
	if got := Key(&item); got != "m1" {
		t.Fatalf("Key(*Item) = %q, want m1", got)
	}

	var nilItem *Item
	if got := Key(nilItem); got != "" {
		t.Fatalf("Key(nil *Item) = %q, want empty", got)
	}

	ci := CartItem{Item: item, Quantity: 2}
	if got := Key(ci); got != "m1" {
		t.Fatalf("Key(CartItem) = %q, want m1", got)
	}
	if got := Key(&ci); got != "m1" {
		t.Fatalf("Key(*CartItem) = %q, want m1", got)
	}
}

func TestKeyStringIDBeatsSlug(t *testing.T) {
	it := Item{ID: "local-9", Slug: "something"}
	if got := Key(it); got != "local-9" {
		t.Fatalf("Key = %q, want local-9", got)
	}
}
