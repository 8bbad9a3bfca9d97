// Package storefront holds the client-side state the store pages work
// against: the cart and wishlist with their identity-key reconciliation,
// and a shared observable cell for the site settings document.
//
// The stores model a single-threaded UI event loop: every mutation replaces
// the backing slice (copy-on-write) and returns before anything else can
// observe the state. They are not safe for concurrent use.
package storefront

// Item is the game-shaped entity the storefront pages pass around. Depending
// on where it came from it may carry a backend-assigned MongoID (`_id`), a
// locally assigned numeric id from seed data, or only its slug. The same
// game can show up in all three shapes over one session.
type Item struct {
	MongoID     string            `json:"_id,omitempty"`
	ID          interface{}       `json:"id,omitempty"` // string or number depending on origin
	Slug        string            `json:"slug,omitempty"`
	Title       string            `json:"title"`
	Image       string            `json:"image,omitempty"`
	Video       string            `json:"video,omitempty"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price,omitempty"`
	Platforms   []string          `json:"platforms,omitempty"`
	StoreLinks  map[string]string `json:"storeLinks,omitempty"`
}

// CartItem is an Item plus the quantity in the cart, always >= 1. An item
// whose quantity would drop to zero is removed instead.
type CartItem struct {
	Item
	Quantity int `json:"quantity"`
}
