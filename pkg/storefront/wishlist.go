package storefront

import "fmt"

// Wishlist is an insertion-ordered set of items keyed by resolved identity.
// Not safe for concurrent use.
type Wishlist struct {
	items  []Item
	notify Notifier
}

// NewWishlist returns an empty wishlist. A nil notifier silences notices.
func NewWishlist(notify Notifier) *Wishlist {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Wishlist{notify: notify}
}

// Add inserts the item unless an entry with the same identity key already
// exists; re-adding is a no-op that only emits a notice. The stored item's
// id is normalized to the resolved key, as in Cart.Add.
func (w *Wishlist) Add(item Item) {
	key := Key(item)

	if w.Contains(key) {
		w.notify.Info("Este jogo já está na sua lista de desejos!")
		return
	}

	item.ID = key
	next := make([]Item, len(w.items), len(w.items)+1)
	copy(next, w.items)
	w.items = append(next, item)
	w.notify.Success(fmt.Sprintf("%s adicionado à lista de desejos!", item.Title))
}

// Remove deletes the entry matching the ref's identity key; a silent no-op
// when absent.
func (w *Wishlist) Remove(ref interface{}) {
	key := Key(ref)

	found := false
	next := make([]Item, 0, len(w.items))
	for _, item := range w.items {
		if Key(item) == key {
			found = true
			w.notify.Info(fmt.Sprintf("%s removido da lista de desejos", item.Title))
			continue
		}
		next = append(next, item)
	}
	if !found {
		return
	}
	w.items = next
}

// Contains reports whether an entry with the ref's identity key exists.
func (w *Wishlist) Contains(ref interface{}) bool {
	key := Key(ref)
	for _, item := range w.items {
		if Key(item) == key {
			return true
		}
	}
	return false
}

// Items returns the wishlist's entries in insertion order.
func (w *Wishlist) Items() []Item {
	out := make([]Item, len(w.items))
	copy(out, w.items)
	return out
}

// Len returns the number of entries.
func (w *Wishlist) Len() int {
	return len(w.items)
}
