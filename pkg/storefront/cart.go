package storefront

import "fmt"

// Cart is an insertion-ordered collection of (item, quantity) pairs keyed by
// resolved identity. At most one entry exists per key. Not safe for
// concurrent use.
type Cart struct {
	items  []CartItem
	notify Notifier
}

// NewCart returns an empty cart. A nil notifier silences notices.
func NewCart(notify Notifier) *Cart {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Cart{notify: notify}
}

// Add puts the item in the cart with quantity 1, or increments the quantity
// if an entry with the same identity key already exists. The stored item's
// id is normalized to the resolved key so later lookups match regardless of
// which shape of the entity they hold. Add always succeeds.
func (c *Cart) Add(item Item) {
	key := Key(item)

	for i := range c.items {
		if Key(c.items[i]) == key {
			next := make([]CartItem, len(c.items))
			copy(next, c.items)
			next[i].Quantity++
			c.items = next
			c.notify.Success("Quantidade atualizada no carrinho!")
			return
		}
	}

	item.ID = key
	next := make([]CartItem, len(c.items), len(c.items)+1)
	copy(next, c.items)
	c.items = append(next, CartItem{Item: item, Quantity: 1})
	c.notify.Success(fmt.Sprintf("%s adicionado ao carrinho!", item.Title))
}

// Remove deletes the entry matching the ref's identity key. Removing an
// absent key is a silent no-op.
func (c *Cart) Remove(ref interface{}) {
	key := Key(ref)

	found := false
	next := make([]CartItem, 0, len(c.items))
	for _, item := range c.items {
		if Key(item) == key {
			found = true
			c.notify.Info(fmt.Sprintf("%s removido do carrinho", item.Title))
			continue
		}
		next = append(next, item)
	}
	if !found {
		return
	}
	c.items = next
}

// SetQuantity sets the matching entry's quantity outright. A quantity of
// zero or less behaves exactly like Remove. Setting an absent key is a
// silent no-op.
func (c *Cart) SetQuantity(ref interface{}, quantity int) {
	if quantity <= 0 {
		c.Remove(ref)
		return
	}

	key := Key(ref)
	for i := range c.items {
		if Key(c.items[i]) == key {
			next := make([]CartItem, len(c.items))
			copy(next, c.items)
			next[i].Quantity = quantity
			c.items = next
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.notify.Success("Carrinho limpo!")
}

// Total returns the sum of price * quantity over all entries. Display
// layers own any 2-decimal formatting.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count returns the sum of all quantities, not the number of entries.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Contains reports whether an entry with the ref's identity key exists.
func (c *Cart) Contains(ref interface{}) bool {
	key := Key(ref)
	for _, item := range c.items {
		if Key(item) == key {
			return true
		}
	}
	return false
}

// Items returns the cart's entries in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.items)
}
