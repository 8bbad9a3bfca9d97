package storefront

import (
	"encoding/json"
	"strconv"
)

// Key derives the identity key used to deduplicate cart and wishlist
// entries. Primitives are stringified as-is; item-shaped values pick the
// first non-empty identifier in priority order: the backend-assigned
// MongoID, then the locally assigned id, then the slug.
//
// Key is pure and total: it never panics, and anything without a usable
// identifier maps to "", a degenerate but valid key under which all
// unidentified entities share one bucket.
func Key(ref interface{}) string {
	switch v := ref.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case Item:
		return itemKey(v)
	case *Item:
		if v == nil {
			return ""
		}
		return itemKey(*v)
	case CartItem:
		return itemKey(v.Item)
	case *CartItem:
		if v == nil {
			return ""
		}
		return itemKey(v.Item)
	default:
		return ""
	}
}

func itemKey(it Item) string {
	if it.MongoID != "" {
		return it.MongoID
	}
	if k := Key(it.ID); k != "" {
		return k
	}
	return it.Slug
}
