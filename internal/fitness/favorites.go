package fitness

import "encoding/json"

// Favorites is an ordered, deduplicated set of exercise ids.
type Favorites []string

// NormalizeFavorites accepts any JSON array and keeps the unique
// string members in order. Anything else yields an empty set.
func NormalizeFavorites(raw []byte) Favorites {
	if len(raw) == 0 {
		return Favorites{}
	}

	var doc []any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Favorites{}
	}

	seen := make(map[string]bool, len(doc))
	out := make(Favorites, 0, len(doc))
	for _, item := range doc {
		id, ok := item.(string)
		if !ok || id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Has reports set membership.
func (f Favorites) Has(id string) bool {
	for _, v := range f {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle adds the id when absent and removes it when present.
func (f Favorites) Toggle(id string) Favorites {
	for i, v := range f {
		if v == id {
			return append(f[:i:i], f[i+1:]...)
		}
	}
	return append(f, id)
}
