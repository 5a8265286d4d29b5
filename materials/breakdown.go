package materials

import (
	"sort"

	"github.com/planforge-xyz/go-planforge/catalog"
	"github.com/planforge-xyz/go-planforge/structural"
)

// Usage aggregates the elements assigned to one material.
type Usage struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Elements int     `json:"elements"`
	Volume   float64 `json:"volume"` // cubic feet
	Cost     float64 `json:"cost"`   // element count times catalog cost
}

// Breakdown groups structural elements by material and totals their volume
// and cost. Materials missing from the catalog still appear, with their key
// as the name and zero cost. The result is sorted by key for determinism.
func Breakdown(elements []structural.Element, cat catalog.Materials) []Usage {
	byKey := make(map[string]*Usage)
	for _, el := range elements {
		u, ok := byKey[el.Material]
		if !ok {
			u = &Usage{Key: el.Material, Name: el.Material}
			if m, found := cat.ByKey(el.Material); found {
				u.Name = m.Name
			}
			byKey[el.Material] = u
		}
		u.Elements++
		u.Volume += el.Volume()
	}

	out := make([]Usage, 0, len(byKey))
	for key, u := range byKey {
		if m, found := cat.ByKey(key); found {
			u.Cost = float64(u.Elements) * m.Properties.Cost
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
