// Package schedule exports construction schedules: flat listings of the
// generated structural elements with their materials and quantities, in the
// CSV and JSONL formats downstream estimating tools consume.
package schedule

import (
	"github.com/planforge-xyz/go-planforge/catalog"
	"github.com/planforge-xyz/go-planforge/structural"
)

// Entry is one scheduled element.
type Entry struct {
	ElementID    string  `json:"elementId"`
	Type         string  `json:"type"`
	Material     string  `json:"material"`
	MaterialName string  `json:"materialName"`
	Length       float64 `json:"length"` // feet
	Width        float64 `json:"width"`  // feet
	Height       float64 `json:"height"` // feet
	Volume       float64 `json:"volume"` // cubic feet
	LoadBearing  bool    `json:"loadBearing"`
}

// FromElements builds schedule entries from structural elements, resolving
// material display names against the catalog. Elements keep their
// generation order.
func FromElements(elements []structural.Element, cat catalog.Materials) []Entry {
	entries := make([]Entry, 0, len(elements))
	for _, el := range elements {
		entry := Entry{
			ElementID:    el.ID,
			Type:         string(el.Type),
			Material:     el.Material,
			MaterialName: el.Material,
			Length:       el.Dimensions.Length,
			Width:        el.Dimensions.Width,
			Height:       el.Dimensions.Height,
			Volume:       el.Volume(),
		}
		if m, ok := cat.ByKey(el.Material); ok {
			entry.MaterialName = m.Name
		}
		if lb, ok := el.Properties["loadBearing"].(bool); ok {
			entry.LoadBearing = lb
		}
		entries = append(entries, entry)
	}
	return entries
}
