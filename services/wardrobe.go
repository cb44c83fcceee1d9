package services

import (
	"slices"
	"time"

	"ecostyleapi/models"
)

const FilterAll = "All"

const addedDateLayout = "2006-01-02"

// ClothingFilter selects items by exact value; empty or "All" disables a dimension.
type ClothingFilter struct {
	Type   string `query:"type"`
	Style  string `query:"style"`
	Season string `query:"season"`
}

func (f ClothingFilter) matches(item models.ClothingItem) bool {
	return filterValueMatches(f.Type, item.Type) &&
		filterValueMatches(f.Style, item.Style) &&
		filterValueMatches(f.Season, item.Season)
}

func filterValueMatches(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

// Wardrobe is the session's ordered item collection. Ids come from a counter and are
// never reused, so outfits can keep pointing at items across removals.
// Not safe for concurrent use, the owning Session serializes access.
type Wardrobe struct {
	items  []models.ClothingItem
	nextID uint
	now    func() time.Time
}

func NewWardrobe() *Wardrobe {
	return &Wardrobe{nextID: 1, now: time.Now}
}

// Add assigns the next id and today's date and appends the item.
func (w *Wardrobe) Add(item models.ClothingItem) models.ClothingItem {
	item.ID = w.nextID
	w.nextID++
	item.AddedDate = w.now().Format(addedDateLayout)
	w.items = append(w.items, item)
	return item
}

// Remove drops the first item structurally equal to item.
func (w *Wardrobe) Remove(item models.ClothingItem) bool {
	index := slices.IndexFunc(w.items, item.Equal)
	if index < 0 {
		return false
	}
	w.items = slices.Delete(w.items, index, index+1)
	return true
}

func (w *Wardrobe) RemoveByID(id uint) bool {
	item, ok := w.Get(id)
	if !ok {
		return false
	}
	return w.Remove(item)
}

func (w *Wardrobe) Get(id uint) (models.ClothingItem, bool) {
	for _, item := range w.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.ClothingItem{}, false
}

// Items returns a copy of the wardrobe in insertion order.
func (w *Wardrobe) Items() []models.ClothingItem {
	return slices.Clone(w.items)
}

func (w *Wardrobe) Len() int {
	return len(w.items)
}

// Filter returns the matching items in their original order as a new slice.
func (w *Wardrobe) Filter(filter ClothingFilter) []models.ClothingItem {
	filtered := make([]models.ClothingItem, 0, len(w.items))
	for _, item := range w.items {
		if filter.matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// DistinctValues lists each value seen for field once, in first-seen order.
func (w *Wardrobe) DistinctValues(field models.ClothingField) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, item := range w.items {
		value := item.Field(field)
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values
}

// FilterOptions lists "All" followed by the observed values of each filter
// dimension. An observed "All" (a season, usually) is not listed twice.
func (w *Wardrobe) FilterOptions() models.FilterOptionsOut {
	withAll := func(field models.ClothingField) []string {
		options := []string{FilterAll}
		for _, value := range w.DistinctValues(field) {
			if value != FilterAll {
				options = append(options, value)
			}
		}
		return options
	}
	return models.FilterOptionsOut{
		Types:   withAll(models.FieldType),
		Styles:  withAll(models.FieldStyle),
		Seasons: withAll(models.FieldSeason),
	}
}
