package services

import (
	"testing"
	"time"

	"ecostyleapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeItem(itemType, color, material, style, season string, score float64) models.ClothingItem {
	return models.ClothingItem{
		Type:                itemType,
		Color:               color,
		Material:            material,
		Style:               style,
		Season:              season,
		SustainabilityScore: score,
	}
}

func fixedWardrobe() *Wardrobe {
	w := NewWardrobe()
	w.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	return w
}

func TestWardrobeAddAssignsIDAndDate(t *testing.T) {
	w := fixedWardrobe()

	first := w.Add(fakeItem("Shirt", "Blue", "Cotton", "Casual", "Summer", 6))
	second := w.Add(fakeItem("Jeans", "Blue", "Denim", "Casual", "All", 4))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.Equal(t, "2026-03-14", first.AddedDate)
	assert.Equal(t, 2, w.Len())
}

func TestWardrobeIDsNeverReused(t *testing.T) {
	w := fixedWardrobe()
	first := w.Add(fakeItem("Shirt", "Blue", "Cotton", "Casual", "Summer", 6))
	w.Add(fakeItem("Jeans", "Blue", "Denim", "Casual", "All", 4))

	require.True(t, w.RemoveByID(first.ID))
	third := w.Add(fakeItem("Coat", "Black", "Wool", "Formal", "Winter", 7))

	assert.Equal(t, uint(3), third.ID)
	ids := []uint{}
	for _, item := range w.Items() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []uint{2, 3}, ids)
}

func TestWardrobeRemoveStructuralMatch(t *testing.T) {
	w := fixedWardrobe()
	added := w.Add(fakeItem("Shirt", "Blue", "Cotton", "Casual", "Summer", 6))

	assert.False(t, w.Remove(fakeItem("Shirt", "Blue", "Cotton", "Casual", "Summer", 6)), "id and date must match too")
	assert.True(t, w.Remove(added))
	assert.False(t, w.Remove(added))
	assert.Equal(t, 0, w.Len())
}

func TestWardrobeRemoveByIDMissing(t *testing.T) {
	w := fixedWardrobe()
	w.Add(fakeItem("Shirt", "Blue", "Cotton", "Casual", "Summer", 6))

	assert.False(t, w.RemoveByID(42))
	assert.Equal(t, 1, w.Len())
}

func TestWardrobeItemsIsACopy(t *testing.T) {
	w := fixedWardrobe()
	w.Add(fakeItem("Shirt", "Blue", "Cotton", "Casual", "Summer", 6))

	items := w.Items()
	items[0].Type = "Changed"

	stored, ok := w.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Shirt", stored.Type)
}

func TestWardrobeFilter(t *testing.T) {
	w := fixedWardrobe()
	w.Add(fakeItem("Shirt", "Blue", "Cotton", "Casual", "Summer", 6))
	w.Add(fakeItem("Jeans", "Blue", "Denim", "Casual", "All", 4))
	w.Add(fakeItem("Shirt", "White", "Linen", "Formal", "Summer", 8))

	all := w.Filter(ClothingFilter{Type: FilterAll, Style: FilterAll, Season: FilterAll})
	require.Len(t, all, 3)
	assert.Equal(t, []uint{1, 2, 3}, []uint{all[0].ID, all[1].ID, all[2].ID})

	shirts := w.Filter(ClothingFilter{Type: "Shirt"})
	require.Len(t, shirts, 2)
	assert.Equal(t, uint(1), shirts[0].ID)
	assert.Equal(t, uint(3), shirts[1].ID)

	formalSummerShirts := w.Filter(ClothingFilter{Type: "Shirt", Style: "Formal", Season: "Summer"})
	require.Len(t, formalSummerShirts, 1)
	assert.Equal(t, "Linen", formalSummerShirts[0].Material)

	assert.Empty(t, w.Filter(ClothingFilter{Type: "Hat"}))
	assert.NotNil(t, w.Filter(ClothingFilter{Type: "Hat"}))
	assert.Len(t, w.Filter(ClothingFilter{Type: "shirt"}), 0, "matching is exact")
}

func TestWardrobeFilterOptions(t *testing.T) {
	w := fixedWardrobe()
	assert.Equal(t, models.FilterOptionsOut{
		Types:   []string{FilterAll},
		Styles:  []string{FilterAll},
		Seasons: []string{FilterAll},
	}, w.FilterOptions())

	w.Add(fakeItem("Shirt", "Blue", "Cotton", "Casual", "Summer", 6))
	w.Add(fakeItem("Jeans", "Blue", "Denim", "Casual", "All", 4))
	w.Add(fakeItem("Shirt", "White", "Linen", "Formal", "Summer", 8))

	options := w.FilterOptions()
	assert.Equal(t, []string{FilterAll, "Shirt", "Jeans"}, options.Types)
	assert.Equal(t, []string{FilterAll, "Casual", "Formal"}, options.Styles)
	assert.Equal(t, []string{FilterAll, "Summer"}, options.Seasons)
	assert.Equal(t, []string{"Blue", "White"}, w.DistinctValues(models.FieldColor))
}
