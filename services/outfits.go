package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ecostyleapi/models"

	"github.com/getsentry/sentry-go"
)

const OutfitsPerGeneration = 3

const outfitPromptTemplate = `
As a fashion stylist, create %d outfit combinations using these clothing items:

%s
Current weather: %d°F, %s

For each outfit:
1. Select compatible items that would work well together
2. Consider the current weather conditions
3. Balance style and sustainability

Format your response as a JSON array with %d objects, each object having:
- outfit_name: A catchy name for the outfit
- items: Array of item indexes used (from the numbered list above)
- description: Brief description of why these work together
- occasion: Suggested occasion for this outfit
- sustainability_score: Overall sustainability score (1-10)

Return ONLY the JSON with no additional explanations.
`

// BuildWardrobePrompt enumerates the wardrobe with 1-based positions and wraps it in
// the stylist instruction. Output depends only on its inputs.
func BuildWardrobePrompt(items []models.ClothingItem, weather models.WeatherReading) string {
	var wardrobeText strings.Builder
	for idx, item := range items {
		fmt.Fprintf(&wardrobeText, "%d. %s: %s %s, %s style, suitable for %s season.\n",
			idx+1, item.Type, item.Color, item.Material, item.Style, item.Season)
	}
	return fmt.Sprintf(outfitPromptTemplate,
		OutfitsPerGeneration, wardrobeText.String(), weather.Temp, weather.Condition, OutfitsPerGeneration)
}

// ComposeOutfits asks the model for outfits built from items. It returns an empty
// slice for an empty wardrobe (without calling the model), on model errors and when
// no JSON array can be read; a generation is never partially salvaged.
func ComposeOutfits(ctx context.Context, items []models.ClothingItem, weather models.WeatherReading, model GenerativeModel) []models.Outfit {
	outfits := []models.Outfit{}
	if len(items) == 0 {
		return outfits
	}
	prompt := BuildWardrobePrompt(items, weather)
	response, err := model.Generate(ctx, prompt)
	if err != nil {
		fmt.Printf("[Outfits] Error generating outfits for %d items: %v\n", len(items), err)
		sentry.CaptureException(fmt.Errorf("[Outfits] error generating outfits: %w", err))
		return outfits
	}
	if response == nil {
		return outfits
	}
	elements, ok := ExtractArray(response.Response)
	if !ok {
		fmt.Printf("[Outfits] No JSON array in model response: %q\n", response.Response)
		return outfits
	}
	for i, element := range elements {
		raw, ok := element.(map[string]any)
		if !ok {
			fmt.Printf("[Outfits] Skipping element %d, not an object: %v\n", i, element)
			continue
		}
		outfits = append(outfits, NormalizeOutfit(raw, items))
	}
	return outfits
}

// NormalizeOutfit fills defaults for missing keys and resolves the 1-based item
// positions against snapshot, the wardrobe as it was sent to the model.
func NormalizeOutfit(raw map[string]any, snapshot []models.ClothingItem) models.Outfit {
	outfit := models.Outfit{
		OutfitName:          models.UnknownValue,
		Occasion:            models.UnknownValue,
		Items:               []int{},
		ItemIDs:             []uint{},
		SustainabilityScore: models.DefaultSustainabilityScore,
	}
	if name, ok := classificationValue(raw["outfit_name"]); ok {
		outfit.OutfitName = name
	}
	if description, ok := classificationValue(raw["description"]); ok {
		outfit.Description = description
	}
	if occasion, ok := classificationValue(raw["occasion"]); ok {
		outfit.Occasion = occasion
	}
	outfit.SustainabilityScore, _ = ParseScore(raw[sustainabilityScoreKey])

	positions, _ := raw["items"].([]any)
	for _, value := range positions {
		position, ok := itemPosition(value)
		if !ok {
			continue
		}
		outfit.Items = append(outfit.Items, position)
		if position >= 1 && position <= len(snapshot) {
			outfit.ItemIDs = append(outfit.ItemIDs, snapshot[position-1].ID)
		}
	}
	return outfit
}

func itemPosition(value any) (int, bool) {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		f, err := v.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}

// ResolveOutfitItems returns the outfit's items still present in the wardrobe.
// Items removed since generation are skipped.
func ResolveOutfitItems(outfit models.Outfit, wardrobe *Wardrobe) []models.ClothingItem {
	resolved := make([]models.ClothingItem, 0, len(outfit.ItemIDs))
	for _, id := range outfit.ItemIDs {
		if item, ok := wardrobe.Get(id); ok {
			resolved = append(resolved, item)
		}
	}
	return resolved
}
