package services

import "ecostyleapi/models"

type SustainabilityTier string

const (
	TierHigh   SustainabilityTier = "High"
	TierMedium SustainabilityTier = "Medium"
	TierLow    SustainabilityTier = "Low"
)

type SustainabilityReport struct {
	Count              int                `json:"count"`
	AverageScore       float64            `json:"average_score"`
	Tier               SustainabilityTier `json:"tier"`
	MaterialsHistogram map[string]int     `json:"materials_histogram"`
	Tips               []string           `json:"tips"`
}

// AggregateWardrobe computes the wardrobe-level metrics. Scores go through
// ParseScore again since items may carry scores written by older code paths.
func AggregateWardrobe(items []models.ClothingItem) SustainabilityReport {
	report := SustainabilityReport{
		Count:              len(items),
		MaterialsHistogram: map[string]int{},
	}
	var total float64
	for _, item := range items {
		score, _ := ParseScore(item.SustainabilityScore)
		total += score
		// exact material strings, "cotton" and "Cotton" are separate bars
		report.MaterialsHistogram[item.Material]++
	}
	if report.Count > 0 {
		report.AverageScore = total / float64(report.Count)
	}
	report.Tier = TierFor(report.AverageScore)
	report.Tips = TierTips(report.Tier)
	return report
}

func TierFor(average float64) SustainabilityTier {
	switch {
	case average >= 7:
		return TierHigh
	case average >= 5:
		return TierMedium
	default:
		return TierLow
	}
}

func TierTips(tier SustainabilityTier) []string {
	switch tier {
	case TierHigh:
		return []string{
			"Taking good care of your items to extend their life",
			"Sharing your sustainable fashion journey with friends",
			"Supporting ethical brands when you do need to shop",
		}
	case TierMedium:
		return []string{
			"Try organic cotton instead of conventional",
			"Look for recycled materials when buying synthetics",
			"Consider how often you'll wear an item before purchasing",
		}
	default:
		return []string{
			"Replacing synthetic materials with natural fibers",
			"Looking for second-hand or vintage alternatives",
			"Investing in fewer, higher-quality pieces",
		}
	}
}

// ScoreBand is the display colour for a single item score.
func ScoreBand(score float64) string {
	switch {
	case score >= 7:
		return "green"
	case score >= 4:
		return "orange"
	default:
		return "red"
	}
}

// AggregateOutfit pairs the model's stated outfit score with the metrics of the
// items it still resolves to.
func AggregateOutfit(outfit models.Outfit, wardrobe *Wardrobe) models.OutfitMetrics {
	items := AggregateWardrobe(ResolveOutfitItems(outfit, wardrobe))
	return models.OutfitMetrics{
		StatedScore:  outfit.SustainabilityScore,
		ItemsAverage: items.AverageScore,
		ItemsTier:    string(items.Tier),
	}
}
