package controllers

import (
	"fmt"
	"time"

	"ecostyleapi/models"
	"ecostyleapi/services"

	"github.com/golang-jwt/jwt/v4"
)

const sessionContextKey = "session"

func GenerateSessionToken(sessionID string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString(secret)
}

func itemImageURI(id uint) string {
	return fmt.Sprintf("/closet/items/%d/image", id)
}

func clothingItemOut(item models.ClothingItem) models.ClothingItemOut {
	return models.ClothingItemOut{
		ClothingItem: item,
		ScoreBand:    services.ScoreBand(item.SustainabilityScore),
		Caption:      fmt.Sprintf("%s %s", item.Color, item.Type),
		ImageURI:     itemImageURI(item.ID),
	}
}

func clothingItemsOut(items []models.ClothingItem) []models.ClothingItemOut {
	out := make([]models.ClothingItemOut, 0, len(items))
	for _, item := range items {
		out = append(out, clothingItemOut(item))
	}
	return out
}

func analysisOut(result services.AnalysisResult) models.AnalysisOut {
	item := result.Item
	labels := make([]models.AnalysisLabel, 0, len(models.ClassificationFields)+1)
	for _, field := range models.ClassificationFields {
		labels = append(labels, models.AnalysisLabel{
			Label: services.FieldLabel(string(field)),
			Value: item.Field(field),
		})
	}
	scoreDisplay := services.ScoreDisplay(item.SustainabilityScore)
	labels = append(labels, models.AnalysisLabel{
		Label: services.FieldLabel("sustainability_score"),
		Value: scoreDisplay,
	})
	fallbacks := result.FallbackFields
	if fallbacks == nil {
		fallbacks = []string{}
	}
	return models.AnalysisOut{
		Item:           item,
		Outcome:        string(result.Outcome),
		FallbackFields: fallbacks,
		Labels:         labels,
		ScoreDisplay:   scoreDisplay,
	}
}

func closetListOut(session *services.Session, filter services.ClothingFilter) models.ClosetListOut {
	return models.ClosetListOut{
		Total: session.Wardrobe.Len(),
		Items: clothingItemsOut(session.Wardrobe.Filter(filter)),
	}
}

func outfitOut(index int, outfit models.Outfit, wardrobe *services.Wardrobe) models.OutfitOut {
	return models.OutfitOut{
		Outfit:         outfit,
		Index:          index,
		ResolvedItems:  clothingItemsOut(services.ResolveOutfitItems(outfit, wardrobe)),
		Sustainability: services.AggregateOutfit(outfit, wardrobe),
	}
}

func outfitListOut(session *services.Session) models.OutfitListOut {
	outfits := make([]models.OutfitOut, 0, len(session.Outfits))
	for i, outfit := range session.Outfits {
		outfits = append(outfits, outfitOut(i+1, outfit, session.Wardrobe))
	}
	return models.OutfitListOut{
		Occasion: session.Occasion,
		Weather:  session.Weather,
		Outfits:  outfits,
	}
}
