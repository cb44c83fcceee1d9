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

// Outcome tags whether a pipeline step used what the model said or fell back to defaults.
type Outcome string

const (
	OutcomeRecognized Outcome = "recognized"
	OutcomeFallback   Outcome = "fallback"
)

const sustainabilityScoreKey = "sustainability_score"

type AnalysisResult struct {
	Item    models.ClothingItem
	Outcome Outcome
	// fields that were missing or unparseable and got a default
	FallbackFields []string
	RawResponse    string
}

// ParseScore reads the leading numeric token of a score the model may have written
// as 7, "7" or "7 (linen is very sustainable)". Anything else yields the default.
func ParseScore(value any) (float64, bool) {
	text, ok := scoreText(value)
	if !ok {
		return models.DefaultSustainabilityScore, false
	}
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return models.DefaultSustainabilityScore, false
	}
	if isHexFloat(tokens[0]) {
		return models.DefaultSustainabilityScore, false
	}
	score, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return models.DefaultSustainabilityScore, false
	}
	return score, true
}

// ParseFloat reads "0x1p3" as 8, scores are decimal only.
func isHexFloat(token string) bool {
	unsigned := strings.TrimLeft(token, "+-")
	return strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X")
}

func scoreText(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int, int32, int64, uint, uint32, uint64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

// NormalizeItem turns a model payload into a complete ClothingItem. It never fails:
// every classification field missing from raw reads "Unknown" and an unusable score
// reads 5. ID, AddedDate and Image are left to the wardrobe.
func NormalizeItem(raw map[string]any) models.ClothingItem {
	item, _ := normalizeItem(raw)
	return item
}

func normalizeItem(raw map[string]any) (models.ClothingItem, []string) {
	item := models.UnknownClothingItem()
	var fallbacks []string
	for _, field := range models.ClassificationFields {
		value, ok := classificationValue(raw[string(field)])
		if !ok {
			fallbacks = append(fallbacks, string(field))
			continue
		}
		item.SetField(field, value)
	}

	rawScore, present := raw[sustainabilityScoreKey]
	score, ok := ParseScore(rawScore)
	item.SustainabilityScore = score
	if !ok {
		fallbacks = append(fallbacks, sustainabilityScoreKey)
	}
	if present {
		if note, ok := scoreText(rawScore); ok {
			item.SustainabilityNote = strings.TrimSpace(note)
		}
	}
	return item, fallbacks
}

func classificationValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		trimmed := strings.TrimSpace(v)
		return trimmed, trimmed != ""
	case []any:
		// seasons often come back as a list
		var parts []string
		for _, element := range v {
			if s, ok := classificationValue(element); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	case map[string]any:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}

// AnalyzeClothing asks the model to classify an image and normalizes its answer.
// Model errors and unreadable answers produce the all-default item tagged as fallback.
func AnalyzeClothing(ctx context.Context, model GenerativeModel, image []byte, mimeType string) AnalysisResult {
	fallback := AnalysisResult{
		Item:           models.UnknownClothingItem(),
		Outcome:        OutcomeFallback,
		FallbackFields: allItemFields(),
	}
	response, err := model.Analyze(ctx, image, mimeType)
	if err != nil {
		fmt.Printf("[Analyze] Error analyzing image (%s, %d bytes): %v\n", mimeType, len(image), err)
		sentry.CaptureException(fmt.Errorf("[Analyze] error analyzing image: %w", err))
		return fallback
	}
	if response == nil || strings.TrimSpace(response.Response) == "" {
		fmt.Println("[Analyze] Empty model response")
		return fallback
	}
	fallback.RawResponse = response.Response

	raw, ok := ExtractObject(response.Response)
	if !ok {
		fmt.Printf("[Analyze] No JSON object in model response: %q\n", response.Response)
		return fallback
	}
	item, fallbacks := normalizeItem(raw)
	return AnalysisResult{
		Item:           item,
		Outcome:        OutcomeRecognized,
		FallbackFields: fallbacks,
		RawResponse:    response.Response,
	}
}

func allItemFields() []string {
	fields := make([]string, 0, len(models.ClassificationFields)+1)
	for _, field := range models.ClassificationFields {
		fields = append(fields, string(field))
	}
	return append(fields, sustainabilityScoreKey)
}
