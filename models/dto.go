package models

type SessionOut struct {
	SessionID   string `json:"session_id"`
	AccessToken string `json:"access_token"`
}

type AnalysisLabel struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type AnalysisOut struct {
	Item           ClothingItem    `json:"item"`
	Outcome        string          `json:"outcome"`
	FallbackFields []string        `json:"fallback_fields"`
	Labels         []AnalysisLabel `json:"labels"`
	ScoreDisplay   string          `json:"score_display"`
}

type ClothingItemOut struct {
	ClothingItem
	ScoreBand string `json:"score_band"`
	Caption   string `json:"caption"`
	ImageURI  string `json:"image_uri"`
}

type FilterOptionsOut struct {
	Types   []string `json:"types"`
	Styles  []string `json:"styles"`
	Seasons []string `json:"seasons"`
}

type ClosetListOut struct {
	Total int               `json:"total"`
	Items []ClothingItemOut `json:"items"`
}

type WeatherRefreshIn struct {
	Location string `json:"location" validate:"omitempty,max=100"`
}

type GenerateOutfitsIn struct {
	Occasion string `json:"occasion" validate:"omitempty,occasion"`
}

type OutfitFeedbackIn struct {
	Action string `json:"action" validate:"required,oneof=like dislike save"`
}

type OutfitOut struct {
	Outfit
	Index          int               `json:"index"`
	ResolvedItems  []ClothingItemOut `json:"resolved_items"`
	Sustainability OutfitMetrics     `json:"sustainability"`
}

type OutfitMetrics struct {
	StatedScore  float64 `json:"stated_score"`
	ItemsAverage float64 `json:"items_average"`
	ItemsTier    string  `json:"items_tier"`
}

type OutfitListOut struct {
	Occasion string         `json:"occasion,omitempty"`
	Weather  WeatherReading `json:"weather"`
	Outfits  []OutfitOut    `json:"outfits"`
}
