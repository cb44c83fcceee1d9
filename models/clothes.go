package models

import "bytes"

const UnknownValue = "Unknown"

const DefaultSustainabilityScore = 5.0

// ClothingItem is a classified wardrobe entry. Classification fields are always
// populated after normalization, missing values read "Unknown".
type ClothingItem struct {
	ID                  uint    `json:"id"`
	Type                string  `json:"type"`
	Color               string  `json:"color"`
	Material            string  `json:"material"`
	Style               string  `json:"style"`
	Season              string  `json:"season"`
	SustainabilityScore float64 `json:"sustainability_score"`
	// raw score text as the model returned it, e.g. "6 (cotton is moderately sustainable)"
	SustainabilityNote string `json:"sustainability_note,omitempty"`
	AddedDate          string `json:"added_date"`
	Image              []byte `json:"-"`
	ImageMIMEType      string `json:"image_mime_type,omitempty"`
}

// Equal reports structural equality, image bytes included.
func (c ClothingItem) Equal(other ClothingItem) bool {
	return c.ID == other.ID &&
		c.Type == other.Type &&
		c.Color == other.Color &&
		c.Material == other.Material &&
		c.Style == other.Style &&
		c.Season == other.Season &&
		c.SustainabilityScore == other.SustainabilityScore &&
		c.SustainabilityNote == other.SustainabilityNote &&
		c.AddedDate == other.AddedDate &&
		c.ImageMIMEType == other.ImageMIMEType &&
		bytes.Equal(c.Image, other.Image)
}

func UnknownClothingItem() ClothingItem {
	return ClothingItem{
		Type:                UnknownValue,
		Color:               UnknownValue,
		Material:            UnknownValue,
		Style:               UnknownValue,
		Season:              UnknownValue,
		SustainabilityScore: DefaultSustainabilityScore,
	}
}

// ClothingField names a classification dimension of ClothingItem.
type ClothingField string

const (
	FieldType     ClothingField = "type"
	FieldColor    ClothingField = "color"
	FieldMaterial ClothingField = "material"
	FieldStyle    ClothingField = "style"
	FieldSeason   ClothingField = "season"
)

var ClassificationFields = []ClothingField{FieldType, FieldColor, FieldMaterial, FieldStyle, FieldSeason}

func (c ClothingItem) Field(field ClothingField) string {
	switch field {
	case FieldType:
		return c.Type
	case FieldColor:
		return c.Color
	case FieldMaterial:
		return c.Material
	case FieldStyle:
		return c.Style
	case FieldSeason:
		return c.Season
	default:
		return ""
	}
}

func (c *ClothingItem) SetField(field ClothingField, value string) {
	switch field {
	case FieldType:
		c.Type = value
	case FieldColor:
		c.Color = value
	case FieldMaterial:
		c.Material = value
	case FieldStyle:
		c.Style = value
	case FieldSeason:
		c.Season = value
	}
}

// Outfit is a model-suggested combination. Items keeps the 1-based positions the
// model answered with, ItemIDs the stable ids they resolved to at generation time.
type Outfit struct {
	OutfitName          string  `json:"outfit_name"`
	Description         string  `json:"description"`
	Occasion            string  `json:"occasion"`
	Items               []int   `json:"items"`
	ItemIDs             []uint  `json:"item_ids"`
	SustainabilityScore float64 `json:"sustainability_score"`
}
