package models

import (
	"slices"

	"github.com/go-playground/validator"
)

type Occasion string

const (
	OccasionCasualDay     Occasion = "Casual Day"
	OccasionWorkOffice    Occasion = "Work/Office"
	OccasionFormalEvent   Occasion = "Formal Event"
	OccasionWorkout       Occasion = "Workout"
	OccasionDateNight     Occasion = "Date Night"
	OccasionWeekendOuting Occasion = "Weekend Outing"
)

var Occasions = []Occasion{
	OccasionCasualDay,
	OccasionWorkOffice,
	OccasionFormalEvent,
	OccasionWorkout,
	OccasionDateNight,
	OccasionWeekendOuting,
}

func ValidateOccasionRaw(value string) bool {
	return slices.Contains(Occasions, Occasion(value))
}

// ValidateOccasion is registered as the "occasion" validator tag.
func ValidateOccasion(fl validator.FieldLevel) bool {
	return ValidateOccasionRaw(fl.Field().String())
}

type FeedbackAction string

const (
	FeedbackLike    FeedbackAction = "like"
	FeedbackDislike FeedbackAction = "dislike"
	FeedbackSave    FeedbackAction = "save"
)

// Message is what the user sees after giving feedback. Feedback has no stored effect.
func (f FeedbackAction) Message() string {
	switch f {
	case FeedbackLike:
		return "Great! We'll recommend more like this."
	case FeedbackDislike:
		return "Thanks for the feedback. We'll adjust our recommendations."
	case FeedbackSave:
		return "Outfit saved to your favorites!"
	default:
		return ""
	}
}
