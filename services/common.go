package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		fmt.Printf("Invalid duration %q for %s, using %s\n", value, key, fallback)
		return fallback
	}
	return duration
}

// FieldLabel turns a payload key into a display label: "sustainability_score"
// becomes "Sustainability Score".
func FieldLabel(key string) string {
	// a Caser is stateful, one per call
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// ScoreDisplay renders a score the way the closet shows it, "6/10" or "6.5/10".
func ScoreDisplay(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64) + "/10"
}
