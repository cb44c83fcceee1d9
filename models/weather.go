package models

type WeatherCondition string

const (
	ConditionClear  WeatherCondition = "Clear"
	ConditionCloudy WeatherCondition = "Cloudy"
	ConditionRainy  WeatherCondition = "Rainy"
	ConditionWindy  WeatherCondition = "Windy"
	ConditionSnowy  WeatherCondition = "Snowy"
)

var WeatherConditions = []WeatherCondition{
	ConditionClear,
	ConditionCloudy,
	ConditionRainy,
	ConditionWindy,
	ConditionSnowy,
}

// WeatherReading is replaced wholesale on refresh, never merged.
type WeatherReading struct {
	Temp      int              `json:"temp"` // fahrenheit
	Condition WeatherCondition `json:"condition"`
}

func DefaultWeatherReading() WeatherReading {
	return WeatherReading{Temp: 68, Condition: ConditionClear}
}
