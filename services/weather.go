package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"ecostyleapi/models"
)

const (
	mockMinTemp = 35
	mockMaxTemp = 85
)

type WeatherProvider interface {
	Current(ctx context.Context, location string) models.WeatherReading
}

// MockWeatherProvider stands in for a weather API. The location is accepted and
// ignored.
type MockWeatherProvider struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewMockWeatherProvider(seed int64) *MockWeatherProvider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MockWeatherProvider{rnd: rand.New(rand.NewSource(seed))}
}

func (m *MockWeatherProvider) Current(ctx context.Context, location string) models.WeatherReading {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.WeatherReading{
		Temp:      mockMinTemp + m.rnd.Intn(mockMaxTemp-mockMinTemp+1),
		Condition: models.WeatherConditions[m.rnd.Intn(len(models.WeatherConditions))],
	}
}
