// services/analysis_cache.go
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

// Re-uploading the same photo within this window reuses the earlier analysis.
const analysisCacheExpiration = 6 * time.Hour

// CachedAnalyzer wraps a GenerativeModel and memoizes image analyses by content hash.
// Only answers with a readable JSON object are kept, so a bad answer is retried on the
// next upload. The cache is best effort: ristretto may drop or delay writes.
type CachedAnalyzer struct {
	model GenerativeModel
	cache *cache.Cache[*LLMResponse]
}

func NewCachedAnalyzer(model GenerativeModel) (*CachedAnalyzer, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 24, // 16MB of response text
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)
	fmt.Println("Initialized CachedAnalyzer with Ristretto cache!")
	return &CachedAnalyzer{
		model: model,
		cache: cache.New[*LLMResponse](ristrettoStore),
	}, nil
}

func analysisCacheKey(image []byte, mimeType string) string {
	sum := sha256.Sum256(image)
	return mimeType + ":" + hex.EncodeToString(sum[:])
}

func (a *CachedAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) (*LLMResponse, error) {
	key := analysisCacheKey(image, mimeType)
	if cached, err := a.cache.Get(ctx, key); err == nil && cached != nil {
		log.Printf("CACHE HIT for analysis %s", key)
		return cached, nil
	}

	response, err := a.model.Analyze(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}
	if response != nil {
		if _, ok := ExtractObject(response.Response); ok {
			setErr := a.cache.Set(ctx, key, response,
				store.WithExpiration(analysisCacheExpiration),
				store.WithCost(int64(len(response.Response))),
			)
			if setErr != nil {
				log.Printf("CACHE WARNING: could not store analysis %s: %v", key, setErr)
			}
		}
	}
	return response, nil
}

// Generate is never cached, every outfit request reaches the model.
func (a *CachedAnalyzer) Generate(ctx context.Context, prompt string) (*LLMResponse, error) {
	return a.model.Generate(ctx, prompt)
}
