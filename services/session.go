package services

import (
	"fmt"
	"sync"
	"time"

	"ecostyleapi/models"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// PendingAnalysis is an analyzed upload waiting for the user to confirm it.
type PendingAnalysis struct {
	Result   AnalysisResult
	Image    []byte
	MIMEType string
}

// Session owns everything one user works with. Handlers take Lock for the whole
// request, so a session sees one request at a time.
type Session struct {
	sync.Mutex
	ID       string
	Wardrobe *Wardrobe
	Outfits  []models.Outfit
	// occasion picked for the last generation, informational only
	Occasion string
	Weather  models.WeatherReading
	Pending  *PendingAnalysis
}

func NewSession(id string) *Session {
	return &Session{
		ID:       id,
		Wardrobe: NewWardrobe(),
		Outfits:  []models.Outfit{},
		Weather:  models.DefaultWeatherReading(),
	}
}

// ReplaceOutfits swaps in a new generation, the previous one is discarded.
func (s *Session) ReplaceOutfits(outfits []models.Outfit, occasion string) {
	if outfits == nil {
		outfits = []models.Outfit{}
	}
	s.Outfits = outfits
	s.Occasion = occasion
}

// SessionRegistry keeps sessions in memory until they sit idle for the TTL.
type SessionRegistry struct {
	sessions *cache.Cache
	ttl      time.Duration
	metrics  *PipelineMetrics
}

// NewSessionRegistry takes the metrics whose wardrobe gauge loses a session's items
// when it is deleted or expires. metrics may be nil.
func NewSessionRegistry(ttl time.Duration, metrics *PipelineMetrics) *SessionRegistry {
	r := &SessionRegistry{
		sessions: cache.New(ttl, ttl*2),
		ttl:      ttl,
		metrics:  metrics,
	}
	r.sessions.OnEvicted(r.evicted)
	return r
}

// evicted runs for Delete and for janitor expiry. Delete is called by the request
// holding the session lock, and an expired session has no request in flight, so the
// wardrobe is read without locking.
func (r *SessionRegistry) evicted(id string, value interface{}) {
	session, ok := value.(*Session)
	if !ok {
		return
	}
	r.metrics.SessionRemoved(session.Wardrobe.Len())
	fmt.Printf("[Session: %s] Removed with %d items\n", id, session.Wardrobe.Len())
}

func (r *SessionRegistry) Create() *Session {
	session := NewSession(uuid.NewString())
	r.sessions.Set(session.ID, session, cache.DefaultExpiration)
	fmt.Printf("[Session: %s] Created\n", session.ID)
	return session
}

// Get returns the session and pushes its expiry forward.
func (r *SessionRegistry) Get(id string) (*Session, error) {
	value, found := r.sessions.Get(id)
	if !found {
		return nil, ErrSessionNotFound
	}
	session, ok := value.(*Session)
	if !ok {
		return nil, ErrSessionNotFound
	}
	r.sessions.Set(id, session, cache.DefaultExpiration)
	return session, nil
}

func (r *SessionRegistry) Delete(id string) {
	r.sessions.Delete(id)
}

func (r *SessionRegistry) Count() int {
	return r.sessions.ItemCount()
}
