package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mrsameer/rag-with-gemini/internal/entity"
)

// SessionRepository keeps per-session state in memory. Sessions idle past the
// expiration window are evicted; callers then re-open a session.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *entity.Session) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*entity.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*entity.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
