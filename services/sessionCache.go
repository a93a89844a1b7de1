package services

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"healthbot/services/core"
	"healthbot/utils"
)

// Cache tuning constants.
const (
	DefaultExpiration = 12 * time.Hour
	CleanupInterval   = 1 * time.Hour
	MaxTotalSessions  = 10000
)

// SessionService stores per-user dialog state.
type SessionService struct {
	cache       *cache.Cache
	mu          sync.RWMutex
	maxSessions int

	totalSessions int32
	stats         core.SessionStats
}

var (
	sessionService *SessionService
	sessionOnce    sync.Once
)

// GetSessionCache returns the session cache singleton.
func GetSessionCache() core.SessionCache {
	sessionOnce.Do(func() {
		sessionService = newSessionService(MaxTotalSessions)
		go sessionService.periodicCleanup()
	})
	return sessionService
}

func newSessionService(maxSessions int) *SessionService {
	return &SessionService{
		cache:       cache.New(DefaultExpiration, CleanupInterval),
		maxSessions: maxSessions,
	}
}

// GetStep returns the user's current dialog step.
func (s *SessionService) GetStep(userID string) core.Step {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta, ok := s.metaLocked(userID)
	if !ok {
		return core.StepNone
	}
	return meta.Step
}

// SetStep moves the user to a new dialog step. Returns false when a new
// session cannot be created because the total session cap is reached.
func (s *SessionService) SetStep(userID string, step core.Step) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, ok := s.getOrCreateMetaLocked(userID)
	if !ok {
		utils.Warnf("session cache: session cap %d reached, refusing new session for user %s", s.maxSessions, userID)
		return false
	}
	meta.Step = step
	meta.UpdatedAt = time.Now()
	s.cache.Set(userID, meta, DefaultExpiration)
	return true
}

// GetAnswer returns a stored questionnaire answer.
func (s *SessionService) GetAnswer(userID, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta, ok := s.metaLocked(userID)
	if !ok || meta.Answers == nil {
		return "", false
	}
	value, ok := meta.Answers[key]
	return value, ok
}

// SetAnswer stores a questionnaire answer. Returns false when a new
// session cannot be created because the total session cap is reached.
func (s *SessionService) SetAnswer(userID, key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, ok := s.getOrCreateMetaLocked(userID)
	if !ok {
		utils.Warnf("session cache: session cap %d reached, refusing new session for user %s", s.maxSessions, userID)
		return false
	}
	if meta.Answers == nil {
		meta.Answers = make(map[string]string)
	}
	meta.Answers[key] = value
	meta.MessageNum++
	meta.UpdatedAt = time.Now()
	s.cache.Set(userID, meta, DefaultExpiration)
	return true
}

// Clear removes the user's session.
func (s *SessionService) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache.Get(userID); ok {
		s.cache.Delete(userID)
		atomic.AddInt32(&s.totalSessions, -1)
	}
}

// GetStats returns current session statistics.
func (s *SessionService) GetStats() core.SessionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := s.stats
	stats.TotalSessions = atomic.LoadInt32(&s.totalSessions)
	stats.ActiveUsers = s.cache.ItemCount()
	return stats
}

// CleanExpiredSessions drops expired entries and reconciles counters.
// Returns the number of sessions removed.
func (s *SessionService) CleanExpiredSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.cache.ItemCount()
	s.cache.DeleteExpired()
	cleaned := before - s.cache.ItemCount()

	atomic.StoreInt32(&s.totalSessions, int32(s.cache.ItemCount()))
	s.stats.LastCleanupTime = time.Now()
	s.stats.CleanedSessions += cleaned

	if cleaned > 0 {
		utils.Infof("session cache: cleaned %d expired sessions", cleaned)
	}

	return cleaned
}

// metaLocked must be called with s.mu held; the returned pointer is only
// safe to dereference while the lock is still held.
func (s *SessionService) metaLocked(userID string) (*core.SessionMeta, bool) {
	raw, ok := s.cache.Get(userID)
	if !ok {
		return nil, false
	}
	meta, ok := raw.(*core.SessionMeta)
	return meta, ok
}

// getOrCreateMetaLocked must be called with s.mu held for writing.
// Returns false when the session does not exist yet and the total
// session cap leaves no room for it.
func (s *SessionService) getOrCreateMetaLocked(userID string) (*core.SessionMeta, bool) {
	if meta, ok := s.metaLocked(userID); ok {
		return meta, true
	}

	if int(atomic.LoadInt32(&s.totalSessions)) >= s.maxSessions {
		// Counter may drift from expired entries, reconcile before refusing.
		atomic.StoreInt32(&s.totalSessions, int32(s.cache.ItemCount()))
		if s.cache.ItemCount() >= s.maxSessions {
			return nil, false
		}
	}

	atomic.AddInt32(&s.totalSessions, 1)

	return &core.SessionMeta{
		UserID:    userID,
		UpdatedAt: time.Now(),
	}, true
}

func (s *SessionService) periodicCleanup() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.CleanExpiredSessions()
	}
}
