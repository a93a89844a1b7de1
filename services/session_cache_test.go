package services

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"healthbot/services/core"
)

func TestSessionCacheSteps(t *testing.T) {
	cache := GetSessionCache()

	assert.Equal(t, core.StepNone, cache.GetStep("user-1"))

	assert.True(t, cache.SetStep("user-1", core.StepOnboarding))
	assert.Equal(t, core.StepOnboarding, cache.GetStep("user-1"))

	assert.True(t, cache.SetStep("user-1", core.StepWaitingForFood))
	assert.Equal(t, core.StepWaitingForFood, cache.GetStep("user-1"))

	cache.Clear("user-1")
	assert.Equal(t, core.StepNone, cache.GetStep("user-1"))
}

func TestSessionCacheAnswers(t *testing.T) {
	cache := GetSessionCache()
	defer cache.Clear("user-2")

	_, ok := cache.GetAnswer("user-2", "height")
	assert.False(t, ok)

	assert.True(t, cache.SetAnswer("user-2", "height", "175"))
	assert.True(t, cache.SetAnswer("user-2", "weight", "70"))

	height, ok := cache.GetAnswer("user-2", "height")
	assert.True(t, ok)
	assert.Equal(t, "175", height)

	weight, ok := cache.GetAnswer("user-2", "weight")
	assert.True(t, ok)
	assert.Equal(t, "70", weight)
}

func TestSessionCacheStats(t *testing.T) {
	cache := GetSessionCache()
	defer cache.Clear("user-3")

	cache.SetStep("user-3", core.StepDone)

	stats := cache.GetStats()
	assert.GreaterOrEqual(t, stats.ActiveUsers, 1)

	cleaned := cache.CleanExpiredSessions()
	assert.GreaterOrEqual(t, cleaned, 0)
}

func TestSessionCacheSingleton(t *testing.T) {
	assert.Same(t, GetSessionCache(), GetSessionCache())
}

func TestSessionCacheConcurrentAccess(t *testing.T) {
	svc := newSessionService(MaxTotalSessions)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				svc.SetAnswer("shared-user", "weight", strconv.Itoa(j))
				svc.SetStep("shared-user", core.StepWaitingForWeight)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				svc.GetAnswer("shared-user", "weight")
				svc.GetStep("shared-user")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, core.StepWaitingForWeight, svc.GetStep("shared-user"))
	_, ok := svc.GetAnswer("shared-user", "weight")
	assert.True(t, ok)
}

func TestSessionCacheCap(t *testing.T) {
	svc := newSessionService(2)

	assert.True(t, svc.SetStep("cap-1", core.StepOnboarding))
	assert.True(t, svc.SetAnswer("cap-2", "height", "180"))

	// New sessions are refused at the cap, existing ones stay writable.
	assert.False(t, svc.SetStep("cap-3", core.StepOnboarding))
	assert.False(t, svc.SetAnswer("cap-3", "height", "170"))
	assert.Equal(t, core.StepNone, svc.GetStep("cap-3"))
	assert.True(t, svc.SetStep("cap-1", core.StepDone))

	assert.Equal(t, int32(2), svc.GetStats().TotalSessions)

	// Clearing a session frees room for a new one.
	svc.Clear("cap-1")
	assert.True(t, svc.SetStep("cap-3", core.StepOnboarding))
	assert.False(t, svc.SetStep("cap-4", core.StepOnboarding))
}
