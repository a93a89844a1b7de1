package accesscontrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Config init is once-guarded, so every test runs against the same config.
func initTestConfig(t *testing.T) {
	t.Helper()
	require.NoError(t, InitAccessControl(&Config{
		AdminUserIDs:                       []int64{1001, 2002},
		AccessControlMaxCountPerUserPerDay: 2,
	}))
}

func TestAccessControlQuota(t *testing.T) {
	initTestConfig(t)

	assert.True(t, CheckAllowAccessThenIncrement("42"))
	assert.True(t, CheckAllowAccessThenIncrement("42"))
	assert.False(t, CheckAllowAccessThenIncrement("42"))

	// Other users are unaffected.
	assert.True(t, CheckAllowAccessThenIncrement("43"))
}

func TestAccessControlAdminsUnlimited(t *testing.T) {
	initTestConfig(t)

	for i := 0; i < 10; i++ {
		assert.True(t, CheckAllowAccessThenIncrement("1001"))
	}
}

func TestIsAdmin(t *testing.T) {
	initTestConfig(t)

	assert.True(t, IsAdmin("1001"))
	assert.True(t, IsAdmin("2002"))
	assert.False(t, IsAdmin("3003"))
	assert.False(t, IsAdmin("not-a-number"))
}

func TestDayRollover(t *testing.T) {
	initTestConfig(t)

	assert.True(t, CheckAllowAccessThenIncrement("77"))
	assert.True(t, CheckAllowAccessThenIncrement("77"))
	assert.False(t, CheckAllowAccessThenIncrement("77"))

	// Simulate a date change: counters must reset.
	currentDateFlag = "2000-01-01"
	assert.True(t, CheckAllowAccessThenIncrement("77"))
}
