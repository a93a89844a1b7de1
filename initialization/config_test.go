package initialization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	baseconfig "healthbot/config"
)

func TestAdminIDs(t *testing.T) {
	cfg := &Config{Config: baseconfig.Config{AdminUserIDs: "123, 456,,789, oops"}}
	assert.Equal(t, []int64{123, 456, 789}, cfg.AdminIDs())

	empty := &Config{}
	assert.Nil(t, empty.AdminIDs())
}

func TestWaterReminderHours(t *testing.T) {
	cfg := &Config{WaterReminderHoursRaw: "11, 15"}
	assert.Equal(t, []int{11, 15}, cfg.WaterReminderHours())

	bad := &Config{WaterReminderHoursRaw: "11,25,abc, 15,"}
	assert.Equal(t, []int{11, 15}, bad.WaterReminderHours())
}

func TestResolveProxyFromConfig(t *testing.T) {
	cfg := &Config{Config: baseconfig.Config{OpenaiProxy: "http://proxy.example.com:8080"}}
	proxy, err := cfg.ResolveProxy()
	assert.NoError(t, err)
	assert.Equal(t, "proxy.example.com", proxy.Host)

	none := &Config{}
	proxy, err = none.ResolveProxy()
	assert.NoError(t, err)
	assert.Nil(t, proxy)

	broken := &Config{Config: baseconfig.Config{OpenaiProxy: "ftp://host:1"}}
	_, err = broken.ResolveProxy()
	assert.Error(t, err)
}
