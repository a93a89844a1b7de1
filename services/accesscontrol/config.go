package accesscontrol

import (
	"sync"
)

// Config holds the access control settings.
type Config struct {
	AdminUserIDs                       []int64
	AccessControlMaxCountPerUserPerDay int
}

var (
	accessConfig *Config
	configOnce   sync.Once
)

// InitConfig initializes the access control configuration
func InitConfig(cfg *Config) {
	configOnce.Do(func() {
		accessConfig = cfg
	})
}

// GetConfig returns the access control configuration
func GetConfig() *Config {
	if accessConfig == nil {
		return &Config{}
	}
	return accessConfig
}
