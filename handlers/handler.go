package handlers

import (
	"fmt"
	"sync"

	"healthbot/initialization"
	"healthbot/services/factory"
)

var initOnce sync.Once

// InitHandlers prepares the handler layer. Services must already be wired
// into the factory.
func InitHandlers(config initialization.Config) error {
	var initErr error
	initOnce.Do(func() {
		if !config.IsInitialized() {
			initErr = fmt.Errorf("configuration not initialized")
			return
		}
		if factory.GetInstance().GetFoodRecognition() == nil {
			initErr = fmt.Errorf("food recognition service not initialized")
			return
		}
	})
	return initErr
}
