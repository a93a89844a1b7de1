package factory

import (
	"sync"

	"healthbot/services/ai"
	"healthbot/services/core"
	"healthbot/services/foodrecognition"
	"healthbot/services/reminder"
)

// ServiceFactory manages service instances
type ServiceFactory struct {
	sessionCache     core.SessionCache
	aiProvider       ai.Provider
	foodRecognition  *foodrecognition.Service
	reminderSchedule *reminder.Schedule
}

var (
	instance *ServiceFactory
	once     sync.Once
)

// GetInstance returns the singleton instance of ServiceFactory
func GetInstance() *ServiceFactory {
	once.Do(func() {
		instance = &ServiceFactory{}
	})
	return instance
}

// SetSessionCache sets the session cache instance
func (f *ServiceFactory) SetSessionCache(cache core.SessionCache) {
	f.sessionCache = cache
}

// SetAIProvider sets the AI provider instance
func (f *ServiceFactory) SetAIProvider(provider ai.Provider) {
	f.aiProvider = provider
}

// SetFoodRecognition sets the food recognition service instance
func (f *ServiceFactory) SetFoodRecognition(svc *foodrecognition.Service) {
	f.foodRecognition = svc
}

// SetReminderSchedule sets the reminder schedule instance
func (f *ServiceFactory) SetReminderSchedule(schedule *reminder.Schedule) {
	f.reminderSchedule = schedule
}

// GetSessionCache returns the session cache instance
func (f *ServiceFactory) GetSessionCache() core.SessionCache {
	return f.sessionCache
}

// GetAIProvider returns the AI provider instance
func (f *ServiceFactory) GetAIProvider() ai.Provider {
	return f.aiProvider
}

// GetFoodRecognition returns the food recognition service instance
func (f *ServiceFactory) GetFoodRecognition() *foodrecognition.Service {
	return f.foodRecognition
}

// GetReminderSchedule returns the reminder schedule instance
func (f *ServiceFactory) GetReminderSchedule() *reminder.Schedule {
	return f.reminderSchedule
}
