package initialization

import (
	"fmt"

	"healthbot/services"
	"healthbot/services/accesscontrol"
	"healthbot/services/factory"
	"healthbot/services/foodrecognition"
	"healthbot/services/openai"
	"healthbot/services/reminder"
)

// InitializeServices initializes all services
func InitializeServices() error {
	// Get service factory instance
	serviceFactory := factory.GetInstance()

	// Initialize session cache
	sessionCache := services.GetSessionCache()
	serviceFactory.SetSessionCache(sessionCache)

	// Get configuration
	config := GetConfig()

	// Initialize access control
	err := accesscontrol.InitAccessControl(&accesscontrol.Config{
		AdminUserIDs:                       config.AdminIDs(),
		AccessControlMaxCountPerUserPerDay: config.AccessControlMaxCountPerUserPerDay,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize access control: %w", err)
	}

	// Initialize OpenAI-backed AI provider
	provider, err := InitAIProvider()
	if err != nil {
		return err
	}
	serviceFactory.SetAIProvider(provider)

	// Initialize food recognition on top of the same client
	client, ok := provider.(*openai.Client)
	if !ok {
		return fmt.Errorf("unexpected AI provider type %T", provider)
	}
	serviceFactory.SetFoodRecognition(foodrecognition.NewService(client, config.OpenaiModel))

	// Initialize the daily reminder schedule
	schedule, err := reminder.NewSchedule(
		config.DefaultTimezone,
		config.WaterReminderHours(),
		config.MorningGreetingHour,
		config.EveningReportHour,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize reminder schedule: %w", err)
	}
	serviceFactory.SetReminderSchedule(schedule)

	return nil
}

// ShutdownServices gracefully shuts down all services
func ShutdownServices() error {
	return ShutdownAIProvider()
}
