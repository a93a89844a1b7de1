package initialization

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"healthbot/services/ai"
	"healthbot/services/openai"
)

var (
	aiProvider ai.Provider
	aiOnce     sync.Once
)

// InitAIProvider initializes the AI provider
func InitAIProvider() (ai.Provider, error) {
	var initErr error
	aiOnce.Do(func() {
		config := GetConfig()
		if !config.IsInitialized() {
			initErr = errors.New("configuration not initialized")
			return
		}

		openai.InitConfig(&openai.Config{
			OpenaiApiKey:            config.OpenaiApiKey,
			OpenaiModel:             config.OpenaiModel,
			HttpProxy:               config.OpenaiProxy,
			OpenAIHttpClientTimeOut: config.OpenaiTimeout,
		})

		// A malformed proxy fails initialization here instead of being
		// silently ignored.
		client, err := openai.NewClient(openai.GetConfig())
		if err != nil {
			initErr = err
			return
		}

		aiFactory := ai.GetFactory()
		if err := aiFactory.Initialize(ai.Config{
			Provider: "openai",
			APIKey:   config.OpenaiApiKey,
			Model:    config.OpenaiModel,
		}); err != nil {
			initErr = err
			return
		}
		aiFactory.SetProvider(client)

		aiProvider = client
	})

	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize AI provider: %w", initErr)
	}

	if aiProvider == nil {
		return nil, errors.New("AI provider not initialized")
	}

	return aiProvider, nil
}

// GetAIProvider returns the initialized AI provider
func GetAIProvider() ai.Provider {
	provider, err := InitAIProvider()
	if err != nil {
		log.Printf("Failed to get AI provider: %v", err)
		return nil
	}
	return provider
}

// ShutdownAIProvider gracefully shuts down the AI provider
func ShutdownAIProvider() error {
	if aiProvider == nil {
		return nil
	}

	err := aiProvider.Close()
	aiProvider = nil
	return err
}

// Chat sends a conversation through the configured provider.
func Chat(ctx context.Context, messages []ai.Message) (string, error) {
	provider := GetAIProvider()
	if provider == nil {
		return "", errors.New("AI provider not available")
	}
	return provider.Chat(ctx, messages)
}
