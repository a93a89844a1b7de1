package openai

// Config represents OpenAI-specific configuration
type Config struct {
	OpenaiApiKey string
	OpenaiApiUrl string
	OpenaiModel  string
	HttpProxy    string

	// HTTP client config
	OpenAIHttpClientTimeOut int
}

var globalConfig *Config

// InitConfig initializes the OpenAI configuration
func InitConfig(cfg *Config) {
	globalConfig = cfg
}

// GetConfig returns the OpenAI configuration
func GetConfig() *Config {
	return globalConfig
}
