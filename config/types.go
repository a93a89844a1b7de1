package config

// Config represents the base application configuration shared by all
// services. Initialization-specific fields live in initialization.Config.
type Config struct {
	BotToken        string
	AdminUserIDs    string
	RequiredGroupID int64
	HttpPort        int
	OpenaiApiKey    string
	OpenaiProxy     string
	OpenaiModel     string
}
