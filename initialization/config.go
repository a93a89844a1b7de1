package initialization

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	baseconfig "healthbot/config"
)

// Config extends the base config with initialization-specific fields
type Config struct {
	baseconfig.Config
	// Additional initialization-specific fields
	Initialized                        bool
	EnableLog                          bool
	Debug                              bool
	LogLevel                           string
	DefaultTimezone                    string
	WaterReminderHoursRaw              string
	EveningReportHour                  int
	MorningGreetingHour                int
	OpenaiTimeout                      int
	AccessControlMaxCountPerUserPerDay int
	HttpsPort                          int
	UseHttps                           bool
	CertFile                           string
	KeyFile                            string
}

var (
	cfgPath        = pflag.StringP("config", "c", "./config.yaml", "bot config file path.")
	configInstance *Config
	once           sync.Once
)

/*
GetConfig will call LoadConfig once and return a global singleton, you should always use this function to get config
*/
func GetConfig() *Config {
	once.Do(func() {
		configInstance = LoadConfig(*cfgPath)
		configInstance.Initialized = true
	})

	return configInstance
}

/*
LoadConfig will load config and should only be called once, you should always use GetConfig to get config rather than
call this function directly
*/
func LoadConfig(cfgPath string) *Config {
	viper.SetConfigFile(cfgPath)
	viper.ReadInConfig()
	viper.AutomaticEnv()

	configObj := &Config{
		Config: baseconfig.Config{
			BotToken:        getViperStringValue("BOT_TOKEN", ""),
			AdminUserIDs:    getViperStringValue("ADMIN_USER_IDS", ""),
			RequiredGroupID: getViperInt64Value("REQUIRED_GROUP_ID", 0),
			HttpPort:        getViperIntValue("HTTP_PORT", 9000),
			OpenaiApiKey:    getViperStringValue("OPENAI_API_KEY", ""),
			OpenaiProxy:     getViperStringValue(baseconfig.ProxyKey, ""),
			OpenaiModel:     getViperStringValue("OPENAI_MODEL", "gpt-4o-mini"),
		},
		EnableLog:                          getViperBoolValue("ENABLE_LOG", false),
		Debug:                              getViperBoolValue("DEBUG", false),
		LogLevel:                           getViperStringValue("LOG_LEVEL", "INFO"),
		DefaultTimezone:                    getViperStringValue("DEFAULT_TIMEZONE", "Europe/Moscow"),
		WaterReminderHoursRaw:              getViperStringValue("WATER_REMINDER_HOURS", "11,15"),
		EveningReportHour:                  getViperIntValue("EVENING_REPORT_HOUR", 22),
		MorningGreetingHour:                getViperIntValue("MORNING_GREETING_HOUR", 8),
		OpenaiTimeout:                      getViperIntValue("OPENAI_TIMEOUT", 60),
		AccessControlMaxCountPerUserPerDay: getViperIntValue("ACCESS_CONTROL_MAX_COUNT_PER_USER_PER_DAY", 0),
		HttpsPort:                          getViperIntValue("HTTPS_PORT", 9001),
		UseHttps:                           getViperBoolValue("USE_HTTPS", false),
		CertFile:                           getViperStringValue("CERT_FILE", "cert.pem"),
		KeyFile:                            getViperStringValue("KEY_FILE", "key.pem"),
	}

	return configObj
}

// IsInitialized reports whether the config singleton has been loaded.
func (c *Config) IsInitialized() bool {
	return c != nil && c.Initialized
}

// AdminIDs parses the comma-separated admin user ID list, skipping blanks
// and malformed entries.
func (c *Config) AdminIDs() []int64 {
	if c.AdminUserIDs == "" {
		return nil
	}

	var ids []int64
	for _, part := range strings.Split(c.AdminUserIDs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			fmt.Printf("Invalid admin user ID %q, skipping\n", part)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// WaterReminderHours parses the comma-separated reminder hour list.
func (c *Config) WaterReminderHours() []int {
	var hours []int
	for _, part := range strings.Split(c.WaterReminderHoursRaw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		hour, err := strconv.Atoi(part)
		if err != nil || hour < 0 || hour > 23 {
			fmt.Printf("Invalid water reminder hour %q, skipping\n", part)
			continue
		}
		hours = append(hours, hour)
	}
	return hours
}

// ResolveProxy resolves the configured OpenAI proxy URL.
func (c *Config) ResolveProxy() (*baseconfig.ProxyConfig, error) {
	return baseconfig.ResolveProxy(c.OpenaiProxy)
}

func getViperStringValue(key string, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getViperIntValue(key string, defaultValue int) int {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		fmt.Printf("Invalid value for %s, using default value %d\n", key, defaultValue)
		return defaultValue
	}
	return intValue
}

func getViperInt64Value(key string, defaultValue int64) int64 {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		fmt.Printf("Invalid value for %s, using default value %d\n", key, defaultValue)
		return defaultValue
	}
	return intValue
}

func getViperBoolValue(key string, defaultValue bool) bool {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		fmt.Printf("Invalid value for %s, using default value %v\n", key, defaultValue)
		return defaultValue
	}
	return boolValue
}

func (c *Config) GetCertFile() string {
	if c.CertFile == "" {
		return "cert.pem"
	}
	if _, err := os.Stat(c.CertFile); err != nil {
		fmt.Printf("Certificate file %s does not exist, using default file cert.pem\n", c.CertFile)
		return "cert.pem"
	}
	return c.CertFile
}

func (c *Config) GetKeyFile() string {
	if c.KeyFile == "" {
		return "key.pem"
	}
	if _, err := os.Stat(c.KeyFile); err != nil {
		fmt.Printf("Key file %s does not exist, using default file key.pem\n", c.KeyFile)
		return "key.pem"
	}
	return c.KeyFile
}
