package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Elastic   ElasticConfig
	Auth      AuthConfig
	Locator   LocatorConfig
	Messaging MessagingConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	ConnStr string
}

type RedisConfig struct {
	Addr     string
	Password string
	CacheTTL time.Duration
	RouteTTL time.Duration
}

type KafkaConfig struct {
	Brokers      []string
	InboundTopic string
	GroupID      string
}

type ElasticConfig struct {
	ConnStr string
	Index   string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	APIKey    string
}

// LocatorConfig drives the nearby-facility pipeline.
type LocatorConfig struct {
	OverpassURL     string
	OverpassTimeout time.Duration
	RadiusMeters    int
	OSRMURL         string
	OSRMTimeout     time.Duration
	RefineLimit     int
	RefineDelay     time.Duration
	MaxResults      int
	OverridesFile   string
	SessionTTL      time.Duration
}

type MessagingConfig struct {
	TwilioBaseURL    string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
}

// Load reads the process environment, after merging an optional .env file.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "80"),
		},
		Database: DatabaseConfig{
			ConnStr: getEnv("DB_CONN_STR", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("RedisAddr", ""),
			Password: getEnv("RedisPassword", ""),
			CacheTTL: getEnvAsDuration("CACHE_TTL", 5*time.Minute),
			RouteTTL: getEnvAsDuration("ROUTE_CACHE_TTL", 24*time.Hour),
		},
		Kafka: KafkaConfig{
			Brokers:      getEnvAsList("KAFKA_BROKERS"),
			InboundTopic: getEnv("KAFKA_INBOUND_TOPIC", "topic.messages.inbound"),
			GroupID:      getEnv("KAFKA_GROUP_ID", "inbound-message-relay"),
		},
		Elastic: ElasticConfig{
			ConnStr: getEnv("ELASTIC_CONN_STR", ""),
			Index:   getEnv("ELASTIC_HOSPITAL_INDEX", "hospitals"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 7*24*time.Hour),
			APIKey:    getEnv("ApiKey", ""),
		},
		Locator: LocatorConfig{
			OverpassURL:     getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
			OverpassTimeout: getEnvAsDuration("OVERPASS_TIMEOUT", 25*time.Second),
			RadiusMeters:    getEnvAsInt("SEARCH_RADIUS_METERS", 10000),
			OSRMURL:         getEnv("OSRM_URL", "https://router.project-osrm.org"),
			OSRMTimeout:     getEnvAsDuration("OSRM_TIMEOUT", 5*time.Second),
			RefineLimit:     getEnvAsInt("REFINE_LIMIT", 5),
			RefineDelay:     getEnvAsDuration("REFINE_DELAY", 200*time.Millisecond),
			MaxResults:      getEnvAsInt("MAX_RESULTS", 50),
			OverridesFile:   getEnv("OVERRIDES_FILE", "overrides.yaml"),
			SessionTTL:      getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		},
		Messaging: MessagingConfig{
			TwilioBaseURL:    getEnv("TWILIO_BASE_URL", "https://api.twilio.com"),
			TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			TwilioFrom:       getEnv("TWILIO_WHATSAPP_FROM", ""),
		},
	}, nil
}

func (c *KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func (c *MessagingConfig) Enabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFrom != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
