package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendBolt     = "bolt"
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// Keys are lower-case; viper resolves each one from the matching
// upper-case environment variable.
const (
	KeyPort              = "esg_port"
	KeyLogLevel          = "log_level"
	KeyRequireLogin      = "esg_require_login"
	KeyPreferenceBackend = "esg_preference_backend"
	KeyBoltPath          = "esg_bolt_path"
	KeyStateTable        = "esg_state_table"
	KeyDatabaseURL       = "database_url"
	KeyPreferenceOwner   = "esg_preference_owner"
	KeyProvider          = "esg_provider"
	KeyAPIKey            = "api_key"
	KeyModel             = "esg_model"
	KeyOpenAIBaseURL     = "esg_openai_base_url"
	KeyParamPrefix       = "esg_param_prefix"
	KeyTemperature       = "esg_temperature"
	KeyThinkingDelay     = "esg_thinking_delay"
	KeyRequestTimeout    = "esg_request_timeout"
	KeyNatsURL           = "nats_url"
	KeyNatsToken         = "nats_token"
	KeyEventSubject      = "esg_event_subject"
)

type Config struct {
	Port         int
	LogLevel     string
	RequireLogin bool

	PreferenceBackend string
	BoltPath          string
	StateTable        string
	DatabaseURL       string
	PreferenceOwner   string

	Provider      string
	APIKey        string
	Model         string
	OpenAIBaseURL string
	ParamPrefix   string
	Temperature   *float64

	ThinkingDelay  time.Duration
	RequestTimeout time.Duration

	NatsURL      string
	NatsToken    string
	EventSubject string
}

// New returns a viper instance with every default registered and
// environment lookup enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyRequireLogin, false)
	v.SetDefault(KeyPreferenceBackend, BackendBolt)
	v.SetDefault(KeyBoltPath, "data/preferences.bolt")
	v.SetDefault(KeyStateTable, "")
	v.SetDefault(KeyDatabaseURL, "")
	v.SetDefault(KeyPreferenceOwner, "default")
	v.SetDefault(KeyProvider, ProviderGemini)
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyModel, "")
	v.SetDefault(KeyOpenAIBaseURL, "")
	v.SetDefault(KeyParamPrefix, "")
	v.SetDefault(KeyTemperature, "")
	v.SetDefault(KeyThinkingDelay, 800*time.Millisecond)
	v.SetDefault(KeyRequestTimeout, 30*time.Second)
	v.SetDefault(KeyNatsURL, "")
	v.SetDefault(KeyNatsToken, "")
	v.SetDefault(KeyEventSubject, "esg.assistant")
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads path into the process environment when it exists.
// Variables already set win over the file.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Load reads the environment (and optional .env file) into a Config.
func Load(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, err
	}
	return FromViper(New())
}

func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:              v.GetInt(KeyPort),
		LogLevel:          strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		RequireLogin:      v.GetBool(KeyRequireLogin),
		PreferenceBackend: strings.ToLower(strings.TrimSpace(v.GetString(KeyPreferenceBackend))),
		BoltPath:          strings.TrimSpace(v.GetString(KeyBoltPath)),
		StateTable:        strings.TrimSpace(v.GetString(KeyStateTable)),
		DatabaseURL:       strings.TrimSpace(v.GetString(KeyDatabaseURL)),
		PreferenceOwner:   strings.TrimSpace(v.GetString(KeyPreferenceOwner)),
		Provider:          strings.ToLower(strings.TrimSpace(v.GetString(KeyProvider))),
		APIKey:            strings.TrimSpace(v.GetString(KeyAPIKey)),
		Model:             strings.TrimSpace(v.GetString(KeyModel)),
		OpenAIBaseURL:     strings.TrimSpace(v.GetString(KeyOpenAIBaseURL)),
		ParamPrefix:       strings.TrimRight(strings.TrimSpace(v.GetString(KeyParamPrefix)), "/"),
		ThinkingDelay:     v.GetDuration(KeyThinkingDelay),
		RequestTimeout:    v.GetDuration(KeyRequestTimeout),
		NatsURL:           strings.TrimSpace(v.GetString(KeyNatsURL)),
		NatsToken:         v.GetString(KeyNatsToken),
		EventSubject:      strings.TrimSpace(v.GetString(KeyEventSubject)),
	}
	if raw := strings.TrimSpace(v.GetString(KeyTemperature)); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid ESG_TEMPERATURE %q: %w", raw, err)
		}
		cfg.Temperature = &t
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
		if cfg.Provider == ProviderOpenAI {
			cfg.Model = DefaultOpenAIModel
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	switch c.PreferenceBackend {
	case BackendBolt:
		if c.BoltPath == "" {
			return errors.New("config: ESG_BOLT_PATH is required for the bolt backend")
		}
	case BackendDynamoDB:
		if c.StateTable == "" {
			return errors.New("config: ESG_STATE_TABLE is required for the dynamodb backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("config: unknown preference backend %q", c.PreferenceBackend)
	}
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return fmt.Errorf("config: temperature %v out of range [0, 2]", *c.Temperature)
	}
	if c.ThinkingDelay < 0 || c.RequestTimeout < 0 {
		return errors.New("config: durations must not be negative")
	}
	return nil
}

// APIKeyParam is the SSM parameter holding the generator credential, or
// empty when no prefix is configured.
func (c Config) APIKeyParam() string {
	if c.ParamPrefix == "" {
		return ""
	}
	return c.ParamPrefix + "/api-key"
}

// NeedsAWS reports whether any configured component talks to AWS.
func (c Config) NeedsAWS() bool {
	return c.PreferenceBackend == BackendDynamoDB || (c.APIKey == "" && c.ParamPrefix != "")
}
