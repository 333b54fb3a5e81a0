package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/tailscale/hujson"
	"log"
	"os"
	"strings"
)

const (
	configVarName  = "CONFIG"                      // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "../../dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "../../dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

const (
	defaultApiBaseUrl        = "https://api.twitter.com/1.1"
	defaultApiTokenUrl       = "https://api.twitter.com/oauth2/token"
	defaultRequestTimeoutSec = 10
	defaultRetentionLimit    = 100
	defaultSyncIntervalMin   = 60
	defaultFeedCount         = 10
	defaultProfileKeepDays   = 3
)

// ErrConfigMissing is returned when the API credentials needed for any remote fetch are absent.
var ErrConfigMissing = errors.New("required API credentials missing")

type Config struct {
	Secrets             Secrets  `json:"-"`
	LogFile             string   `json:"log_file"`
	LogLevel            string   `json:"log_level"`
	ServicePort         uint     `json:"service_port"`
	DbFile              string   `json:"db_file"`
	ApiBaseUrl          string   `json:"api_base_url"`
	ApiTokenUrl         string   `json:"api_token_url"`
	RequestTimeoutSec   int      `json:"request_timeout_sec"`
	RetentionLimit      int      `json:"retention_limit"`
	SyncIntervalMin     int      `json:"sync_interval_min"`
	DefaultFeedCount    int      `json:"default_feed_count"`
	TrackedAccounts     []string `json:"tracked_accounts"`
	BlockedAccountsFile string   `json:"blocked_accounts_file"`
	ProfileDir          string   `json:"profile_dir"`
	ProfileKeepDays     int      `json:"profile_keep_days"`
}

type Secrets struct {
	ApiKey       string   `json:"api_key" env:"TIMELINE_API_KEY"`
	ApiKeySecret string   `json:"api_key_secret" env:"TIMELINE_API_KEY_SECRET"`
	BearerToken  string   `json:"bearer_token" env:"TIMELINE_BEARER_TOKEN"`
	MetricsAuth  string   `json:"metrics_auth" env:"TIMELINE_METRICS_AUTH"`
	ApiKeys      []string `json:"api_keys" env:"TIMELINE_API_KEYS"`
}

// CheckCredentials tells whether the remote API can be called at all:
// either a bearer token, or an API key with its secret.
func (s *Secrets) CheckCredentials() error {
	if s.BearerToken != "" {
		return nil
	}
	var missing []string
	if s.ApiKey == "" {
		missing = append(missing, "api_key")
	}
	if s.ApiKeySecret == "" {
		missing = append(missing, "api_key_secret")
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s (or bearer_token)", ErrConfigMissing, strings.Join(missing, ", "))
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Secrets file is optional if everything comes from the environment
	if _, err := os.Stat(secretsPath); err == nil {
		mustDeserializeFile(secretsPath, &config.Secrets)
	}
	// Environment wins over secrets file
	if err := env.Parse(&config.Secrets); err != nil {
		log.Fatal(err)
	}
	config.ApplyDefaults()
	return &config
}

// ApplyDefaults fills in zero-valued settings.
func (cfg *Config) ApplyDefaults() {
	if cfg.ApiBaseUrl == "" {
		cfg.ApiBaseUrl = defaultApiBaseUrl
	}
	cfg.ApiBaseUrl = strings.TrimRight(cfg.ApiBaseUrl, "/")
	if cfg.ApiTokenUrl == "" {
		cfg.ApiTokenUrl = defaultApiTokenUrl
	}
	if cfg.RequestTimeoutSec <= 0 {
		cfg.RequestTimeoutSec = defaultRequestTimeoutSec
	}
	if cfg.RetentionLimit == 0 {
		cfg.RetentionLimit = defaultRetentionLimit
	}
	if cfg.SyncIntervalMin <= 0 {
		cfg.SyncIntervalMin = defaultSyncIntervalMin
	}
	if cfg.DefaultFeedCount <= 0 {
		cfg.DefaultFeedCount = defaultFeedCount
	}
	if cfg.ProfileKeepDays <= 0 {
		cfg.ProfileKeepDays = defaultProfileKeepDays
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
