// Package config resolves runtime settings from defaults, an optional
// ~/.awards/config.toml, a .env file and AWARDS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "AWARDS"
	configDir  = ".awards"
	configName = "config"
	configType = "toml"
	dotEnvFile = ".env"

	KeyAPIBaseURL        = "api.base_url"
	KeyOAuthAuthorizeURL = "oauth.authorize_url"
	KeyOAuthTokenURL     = "oauth.token_url"
	KeyOAuthAPIURL       = "oauth.api_url"
	KeyOAuthClientID     = "oauth.client_id"
	KeyOAuthClientSecret = "oauth.client_secret"
	KeyOAuthAPIVersion   = "oauth.api_version"
	KeyOAuthDisplay      = "oauth.display"
	KeyAuthListen        = "auth.listen"
	KeyAuthTimeout       = "auth.timeout"
	KeySessionPath       = "session.path"
	KeySecretsPath       = "secrets.path"
	KeySecretsBackend    = "secrets.backend"
	KeyLogLevel          = "log.level"
	KeyRosterPath        = "roster.path"
)

type Config struct {
	APIBaseURL string
	OAuth      OAuth
	Session    Session
	LogLevel   slog.Level
	// RosterPath points at a participants roster. Empty uses the built-in one.
	RosterPath string
}

type OAuth struct {
	AuthorizeURL string
	TokenURL     string
	APIURL       string
	ClientID     string
	ClientSecret string
	APIVersion   string
	Display      string
	ListenAddr   string
	Timeout      time.Duration
}

type Session struct {
	Path           string
	SecretsPath    string
	SecretsBackend SecretsBackend
}

// SecretsBackend selects where the voter token is kept.
type SecretsBackend string

const (
	SecretsAuto SecretsBackend = "auto"
	SecretsFile SecretsBackend = "file"
	SecretsPass SecretsBackend = "pass"
)

// Load reads the configuration into v. A nil v gets a fresh viper instance.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	setDefaults(v, baseDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)
	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	level, err := ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, err
	}

	timeout := v.GetDuration(KeyAuthTimeout)
	if timeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %q", KeyAuthTimeout, v.GetString(KeyAuthTimeout))
	}

	cfg := Config{
		APIBaseURL: strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
		OAuth: OAuth{
			AuthorizeURL: strings.TrimSpace(v.GetString(KeyOAuthAuthorizeURL)),
			TokenURL:     strings.TrimSpace(v.GetString(KeyOAuthTokenURL)),
			APIURL:       strings.TrimSpace(v.GetString(KeyOAuthAPIURL)),
			ClientID:     strings.TrimSpace(v.GetString(KeyOAuthClientID)),
			ClientSecret: v.GetString(KeyOAuthClientSecret),
			APIVersion:   strings.TrimSpace(v.GetString(KeyOAuthAPIVersion)),
			Display:      strings.TrimSpace(v.GetString(KeyOAuthDisplay)),
			ListenAddr:   strings.TrimSpace(v.GetString(KeyAuthListen)),
			Timeout:      timeout,
		},
		Session: Session{
			Path:           expandHome(v.GetString(KeySessionPath), homeDir),
			SecretsPath:    expandHome(v.GetString(KeySecretsPath), homeDir),
			SecretsBackend: SecretsBackend(strings.ToLower(strings.TrimSpace(v.GetString(KeySecretsBackend)))),
		},
		LogLevel:   level,
		RosterPath: expandHome(v.GetString(KeyRosterPath), homeDir),
	}

	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("%s is empty", KeyAPIBaseURL)
	}
	if cfg.Session.Path == "" {
		return Config{}, fmt.Errorf("%s is empty", KeySessionPath)
	}
	switch cfg.Session.SecretsBackend {
	case SecretsAuto, SecretsFile, SecretsPass:
	default:
		return Config{}, fmt.Errorf("invalid %s %q (want auto, file or pass)", KeySecretsBackend, cfg.Session.SecretsBackend)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, baseDir string) {
	v.SetDefault(KeyAPIBaseURL, "http://127.0.0.1:8080/api")
	v.SetDefault(KeyOAuthAuthorizeURL, "https://oauth.vk.com/authorize")
	v.SetDefault(KeyOAuthTokenURL, "https://oauth.vk.com/access_token")
	v.SetDefault(KeyOAuthAPIURL, "https://api.vk.com/method")
	v.SetDefault(KeyOAuthClientID, "")
	v.SetDefault(KeyOAuthClientSecret, "")
	v.SetDefault(KeyOAuthAPIVersion, "5.131")
	v.SetDefault(KeyOAuthDisplay, "page")
	v.SetDefault(KeyAuthListen, "127.0.0.1:8765")
	v.SetDefault(KeyAuthTimeout, "5m")
	v.SetDefault(KeySessionPath, filepath.Join(baseDir, "session.toml"))
	v.SetDefault(KeySecretsPath, filepath.Join(baseDir, "secrets"))
	v.SetDefault(KeySecretsBackend, string(SecretsAuto))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyRosterPath, "")
}

// ParseLevel accepts debug, info, warn and error. Empty means warn.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid %s %q", KeyLogLevel, raw)
	}
}

func expandHome(path string, homeDir string) string {
	path = strings.TrimSpace(path)
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
