package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	JWT *JWTConfig `json:"jwt" yaml:"jwt"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	Cookie *CookieConfig `json:"cookie" yaml:"cookie"`

	Frontend *FrontendConfig `json:"frontend" yaml:"frontend"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// BankID configuration for the Swedish e-identification relying party API
	BankID *BankIDConfig `json:"bankId" yaml:"bankId"`

	// QRCode configuration for BankID animated QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for mail job publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Mail *MailConfig `json:"mail" yaml:"mail"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SecretKeyConfig holds the HMAC signing keys for access and refresh tokens.
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// MigrationsConfig controls goose schema migrations.
type MigrationsConfig struct {
	// DSN used by cmd/migrate. The API server reuses its own pool instead.
	DSN         string `json:"dsn" yaml:"dsn"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

type JWTConfig struct {
	AccessTTL  time.Duration `json:"accessTtl" yaml:"accessTtl"`
	RefreshTTL time.Duration `json:"refreshTtl" yaml:"refreshTtl"`
	Issuer     string        `json:"issuer" yaml:"issuer"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	Lockout           LockoutConfig `json:"lockout" yaml:"lockout"`
	VerificationTTL   time.Duration `json:"verificationTtl" yaml:"verificationTtl"`
	ResetTTL          time.Duration `json:"resetTtl" yaml:"resetTtl"`
	NewDeviceLookback time.Duration `json:"newDeviceLookback" yaml:"newDeviceLookback"`
	HistoryLimit      int           `json:"historyLimit" yaml:"historyLimit"`
}

// LockoutConfig defines brute-force lockout policy
type LockoutConfig struct {
	Threshold int           `json:"threshold" yaml:"threshold"`
	Window    time.Duration `json:"window" yaml:"window"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

// CookieConfig defines how the refresh token cookie is written.
// Its lifetime follows jwt.refreshTtl.
type CookieConfig struct {
	Name   string `json:"name" yaml:"name"`
	Domain string `json:"domain" yaml:"domain"`
	Path   string `json:"path" yaml:"path"`
}

type FrontendConfig struct {
	URL string `json:"url" yaml:"url"`
}

type GoogleOAuthConfig struct {
	ClientID     string        `json:"clientId" yaml:"clientId"`
	ClientSecret string        `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string        `json:"redirectUri" yaml:"redirectUri"`
	Scopes       string        `json:"scopes" yaml:"scopes"`
	StateTTL     time.Duration `json:"stateTtl" yaml:"stateTtl"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// BankIDConfig defines the BankID relying party connection
type BankIDConfig struct {
	APIURL         string        `json:"apiUrl" yaml:"apiUrl"`
	CertPath       string        `json:"certPath" yaml:"certPath"`
	KeyPath        string        `json:"keyPath" yaml:"keyPath"`
	CACertPath     string        `json:"caCertPath" yaml:"caCertPath"`
	Salt           string        `json:"salt" yaml:"salt"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	CancelTimeout  time.Duration `json:"cancelTimeout" yaml:"cancelTimeout"`
	SessionTTL     time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
	EmailDomain    string        `json:"emailDomain" yaml:"emailDomain"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for mail job publishing
type PubSubConfig struct {
	// Provider type: "noop", "local", "google" or "nats"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	NatsURL     string `json:"natsUrl" yaml:"natsUrl"`
	NatsSubject string `json:"natsSubject" yaml:"natsSubject"`
	NatsQueue   string `json:"natsQueue" yaml:"natsQueue"`
}

// MailConfig defines SMTP delivery used by the mail worker
type MailConfig struct {
	FromAddress     string        `json:"fromAddress" yaml:"fromAddress"`
	SMTPHost        string        `json:"smtpHost" yaml:"smtpHost"`
	SMTPPort        int           `json:"smtpPort" yaml:"smtpPort"`
	SMTPUsername    string        `json:"smtpUsername" yaml:"smtpUsername"`
	SMTPPassword    string        `json:"smtpPassword" yaml:"smtpPassword"`
	MaxRetryElapsed time.Duration `json:"maxRetryElapsed" yaml:"maxRetryElapsed"`
	// WorkerPort is where cmd/mailworker accepts push deliveries.
	WorkerPort int `json:"workerPort" yaml:"workerPort"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// BANKID_SALT -> bankId.salt, aligned with the casing already present in YAML.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section with the values the service runs with
// when nothing is configured.
func ApplyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "valunds"
	}

	if cfg.JWT == nil {
		cfg.JWT = &JWTConfig{}
	}
	cfg.JWT.AccessTTL = durationOr(cfg.JWT.AccessTTL, 30*time.Minute)
	cfg.JWT.RefreshTTL = durationOr(cfg.JWT.RefreshTTL, 30*24*time.Hour)

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Lockout.Threshold <= 0 {
		cfg.Auth.Lockout.Threshold = 5
	}
	cfg.Auth.Lockout.Window = durationOr(cfg.Auth.Lockout.Window, 15*time.Minute)
	cfg.Auth.Lockout.Duration = durationOr(cfg.Auth.Lockout.Duration, 15*time.Minute)
	cfg.Auth.VerificationTTL = durationOr(cfg.Auth.VerificationTTL, time.Hour)
	cfg.Auth.ResetTTL = durationOr(cfg.Auth.ResetTTL, time.Hour)
	cfg.Auth.NewDeviceLookback = durationOr(cfg.Auth.NewDeviceLookback, 30*24*time.Hour)
	if cfg.Auth.HistoryLimit <= 0 {
		cfg.Auth.HistoryLimit = 20
	}

	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{MinLength: 8, MaxLength: 72}
	}

	if cfg.Cookie == nil {
		cfg.Cookie = &CookieConfig{}
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = "refresh_token"
	}
	if cfg.Cookie.Path == "" {
		cfg.Cookie.Path = "/"
	}

	if cfg.Frontend == nil {
		cfg.Frontend = &FrontendConfig{URL: "http://localhost:5173"}
	}
	cfg.Frontend.URL = strings.TrimRight(cfg.Frontend.URL, "/")

	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if cfg.GoogleOAuth.Scopes == "" {
		cfg.GoogleOAuth.Scopes = "openid email profile"
	}
	cfg.GoogleOAuth.StateTTL = durationOr(cfg.GoogleOAuth.StateTTL, 10*time.Minute)
	cfg.GoogleOAuth.Timeout = durationOr(cfg.GoogleOAuth.Timeout, 10*time.Second)

	if cfg.BankID == nil {
		cfg.BankID = &BankIDConfig{}
	}
	if cfg.BankID.APIURL == "" {
		cfg.BankID.APIURL = "https://appapi2.test.bankid.com/rp/v6.0"
	}
	if cfg.BankID.EmailDomain == "" {
		cfg.BankID.EmailDomain = "valunds.se"
	}
	cfg.BankID.RequestTimeout = durationOr(cfg.BankID.RequestTimeout, 10*time.Second)
	cfg.BankID.CancelTimeout = durationOr(cfg.BankID.CancelTimeout, 5*time.Second)
	cfg.BankID.SessionTTL = durationOr(cfg.BankID.SessionTTL, 5*time.Minute)

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{}
	}
	if cfg.Mail.FromAddress == "" {
		cfg.Mail.FromAddress = "kontakt@valunds.se"
	}
	cfg.Mail.MaxRetryElapsed = durationOr(cfg.Mail.MaxRetryElapsed, 30*time.Second)
	if cfg.Mail.WorkerPort == 0 {
		cfg.Mail.WorkerPort = 8081
	}
}

// Validate rejects configurations the service cannot run safely with.
func (cfg *Config) Validate() error {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return errors.New("secretKey.access and secretKey.refresh must be set")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return errors.New("secretKey.access and secretKey.refresh must differ")
	}
	if cfg.BankID != nil && cfg.BankID.Salt == "" {
		return errors.New("bankId.salt must be set")
	}

	return nil
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}

	return value
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
