package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsAuthPolicy(t *testing.T) {
	cfg := &Config{}

	ApplyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 5, cfg.Auth.Lockout.Threshold)
	assert.Equal(t, 15*time.Minute, cfg.Auth.Lockout.Window)
	assert.Equal(t, 15*time.Minute, cfg.Auth.Lockout.Duration)
	assert.Equal(t, time.Hour, cfg.Auth.VerificationTTL)
	assert.Equal(t, time.Hour, cfg.Auth.ResetTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.NewDeviceLookback)

	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.RefreshTTL)

	assert.Equal(t, "refresh_token", cfg.Cookie.Name)
	assert.Equal(t, "http://localhost:5173", cfg.Frontend.URL)

	assert.Equal(t, "https://appapi2.test.bankid.com/rp/v6.0", cfg.BankID.APIURL)
	assert.Equal(t, 10*time.Second, cfg.BankID.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.BankID.CancelTimeout)
	assert.Equal(t, "kontakt@valunds.se", cfg.Mail.FromAddress)
	assert.Equal(t, 8081, cfg.Mail.WorkerPort)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "valunds", cfg.Redis.KeyPrefix)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:     &AuthConfig{Lockout: LockoutConfig{Threshold: 3, Window: time.Minute}},
		Frontend: &FrontendConfig{URL: "https://valunds.se/"},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, 3, cfg.Auth.Lockout.Threshold)
	assert.Equal(t, time.Minute, cfg.Auth.Lockout.Window)
	assert.Equal(t, 15*time.Minute, cfg.Auth.Lockout.Duration)
	assert.Equal(t, "https://valunds.se", cfg.Frontend.URL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(_ *Config) {},
		},
		{
			name:    "missing refresh key",
			mutate:  func(cfg *Config) { cfg.SecretKey.Refresh = "" },
			wantErr: true,
		},
		{
			name:    "identical keys",
			mutate:  func(cfg *Config) { cfg.SecretKey.Refresh = cfg.SecretKey.Access },
			wantErr: true,
		},
		{
			name:    "missing bankid salt",
			mutate:  func(cfg *Config) { cfg.BankID.Salt = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SecretKey: SecretKeyConfig{Access: "a", Refresh: "r"}}
			ApplyDefaults(cfg)
			cfg.BankID.Salt = "salt"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
