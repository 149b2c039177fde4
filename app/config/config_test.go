package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-api/app/config"
)

func TestConfig_Load(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    *config.Config
		wantErr bool
	}{
		{
			name: "default configuration",
			envVars: map[string]string{
				"DB_PASSWORD":       "test_password",
				"KRATOS_PUBLIC_URL": "http://kratos-public:4433",
				"KRATOS_ADMIN_URL":  "http://kratos-admin:4434",
				"SESSION_SECRET":    "0123456789abcdef0123456789abcdef",
				"SESSION_ISSUER":    "https://portal.example.com",
			},
			want: &config.Config{
				Port:              "9600",
				Host:              "0.0.0.0",
				LogLevel:          "info",
				DatabaseHost:      "portal-postgres",
				DatabasePort:      "5432",
				DatabaseName:      "portal_db",
				DatabaseUser:      "portal_user",
				DatabasePassword:  "test_password",
				DatabaseSSLMode:   "require",
				KratosPublicURL:   "http://kratos-public:4433",
				KratosAdminURL:    "http://kratos-admin:4434",
				SessionSecret:     "0123456789abcdef0123456789abcdef",
				SessionIssuer:     "https://portal.example.com",
				SessionTTL:        168 * time.Hour,
				SendGridFromEmail: "noreply@example.com",
				AppURL:            "http://localhost:3000",
				ImportWorkers:     4,
			},
			wantErr: false,
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"PORT":                "8080",
				"HOST":                "127.0.0.1",
				"LOG_LEVEL":           "debug",
				"DB_HOST":             "custom-host",
				"DB_PORT":             "5433",
				"DB_NAME":             "custom_db",
				"DB_USER":             "custom_user",
				"DB_PASSWORD":         "custom_pass",
				"DB_SSL_MODE":         "disable",
				"KRATOS_PUBLIC_URL":   "http://custom-kratos:4433",
				"KRATOS_ADMIN_URL":    "http://custom-kratos:4434",
				"SESSION_SECRET":      "another-secret-that-is-long-enough!!",
				"SESSION_ISSUER":      "https://portal.custom.example.com",
				"SESSION_TTL":         "24h",
				"SENDGRID_API_KEY":    "SG.test",
				"SENDGRID_FROM_EMAIL": "portal@custom.example.com",
				"YELP_API_KEY":        "yelp-key",
				"UPTIMEROBOT_API_KEY": "ur-key",
				"APP_URL":             "https://portal.custom.example.com",
				"IMPORT_WORKERS":      "8",
			},
			want: &config.Config{
				Port:              "8080",
				Host:              "127.0.0.1",
				LogLevel:          "debug",
				DatabaseHost:      "custom-host",
				DatabasePort:      "5433",
				DatabaseName:      "custom_db",
				DatabaseUser:      "custom_user",
				DatabasePassword:  "custom_pass",
				DatabaseSSLMode:   "disable",
				KratosPublicURL:   "http://custom-kratos:4433",
				KratosAdminURL:    "http://custom-kratos:4434",
				SessionSecret:     "another-secret-that-is-long-enough!!",
				SessionIssuer:     "https://portal.custom.example.com",
				SessionTTL:        24 * time.Hour,
				SendGridAPIKey:    "SG.test",
				SendGridFromEmail: "portal@custom.example.com",
				YelpAPIKey:        "yelp-key",
				UptimeRobotAPIKey: "ur-key",
				AppURL:            "https://portal.custom.example.com",
				ImportWorkers:     8,
			},
			wantErr: false,
		},
		{
			name: "missing required fields",
			envVars: map[string]string{
				"PORT": "9600",
				// Missing DB_PASSWORD, KRATOS_PUBLIC_URL, KRATOS_ADMIN_URL, SESSION_SECRET
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "session secret too short",
			envVars: map[string]string{
				"DB_PASSWORD":       "test_password",
				"KRATOS_PUBLIC_URL": "http://kratos-public:4433",
				"KRATOS_ADMIN_URL":  "http://kratos-admin:4434",
				"SESSION_SECRET":    "short",
				"SESSION_ISSUER":    "https://portal.example.com",
			},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup environment variables
			for key, value := range tt.envVars {
				os.Setenv(key, value)
				defer os.Unsetenv(key)
			}

			got, err := config.Load()

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Port:             "9600",
			Host:             "0.0.0.0",
			LogLevel:         "info",
			DatabasePassword: "password",
			KratosPublicURL:  "http://kratos-public:4433",
			KratosAdminURL:   "http://kratos-admin:4434",
			SessionSecret:    "0123456789abcdef0123456789abcdef",
			SessionIssuer:    "https://portal.example.com",
			SessionTTL:       168 * time.Hour,
			AppURL:           "https://portal.example.com",
			ImportWorkers:    4,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{
			name:    "valid configuration",
			mutate:  func(c *config.Config) {},
			wantErr: false,
		},
		{
			name:    "invalid port",
			mutate:  func(c *config.Config) { c.Port = "invalid_port" },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *config.Config) { c.Port = "70000" },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *config.Config) { c.LogLevel = "invalid_level" },
			wantErr: true,
		},
		{
			name:    "session TTL too short",
			mutate:  func(c *config.Config) { c.SessionTTL = 10 * time.Second },
			wantErr: true,
		},
		{
			name:    "invalid app URL",
			mutate:  func(c *config.Config) { c.AppURL = "not a url" },
			wantErr: true,
		},
		{
			name:    "zero import workers",
			mutate:  func(c *config.Config) { c.ImportWorkers = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
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
