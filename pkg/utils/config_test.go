package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadConfigFrom_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "micron-api", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "frontend/", config.App.FrontendDir)
	assert.Equal(t, []string{"*"}, config.App.AllowedOrigins)
	assert.Equal(t, "5432", config.Database.Port)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.True(t, config.Database.Migrate)
	assert.Equal(t, "s3cret", config.JWT.Secret)
	assert.Equal(t, 48, config.JWT.ExpiryHours)
	assert.Equal(t, bcrypt.DefaultCost, config.Auth.BcryptCost)
	assert.False(t, config.Auth.AdminSignupRequiresAdmin)
	assert.Empty(t, config.Events.AMQPURL)
	assert.Equal(t, "accounts", config.Events.Exchange)
}

func TestLoadConfigFrom_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=from-file\n" +
		"PORT=9090\n" +
		"DB_HOST=db\n" +
		"JWT_EXPIRY_HOURS=1\n" +
		"CORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n" +
		"AUTH_ADMIN_SIGNUP_REQUIRES_ADMIN=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.JWT.Secret)
	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "db", config.Database.Host)
	assert.Equal(t, 1, config.JWT.ExpiryHours)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.App.AllowedOrigins)
	assert.True(t, config.Auth.AdminSignupRequiresAdmin)
}

func TestLoadConfigFrom_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nPORT=9090\n"), 0o600))
	t.Setenv("PORT", "7070")

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", config.App.Port)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JWT:  JWTConfig{Secret: "s", ExpiryHours: 48},
			Auth: AuthConfig{BcryptCost: bcrypt.MinCost},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, want: "JWT_SECRET"},
		{name: "zero expiry", mutate: func(c *Config) { c.JWT.ExpiryHours = 0 }, want: "JWT_EXPIRY_HOURS"},
		{name: "cost too low", mutate: func(c *Config) { c.Auth.BcryptCost = 1 }, want: "BCRYPT_COST"},
		{name: "cost too high", mutate: func(c *Config) { c.Auth.BcryptCost = 99 }, want: "BCRYPT_COST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type signup struct {
		Phone    string `validate:"required"`
		Password string `validate:"required,min=3"`
	}

	assert.Nil(t, ValidateStruct(signup{Phone: "555", Password: "secret"}))

	errs := ValidateStruct(signup{Password: "ab"})
	assert.Equal(t, map[string]string{
		"Phone":    "This field is required",
		"Password": "Minimum length is 3",
	}, errs)
	assert.Equal(t, "Password: Minimum length is 3; Phone: This field is required", FormatValidationErrors(errs))
}
