package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/require"
)

func parseWith(t *testing.T, environ map[string]string) (*Config, error) {
	t.Helper()

	cfg := &Config{}
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	return cfg, err
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseWith(t, map[string]string{
		"DATABASE_URL": "user:pass@tcp(localhost:3306)/courses",
		"JWT_SECRET":   "s3cret",
	})
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Equal(t, "development", cfg.Environment.Name)
	require.False(t, cfg.Environment.IsProduction())
	require.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "https://api.razorpay.com", cfg.Razorpay.BaseApiURL)
	require.Equal(t, "UPSKILL50", cfg.Checkout.CouponCode)
	require.False(t, cfg.Razorpay.Configured())
}

func TestParse_MissingSecretIsFatal(t *testing.T) {
	t.Parallel()

	_, err := parseWith(t, map[string]string{
		"DATABASE_URL": "user:pass@tcp(localhost:3306)/courses",
	})
	require.Error(t, err)
}

func TestRazorpayConfigured(t *testing.T) {
	t.Parallel()

	cfg, err := parseWith(t, map[string]string{
		"DATABASE_URL":        "dsn",
		"JWT_SECRET":          "s3cret",
		"RAZORPAY_KEY_ID":     "rzp_test_key",
		"RAZORPAY_KEY_SECRET": "rzp_test_secret",
	})
	require.NoError(t, err)
	require.True(t, cfg.Razorpay.Configured())

	// both halves of the credential are needed
	cfg.Razorpay.KeySecret = ""
	require.False(t, cfg.Razorpay.Configured())
}
