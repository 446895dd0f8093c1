package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, processor
//   credentials) or that must never ship with a default
// - default: Values common across all environments (timeouts, data dir, grants)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Mirror  MirrorConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	Payment PaymentConfig
	Coupon  CouponConfig
	Webhook WebhookConfig
	Credits CreditsConfig
	Orders  OrdersConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	DataDir string `envconfig:"STORE_DATA_DIR" default:"./data"`
}

// MirrorConfig enables the remote Postgres mirror when a URL is set.
// Local snapshot files remain the fallback either way.
type MirrorConfig struct {
	DatabaseURL string `envconfig:"MIRROR_DATABASE_URL" default:""`
}

func (c MirrorConfig) Enabled() bool {
	return c.DatabaseURL != ""
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-CSRF-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type SessionConfig struct {
	Secret       string `envconfig:"SESSION_SECRET" required:"true"`
	CookieDomain string `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure bool   `envconfig:"SESSION_COOKIE_SECURE" default:"true"`
	SameSite     string `envconfig:"SESSION_SAMESITE" default:"Lax"`
}

type PaymentConfig struct {
	BaseURL     string        `envconfig:"PAYMENT_API_BASE_URL" required:"true"`
	AccessToken string        `envconfig:"PAYMENT_ACCESS_TOKEN" required:"true"`
	LocationID  string        `envconfig:"PAYMENT_LOCATION_ID" required:"true"`
	Currency    string        `envconfig:"PAYMENT_CURRENCY" default:"JPY"`
	Timeout     time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
}

// CouponConfig degrades to "feature disabled" when BaseURL or SharedSecret is
// empty; missing coupon configuration must never crash the service.
type CouponConfig struct {
	BaseURL      string        `envconfig:"COUPON_API_BASE_URL" default:""`
	SharedSecret string        `envconfig:"COUPON_SHARED_SECRET" default:""`
	Timeout      time.Duration `envconfig:"COUPON_TIMEOUT" default:"10s"`
}

func (c CouponConfig) Enabled() bool {
	return c.BaseURL != "" && c.SharedSecret != ""
}

type WebhookConfig struct {
	SignatureKey string `envconfig:"WEBHOOK_SIGNATURE_KEY" required:"true"`
}

type CreditsConfig struct {
	FreeGrant          int      `envconfig:"CREDITS_FREE_GRANT" default:"2"`
	TestUserEmails     []string `envconfig:"CREDITS_TEST_USER_EMAILS" default:""`
	TestDisplayBalance int      `envconfig:"CREDITS_TEST_DISPLAY_BALANCE" default:"9999"`
}

type OrdersConfig struct {
	LinkWindow  time.Duration `envconfig:"ORDER_LINK_WINDOW" default:"72h"`
	ReviewDelay time.Duration `envconfig:"ORDER_REVIEW_DELAY" default:"168h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			DataDir: "", // Set per test via t.TempDir()
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Session: SessionConfig{
			Secret:       "test-session-secret",
			CookieSecure: false,
			SameSite:     "Lax",
		},
		Payment: PaymentConfig{
			BaseURL:     "http://localhost:18080",
			AccessToken: "test-token",
			LocationID:  "TESTLOC",
			Currency:    "JPY",
			Timeout:     10 * time.Second,
		},
		Webhook: WebhookConfig{
			SignatureKey: "test-webhook-key",
		},
		Credits: CreditsConfig{
			FreeGrant:          2,
			TestDisplayBalance: 9999,
		},
		Orders: OrdersConfig{
			LinkWindow:  72 * time.Hour,
			ReviewDelay: 168 * time.Hour,
		},
	}
}
