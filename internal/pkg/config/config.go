package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Quote  QuoteConfig
	Notify NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type QuoteConfig struct {
	// pending quotes expiring within this window get a reminder on sweep
	ExpiringSoonWindow time.Duration `envconfig:"QUOTE_EXPIRING_SOON_WINDOW" default:"24h"`
	DefaultSort        string        `envconfig:"QUOTE_LIST_DEFAULT_SORT" default:"amount"`
}

type NotifyConfig struct {
	Backend  string `envconfig:"NOTIFY_BACKEND" default:"log"`
	MongoURI string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB  string `envconfig:"MONGO_DB" default:"service_broker"`
}

const (
	NotifyBackendLog      = "log"
	NotifyBackendPostgres = "postgres"
	NotifyBackendMongo    = "mongo"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	switch cfg.Notify.Backend {
	case NotifyBackendLog, NotifyBackendPostgres, NotifyBackendMongo:
	default:
		return Config{}, fmt.Errorf("unknown NOTIFY_BACKEND %q", cfg.Notify.Backend)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "15433", // Test DB port
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-service-broker",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Quote: QuoteConfig{
			ExpiringSoonWindow: 24 * time.Hour,
			DefaultSort:        "amount",
		},
		Notify: NotifyConfig{
			Backend: NotifyBackendLog,
		},
	}
}
