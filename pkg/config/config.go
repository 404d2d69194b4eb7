package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read via Viper from the
// environment and optionally from a .env file.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	DB      DBConfig
	CORS    CORSConfig
	Mail    MailConfig
	Company CompanyConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig settings of the HTTP server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig PostgreSQL settings. When DatabaseURL is set it wins over the
// individual fields (e.g. a hosted DATABASE_URL).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns the DSN to use: DATABASE_URL when set, otherwise
// one built from the individual fields.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds a PostgreSQL connection string with URL encoding so special
// characters in the password survive.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// CORSConfig allowed browser origins for the SPA.
type CORSConfig struct {
	AllowedOrigins []string
}

// MailConfig SMTP settings for sending invoices to customers.
type MailConfig struct {
	From     string
	Host     string
	Port     int
	User     string
	Password string
}

// Configured reports whether an SMTP host is set up at all.
func (c MailConfig) Configured() bool {
	return c.Host != ""
}

// CompanyConfig identity of the business, printed on invoice PDFs.
type CompanyConfig struct {
	Name   string
	Street string
	City   string
	Phone  string
	Email  string
}

// Load reads the configuration from environment variables and, if present,
// a .env file in the working directory. Environment variables win.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // the file is optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "handwerkpro-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "PORT", 3000),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "handwerkpro"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getString(v, "ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		Mail: MailConfig{
			From:     getString(v, "MAIL_FROM", ""),
			Host:     getString(v, "MAIL_HOST", ""),
			Port:     getInt(v, "MAIL_PORT", 587),
			User:     getString(v, "MAIL_USER", ""),
			Password: getString(v, "MAIL_PASS", ""),
		},
		Company: CompanyConfig{
			Name:   getString(v, "COMPANY_NAME", "HandwerkPro"),
			Street: getString(v, "COMPANY_STREET", ""),
			City:   getString(v, "COMPANY_CITY", ""),
			Phone:  getString(v, "COMPANY_PHONE", ""),
			Email:  getString(v, "COMPANY_EMAIL", ""),
		},
	}

	return cfg, nil
}

// splitList parses a comma separated env value into a trimmed slice.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			// A malformed value (PORT=abc) falls back to the default
			// instead of becoming 0.
			if n, err := strconv.Atoi(v.GetString(key)); err == nil {
				return n
			}
			return def
		default:
			return v.GetInt(key)
		}
	}
	return def
}
