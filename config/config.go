package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bid-exchange/internal/notifier"
)

// Config carries everything the process needs at startup. It is built once
// in main and injected; no package reads flags or env on its own.
type Config struct {
	ListenAddr    string
	TemplatesFile string
	DB            DBConfig
	Notifier      notifier.GatewayConfig
}

// DBConfig holds the postgres connection parts. An empty host selects the
// in-memory store instead.
type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
}

// Enabled reports whether a SQL store is configured.
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

// DSN builds the postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// Parse reads flags and BID_EXCHANGE_-prefixed environment variables.
func Parse() Config {
	// server config
	pflag.String("listen-addr", ":8080", "")

	// db config (empty host -> in-memory store)
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")

	// notification gateway config
	pflag.String("sms-api-url", "https://api.msg91.com/api/v2/sendsms", "")
	pflag.String("email-api-url", "https://control.msg91.com/api/sendmail.php", "")
	pflag.String("gateway-auth-key", "", "")
	pflag.String("sms-sender", notifier.DefaultSender, "")
	pflag.String("email-from", notifier.DefaultFromAddress, "")
	pflag.Int("sms-country", notifier.DefaultCountry, "")
	pflag.Duration("gateway-timeout", notifier.DefaultTimeout, "")

	// notification template overrides
	pflag.String("templates-file", "", "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("BID_EXCHANGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return Config{
		ListenAddr:    viper.GetString("listen-addr"),
		TemplatesFile: viper.GetString("templates-file"),
		DB: DBConfig{
			User:     viper.GetString("db-user"),
			Password: viper.GetString("db-password"),
			Host:     viper.GetString("db-host"),
			Port:     viper.GetInt("db-port"),
			Database: viper.GetString("db-database"),
		},
		Notifier: notifier.GatewayConfig{
			SMSURL:      viper.GetString("sms-api-url"),
			EmailURL:    viper.GetString("email-api-url"),
			AuthKey:     viper.GetString("gateway-auth-key"),
			Sender:      viper.GetString("sms-sender"),
			FromAddress: viper.GetString("email-from"),
			Country:     viper.GetInt("sms-country"),
			Timeout:     viper.GetDuration("gateway-timeout"),
		},
	}
}

// Validate checks the parts the process cannot start without.
func (c Config) Validate() bool {
	return c.ListenAddr != "" && c.Notifier.SMSURL != "" && c.Notifier.EmailURL != ""
}

// LoadTemplates returns the default template set, overlaid with entries from
// the configured templates file when one is set.
func (c Config) LoadTemplates() (notifier.Templates, error) {
	templates := notifier.DefaultTemplates()
	if c.TemplatesFile == "" {
		return templates, nil
	}

	v := viper.New()
	v.SetConfigFile(c.TemplatesFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read templates file %s: %w", c.TemplatesFile, err)
	}

	var overrides notifier.Templates
	if err := v.UnmarshalKey("templates", &overrides); err != nil {
		return nil, fmt.Errorf("parse templates file %s: %w", c.TemplatesFile, err)
	}
	return templates.Merge(overrides), nil
}
