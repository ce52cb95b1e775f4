package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Data     DataConfig     `mapstructure:"data"`
	Primary  PrimaryConfig  `mapstructure:"primary"`
	Mirror   MirrorConfig   `mapstructure:"mirror"`
	AWS      AWSConfig      `mapstructure:"aws"`
	TextGen  TextGenConfig  `mapstructure:"textgen"`
	PDF      PDFConfig      `mapstructure:"pdf"`
	Payments PaymentsConfig `mapstructure:"payments"`
	Company  CompanyConfig  `mapstructure:"company"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// TemplatesDir holds template overrides; missing files fall back to the
// built-in templates.
func (d DataConfig) TemplatesDir() string { return filepath.Join(d.Dir, "templates") }

// ExportsDir receives the HTML copy of every finalized document.
func (d DataConfig) ExportsDir() string { return filepath.Join(d.Dir, "exports") }

// PrimaryConfig selects the relational store. An empty driver or DSN
// disables it and every read and write goes to the flat files.
type PrimaryConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

func (p PrimaryConfig) Enabled() bool {
	return strings.TrimSpace(p.Driver) != "" && strings.TrimSpace(p.DSN) != ""
}

type MirrorConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	RecordsTable    string `mapstructure:"records_table"`
	CustomersTable  string `mapstructure:"customers_table"`
	QuotationsTable string `mapstructure:"quotations_table"`
}

type AWSConfig struct {
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

type TextGenConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
}

type PDFConfig struct {
	WkhtmltopdfPath string `mapstructure:"wkhtmltopdf_path"`
}

// PaymentsConfig picks how receipts are captured: "manual" records cash and
// bank transfers locally, "mercadopago" charges through Mercado Pago.
type PaymentsConfig struct {
	Provider    string `mapstructure:"provider"`
	AccessToken string `mapstructure:"access_token"`
	Mock        bool   `mapstructure:"mock"`
}

// CompanyConfig holds the letterhead values printed on every document.
type CompanyConfig struct {
	Name        string `mapstructure:"name"`
	BankName    string `mapstructure:"bank_name"`
	BankAccount string `mapstructure:"bank_account"`
	BankIBAN    string `mapstructure:"bank_iban"`
	PreparedBy  string `mapstructure:"prepared_by"`
	ApprovedBy  string `mapstructure:"approved_by"`
	Currency    string `mapstructure:"currency"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("data.dir", "data")
	v.SetDefault("primary.driver", "")
	v.SetDefault("primary.dsn", "")
	v.SetDefault("mirror.enabled", false)
	v.SetDefault("mirror.records_table", "records")
	v.SetDefault("mirror.customers_table", "customers")
	v.SetDefault("mirror.quotations_table", "quotations")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("textgen.provider", "")
	v.SetDefault("textgen.model", "gpt-4o-mini")
	v.SetDefault("textgen.api_key", "")
	v.SetDefault("textgen.base_url", "https://api.openai.com/v1")
	v.SetDefault("pdf.wkhtmltopdf_path", "")
	v.SetDefault("payments.provider", "manual")
	v.SetDefault("payments.access_token", "")
	v.SetDefault("payments.mock", false)
	v.SetDefault("company.name", "Newton Smart Home")
	v.SetDefault("company.bank_name", "")
	v.SetDefault("company.bank_account", "")
	v.SetDefault("company.bank_iban", "")
	v.SetDefault("company.prepared_by", "")
	v.SetDefault("company.approved_by", "")
	v.SetDefault("company.currency", "AED")
}

// Load reads config.yaml when present and applies DESK_ prefixed environment
// overrides, e.g. DESK_PRIMARY_DSN for primary.dsn.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./deploy/", "./"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("DESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
