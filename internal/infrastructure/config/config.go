package config

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Config struct {
	Port     string
	Log      LogConfig
	Store    string
	DynamoDB DynamoDBConfig
	Redis    RedisConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	TxTimeout       time.Duration
	Tables          TableNames
}

// TableNames maps every tender record kind to its DynamoDB table.
type TableNames struct {
	Nits       string
	NitMemos   string
	Works      string
	Bids       string
	Awards     string
	WorkOrders string
	Agreements string
	Payments   string
}

type RedisConfig struct {
	URL         string
	ReadViewTTL time.Duration
}

var defaults = map[string]any{
	"PORT":                  "8080",
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "text",
	"STORE_DRIVER":          StoreDynamoDB,
	"AWS_REGION":            "us-east-1",
	"AWS_ACCESS_KEY_ID":     "local",
	"AWS_SECRET_ACCESS_KEY": "local",
	"DYNAMODB_ENDPOINT":     "",
	"DYNAMODB_TX_TIMEOUT":   "5s",
	"NITS_TABLE":            "nits",
	"NIT_MEMOS_TABLE":       "nit_memos",
	"WORKS_TABLE":           "works",
	"BIDS_TABLE":            "bids",
	"AWARDS_TABLE":          "awards",
	"WORK_ORDERS_TABLE":     "work_order_details",
	"AGREEMENTS_TABLE":      "agreements",
	"PAYMENTS_TABLE":        "payments",
	"REDIS_URL":             "",
	"READ_VIEW_TTL":         "5m",
}

// Load reads the configuration from the environment (a .env file is loaded
// by main before this runs). Unset keys fall back to local-friendly defaults.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port: v.GetString("PORT"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Store: strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			TxTimeout:       v.GetDuration("DYNAMODB_TX_TIMEOUT"),
			Tables: TableNames{
				Nits:       v.GetString("NITS_TABLE"),
				NitMemos:   v.GetString("NIT_MEMOS_TABLE"),
				Works:      v.GetString("WORKS_TABLE"),
				Bids:       v.GetString("BIDS_TABLE"),
				Awards:     v.GetString("AWARDS_TABLE"),
				WorkOrders: v.GetString("WORK_ORDERS_TABLE"),
				Agreements: v.GetString("AGREEMENTS_TABLE"),
				Payments:   v.GetString("PAYMENTS_TABLE"),
			},
		},
		Redis: RedisConfig{
			URL:         v.GetString("REDIS_URL"),
			ReadViewTTL: v.GetDuration("READ_VIEW_TTL"),
		},
	}

	switch cfg.Store {
	case StoreDynamoDB, StoreMemory:
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDynamoDB, StoreMemory, cfg.Store)
	}
	if cfg.DynamoDB.TxTimeout <= 0 {
		return nil, fmt.Errorf("DYNAMODB_TX_TIMEOUT must be positive, got %s", cfg.DynamoDB.TxTimeout)
	}

	log.WithFields(log.Fields{"store": cfg.Store, "port": cfg.Port}).Info("config parsed")
	return cfg, nil
}

// DefaultTableNames is the table layout used when nothing is configured.
func DefaultTableNames() TableNames {
	return TableNames{
		Nits:       defaults["NITS_TABLE"].(string),
		NitMemos:   defaults["NIT_MEMOS_TABLE"].(string),
		Works:      defaults["WORKS_TABLE"].(string),
		Bids:       defaults["BIDS_TABLE"].(string),
		Awards:     defaults["AWARDS_TABLE"].(string),
		WorkOrders: defaults["WORK_ORDERS_TABLE"].(string),
		Agreements: defaults["AGREEMENTS_TABLE"].(string),
		Payments:   defaults["PAYMENTS_TABLE"].(string),
	}
}
