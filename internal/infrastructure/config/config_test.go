package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("DYNAMODB_TX_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreDynamoDB, cfg.Store)
	assert.Equal(t, 5*time.Second, cfg.DynamoDB.TxTimeout)
	assert.Equal(t, DefaultTableNames(), cfg.DynamoDB.Tables)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("WORKS_TABLE", "tender_works")
	t.Setenv("READ_VIEW_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "tender_works", cfg.DynamoDB.Tables.Works)
	assert.Equal(t, 30*time.Second, cfg.Redis.ReadViewTTL)
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}
