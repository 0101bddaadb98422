package config

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDSNForcesParseTimeOnMySQL(t *testing.T) {
	dsn, err := normalizeDSN("mysql", "trek:secret@tcp(db:3306)/trekhub?charset=utf8mb4")
	require.NoError(t, err)

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, "trek", cfg.User)
	assert.Equal(t, "db:3306", cfg.Addr)
	assert.Equal(t, "trekhub", cfg.DBName)
}

func TestNormalizeDSNKeepsExplicitParseTime(t *testing.T) {
	dsn, err := normalizeDSN("mysql", localMySQLDSN)
	require.NoError(t, err)
	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.True(t, cfg.ParseTime)
}

func TestNormalizeDSNRejectsBadMySQLDSN(t *testing.T) {
	_, err := normalizeDSN("mysql", "trek@db-without-a-slash")
	assert.Error(t, err)
}

func TestNormalizeDSNPassesPostgresThrough(t *testing.T) {
	url := "postgres://u:p@db:5432/trekhub?sslmode=disable"
	dsn, err := normalizeDSN("pgx", url)
	require.NoError(t, err)
	assert.Equal(t, url, dsn)
}
