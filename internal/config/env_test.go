package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "GIN_MODE", "DB_DRIVER", "DATABASE_URL", "JWT_SECRET", "ADMIN_ROLES", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	env := LoadEnv()

	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, "pgx", env.DBDriver)
	assert.Equal(t, []string{"admin", "owner"}, env.AdminRoles)
	assert.Equal(t, defaultCORSOrigins, env.CORSOrigins)
	assert.Empty(t, env.DatabaseURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/trekhub")
	t.Setenv("ADMIN_ROLES", " admin , ops ,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://trekhubindia.com, https://admin.trekhubindia.com")

	env := LoadEnv()

	assert.Equal(t, ":9090", env.AppAddr)
	assert.Equal(t, "pgx", env.DBDriver)
	assert.Equal(t, "postgres://u:p@db:5432/trekhub", env.DatabaseURL)
	assert.Equal(t, []string{"admin", "ops"}, env.AdminRoles)
	assert.Equal(t, []string{"https://trekhubindia.com", "https://admin.trekhubindia.com"}, env.CORSOrigins)
}

func TestLoadEnvMySQLDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	assert.Equal(t, "mysql", LoadEnv().DBDriver)
}
