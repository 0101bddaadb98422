package config

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	intdb "trekhub/internal/db"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex

	// Dialect matches the driver the shared DB was opened with.
	Dialect = intdb.Postgres
)

const localMySQLDSN = "root:@tcp(127.0.0.1:3306)/trekhub?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"

// ConnectDB initializes the shared DB connection (idempotent).
func ConnectDB(env Env) *sql.DB {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB
	}

	dsn := env.DatabaseURL
	if dsn == "" {
		if env.DBDriver != "mysql" {
			log.Fatalf("DATABASE_URL is required for driver %q", env.DBDriver)
		}
		dsn = localMySQLDSN
	}
	dsn, err := normalizeDSN(env.DBDriver, dsn)
	if err != nil {
		log.Fatalf("invalid DATABASE_URL: %v", err)
	}

	db, err := sql.Open(env.DBDriver, dsn)
	if err != nil {
		log.Fatalf("failed to open DB: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping DB: %v", err)
	}

	DB = db
	Dialect = intdb.DialectFor(env.DBDriver)
	log.Printf("connected to database (driver=%s)", env.DBDriver)
	return DB
}

// PingDB reports whether the shared connection is usable.
func PingDB(ctx context.Context) error {
	dbMu.Lock()
	db := DB
	dbMu.Unlock()

	if db == nil {
		return sql.ErrConnDone
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}

// normalizeDSN forces parseTime on MySQL DSNs so DATETIME columns scan
// into time values. Other drivers pass through unchanged.
func normalizeDSN(driver, dsn string) (string, error) {
	if driver != "mysql" {
		return dsn, nil
	}
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}
