package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"dogs-api/internal/platform/database"

	_ "github.com/jackc/pgx/v5/stdlib" // registra el driver "pgx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Pool agrupa los límites del pool de database/sql.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
	PingTimeout time.Duration
}

// DefaultPool alcanza para una sola instancia de la API.
var DefaultPool = Pool{
	MaxOpen:     10,
	MaxIdle:     5,
	MaxIdleTime: 5 * time.Minute,
	MaxLifetime: 30 * time.Minute,
	PingTimeout: 3 * time.Second,
}

func (p Pool) apply(db *sql.DB) {
	db.SetMaxOpenConns(p.MaxOpen)
	db.SetMaxIdleConns(p.MaxIdle)
	db.SetConnMaxIdleTime(p.MaxIdleTime)
	db.SetConnMaxLifetime(p.MaxLifetime)
}

// Open conecta con DefaultPool y verifica la conexión con un ping.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	return OpenWithPool(ctx, dsn, DefaultPool)
}

func OpenWithPool(ctx context.Context, dsn string, pool Pool) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("postgres: empty dsn")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	pool.apply(db)

	pingCtx, cancel := context.WithTimeout(ctx, pool.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return db, nil
}

// Migrate aplica migrations/*.up.sql pendientes y devuelve las versiones nuevas.
func Migrate(ctx context.Context, db *sql.DB) ([]string, error) {
	return database.Migrate(ctx, db, database.DialectPostgres, migrationsFS, "migrations")
}
