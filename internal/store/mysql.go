package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore keeps every entry as one row in a kv table.  It exists for
// deployments that already run MySQL and do not want a Redis instance; the
// whole-value-per-key contract is identical to the Redis backend.
type MySQLStore struct {
	db *sql.DB
}

// OpenMySQL connects to MySQL, verifies the connection and creates the kv
// table if it does not exist yet.
func OpenMySQL(user, pass, host, port, name string) (*MySQLStore, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx,
		"CREATE TABLE IF NOT EXISTS kv_store (k VARCHAR(191) NOT NULL PRIMARY KEY, v LONGBLOB NOT NULL, updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP)"); err != nil {
		return nil, err
	}
	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := s.db.QueryRowContext(ctx, "SELECT v FROM kv_store WHERE k=? LIMIT 1", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *MySQLStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv_store (k, v) VALUES (?,?) ON DUPLICATE KEY UPDATE v=VALUES(v)",
		key, value)
	return err
}

func (s *MySQLStore) Del(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE k=?", key)
	return err
}

// Close releases the underlying connection pool.
func (s *MySQLStore) Close() error { return s.db.Close() }
