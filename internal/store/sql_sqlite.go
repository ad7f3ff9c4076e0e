package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
)

// sqlitePragmas are appended to every DSN. secure_delete zeroes freed pages
// so erased legacy plaintext credentials do not survive in the file;
// busy_timeout lets a second client instance wait instead of failing writes.
var sqlitePragmas = url.Values{
	"_secure_delete": {"on"},
	"_busy_timeout":  {"5000"},
	"_foreign_keys":  {"on"},
}

// NewConnectSQLite opens (creating if needed) the SQLite file named by
// cfg.DSN and pings it.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// sqlite allows one writer; a single connection also keeps :memory: DSNs
	// pointing at the same database
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging DB: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", filePath(cfg.DSN)).Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

// sqliteDSN adds [sqlitePragmas] to dsn. Parameters already present in dsn
// are kept.
func sqliteDSN(dsn string) string {
	path, rawQuery, _ := strings.Cut(dsn, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	for k, v := range sqlitePragmas {
		if !query.Has(k) {
			query[k] = v
		}
	}
	return path + "?" + query.Encode()
}

// filePath strips DSN parameters and a file: prefix.
func filePath(dsn string) string {
	path, _, _ := strings.Cut(dsn, "?")
	return strings.TrimPrefix(path, "file:")
}

// createLocalDBFileIfNotExists creates the database file with owner-only
// permissions; the file holds sealed secrets and plaintext preferences.
func createLocalDBFileIfNotExists(dsn string) error {
	dbFile := filePath(dsn)
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}

		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		return f.Close()
	}

	return nil
}
