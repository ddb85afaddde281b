package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/akyairhashvil/lexodoro/internal/util"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT
);`

// SQLite is a key/value settings table in a single database file.
type SQLite struct {
	mu     sync.Mutex
	db     *sql.DB
	dbFile string
}

// Open creates the parent directory and schema if needed.
func Open(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping settings db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create settings table: %w", err)
	}
	return &SQLite{db: db, dbFile: path}, nil
}

// Path returns the database file.
func (s *SQLite) Path() string { return s.dbFile }

func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLite) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.db, nil
}

// GetSetting returns the stored value and whether the key exists.
func (s *SQLite) GetSetting(ctx context.Context, key string) (string, bool, error) {
	db, err := s.conn()
	if err != nil {
		return "", false, wrapErr("get", key, err)
	}
	var value *string
	err = db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr("get", key, err)
	}
	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}

func (s *SQLite) SetSetting(ctx context.Context, key, value string) error {
	db, err := s.conn()
	if err != nil {
		return wrapErr("set", key, err)
	}
	_, err = db.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapErr("set", key, err)
}

func (s *SQLite) LoadPreferences(ctx context.Context, defaults Preferences) (Preferences, error) {
	p := defaults
	if v, ok, err := s.GetSetting(ctx, KeyFocusMinutes); err != nil {
		return defaults, err
	} else if ok {
		p.FocusMinutes = atoiOr(v, defaults.FocusMinutes)
	}
	if v, ok, err := s.GetSetting(ctx, KeyBreakMinutes); err != nil {
		return defaults, err
	} else if ok {
		p.BreakMinutes = atoiOr(v, defaults.BreakMinutes)
	}
	if v, ok, err := s.GetSetting(ctx, KeyShowIcons); err != nil {
		return defaults, err
	} else if ok {
		p.ShowIcons = util.StringToBool(v, defaults.ShowIcons)
	}
	return p, nil
}

// SavePreferences writes all keys in one transaction.
func (s *SQLite) SavePreferences(ctx context.Context, p Preferences) error {
	db, err := s.conn()
	if err != nil {
		return wrapErr("save", "", err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("save", "", err)
	}
	values := [][2]string{
		{KeyFocusMinutes, strconv.Itoa(p.FocusMinutes)},
		{KeyBreakMinutes, strconv.Itoa(p.BreakMinutes)},
		{KeyShowIcons, util.BoolToString(p.ShowIcons)},
	}
	for _, kv := range values {
		if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", kv[0], kv[1]); err != nil {
			_ = tx.Rollback()
			return wrapErr("save", kv[0], err)
		}
	}
	return wrapErr("save", "", tx.Commit())
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
