// Package session persists the player's game session cookies between
// runs so the agent does not have to log in every time.
package session

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(schema)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored session with the given cookies.
func (s *Store) Save(ctx context.Context, cookies []*http.Cookie) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM cookies`)
	if err != nil {
		return err
	}
	for _, cookie := range cookies {
		var expires int64
		if !cookie.Expires.IsZero() {
			expires = cookie.Expires.Unix()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO cookies (name, value, domain, path, expires)
			 VALUES (?, ?, ?, ?, ?)`,
			cookie.Name, cookie.Value, cookie.Domain, cookie.Path, expires,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load returns the stored session cookies, dropping expired ones.
func (s *Store) Load(ctx context.Context) ([]*http.Cookie, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, value, domain, path, expires FROM cookies`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()
	var cookies []*http.Cookie
	for rows.Next() {
		var cookie http.Cookie
		var expires int64
		err = rows.Scan(&cookie.Name, &cookie.Value, &cookie.Domain, &cookie.Path, &expires)
		if err != nil {
			return nil, err
		}
		if expires > 0 {
			cookie.Expires = time.Unix(expires, 0)
			if cookie.Expires.Before(now) {
				continue
			}
		}
		cookies = append(cookies, &cookie)
	}
	return cookies, rows.Err()
}
