// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/artflow/base/iox/jsonx"
	"cogentcore.org/artflow/scene"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL,
    name        TEXT NOT NULL,
    thumbnail   TEXT NOT NULL DEFAULT '',
    elements    TEXT NOT NULL,
    canvas      TEXT NOT NULL,
    version     TEXT NOT NULL,
    created_at  INTEGER NOT NULL,
    updated_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS projects_user ON projects(user_id, updated_at DESC);
`

// SQLStore is a [Store] in an SQLite database.
type SQLStore struct {
	db *sql.DB

	// Now returns the current time; it is replaced in tests.
	Now func() time.Time
}

// OpenSQL opens (or creates) the SQLite database at path, with WAL
// journaling, and creates the schema. Use ":memory:" for a
// private in-memory database.
func OpenSQL(path string) (*SQLStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("project: mkdir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("project: open: %w", err)
	}
	if path == ":memory:" {
		// each connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}
	pragmas := []string{
		"PRAGMA foreign_keys=ON",
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=10000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range append(pragmas, schema) {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("project: %s: %w", p, err)
		}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("project: ping: %w", err)
	}
	return &SQLStore{db: db, Now: time.Now}, nil
}

// Close closes the database.
func (st *SQLStore) Close() error { return st.db.Close() }

func (st *SQLStore) now() time.Time {
	return st.Now().UTC().Truncate(time.Millisecond)
}

// owner returns the user id of the project, or [ErrNotFound].
func (st *SQLStore) owner(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, id string) (string, error) {
	var uid string
	err := q.QueryRowContext(ctx, `SELECT user_id FROM projects WHERE id = ?`, id).Scan(&uid)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return uid, err
}

func (st *SQLStore) Save(ctx context.Context, userID string, rec *Record) (*Record, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	out := rec.Clone()
	out.UserID = userID
	out.Version = FormatVersion
	out.UpdatedAt = st.now()
	elements, err := jsonx.WriteBytes(out.Elements)
	if err != nil {
		return nil, fmt.Errorf("project: encoding elements: %w", err)
	}
	canvas, err := jsonx.WriteBytes(out.Canvas)
	if err != nil {
		return nil, fmt.Errorf("project: encoding canvas: %w", err)
	}

	tx, err := st.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("project: begin: %w", err)
	}
	defer tx.Rollback()

	exists := false
	if out.ID != "" {
		uid, err := st.owner(ctx, tx, out.ID)
		switch {
		case err == nil:
			if uid != userID {
				return nil, ErrForbidden
			}
			exists = true
		case !errors.Is(err, ErrNotFound):
			return nil, fmt.Errorf("project: %w", err)
		}
	}
	if exists {
		_, err = tx.ExecContext(ctx, `UPDATE projects SET name = ?, thumbnail = ?, elements = ?, canvas = ?, version = ?, updated_at = ? WHERE id = ?`,
			out.Name, out.Thumbnail, string(elements), string(canvas), out.Version, out.UpdatedAt.UnixMilli(), out.ID)
		if err == nil {
			err = tx.QueryRowContext(ctx, `SELECT created_at FROM projects WHERE id = ?`, out.ID).Scan(millis{&out.CreatedAt})
		}
	} else {
		if out.ID != "" {
			slog.Debug("project.Save: unknown id, creating new project", "id", out.ID)
		}
		out.ID = scene.NewID()
		out.CreatedAt = out.UpdatedAt
		_, err = tx.ExecContext(ctx, `INSERT INTO projects (id, user_id, name, thumbnail, elements, canvas, version, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			out.ID, userID, out.Name, out.Thumbnail, string(elements), string(canvas), out.Version, out.CreatedAt.UnixMilli(), out.UpdatedAt.UnixMilli())
	}
	if err != nil {
		return nil, fmt.Errorf("project: save %s: %w", out.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("project: commit: %w", err)
	}
	return out, nil
}

const selectRecord = `SELECT id, user_id, name, thumbnail, elements, canvas, version, created_at, updated_at FROM projects`

func scanRecord(row interface{ Scan(dest ...any) error }) (*Record, error) {
	rec := &Record{}
	var elements, canvas string
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Name, &rec.Thumbnail, &elements, &canvas, &rec.Version, millis{&rec.CreatedAt}, millis{&rec.UpdatedAt})
	if err != nil {
		return nil, err
	}
	if err := jsonx.ReadBytes(&rec.Elements, []byte(elements)); err != nil {
		return nil, fmt.Errorf("project %s: decoding elements: %w", rec.ID, err)
	}
	if err := jsonx.ReadBytes(&rec.Canvas, []byte(canvas)); err != nil {
		return nil, fmt.Errorf("project %s: decoding canvas: %w", rec.ID, err)
	}
	return rec, nil
}

func (st *SQLStore) Get(ctx context.Context, userID, id string) (*Record, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	rec, err := scanRecord(st.db.QueryRowContext(ctx, selectRecord+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("project: get %s: %w", id, err)
	}
	if rec.UserID != userID {
		return nil, ErrForbidden
	}
	return rec, nil
}

func (st *SQLStore) List(ctx context.Context, userID string) ([]*Record, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	rows, err := st.db.QueryContext(ctx, selectRecord+` WHERE user_id = ? ORDER BY updated_at DESC, created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("project: list: %w", err)
	}
	defer rows.Close()
	var recs []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("project: list: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (st *SQLStore) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	uid, err := st.owner(ctx, st.db, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("project: delete %s: %w", id, err)
	}
	if uid != userID {
		return ErrForbidden
	}
	_, err = st.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}

// millis scans a unix millisecond column into a time.
type millis struct {
	t *time.Time
}

func (m millis) Scan(src any) error {
	ms, ok := src.(int64)
	if !ok {
		return fmt.Errorf("project: time column is %T, not int64", src)
	}
	*m.t = time.UnixMilli(ms).UTC()
	return nil
}
