// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"smartpress/internal/apperror"
	"smartpress/internal/model"
)

// DBStore is a single-file embedded relational backend. Only page
// operations are implemented; widgets and CSS classes no-op, same as
// every backend that doesn't carry that capability.
type DBStore struct {
	db *sql.DB
}

// NewDBStore opens (creating if absent) the SQLite file at url and
// initializes the pages/elements tables.
func NewDBStore(url string) (*DBStore, error) {
	db, err := sql.Open("sqlite3", url)
	if err != nil {
		return nil, apperror.Backend("open db store", err)
	}
	s := &DBStore{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	slog.Info("connected to db store", "url", url)
	return s, nil
}

func (s *DBStore) init() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pages (path TEXT PRIMARY KEY, data JSON)`,
		`CREATE TABLE IF NOT EXISTS elements (path TEXT PRIMARY KEY, html TEXT, css TEXT, data JSON)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return apperror.Backend("init db store schema", err)
		}
	}
	return nil
}

func (s *DBStore) Close() error { return s.db.Close() }

func (s *DBStore) LoadPageDefinition(ctx context.Context, localPath string) (*model.Page, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM pages WHERE path = ?`, localPath).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Backend("load page "+localPath, err)
	}
	var page model.Page
	if err := json.Unmarshal([]byte(data), &page); err != nil {
		return nil, apperror.Backend("decode page "+localPath, err)
	}
	return &page, nil
}

func (s *DBStore) SavePageDefinition(ctx context.Context, localPath string, page *model.Page) error {
	data, err := json.Marshal(page)
	if err != nil {
		return apperror.Backend("encode page "+localPath, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pages (path, data) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET data = excluded.data
	`, localPath, string(data))
	if err != nil {
		return apperror.Backend("save page "+localPath, err)
	}
	return nil
}

func (s *DBStore) DeletePageDefinition(ctx context.Context, localPath string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE path = ?`, localPath)
	if err != nil {
		return false, apperror.Backend("delete page "+localPath, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Backend("delete page "+localPath, err)
	}
	return n > 0, nil
}

// GetPageList selects with LIMIT/OFFSET and counts with a second
// statement, matching the backend's two-query contract. limit <= 0
// means "no limit" (the federation layer collects each backend's full
// set before re-slicing for global pagination), which SQLite only
// honors for a negative LIMIT — 0 would return no rows. Rows whose JSON
// fails to decode are logged and skipped, not propagated.
func (s *DBStore) GetPageList(ctx context.Context, offset, limit int, _ model.PageFilter) (model.PageListResult, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `SELECT path, data FROM pages LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return model.PageListResult{}, apperror.Backend("list pages", err)
	}
	defer rows.Close()

	var items []model.PageInfo
	for rows.Next() {
		var path, data string
		if err := rows.Scan(&path, &data); err != nil {
			return model.PageListResult{}, apperror.Backend("scan page row", err)
		}
		var page model.Page
		if err := json.Unmarshal([]byte(data), &page); err != nil {
			slog.Error("skipping page with undecodable data", "path", path, "error", err)
			continue
		}
		items = append(items, model.PageInfo{ID: path, Title: page.Title})
	}
	if err := rows.Err(); err != nil {
		return model.PageListResult{}, apperror.Backend("iterate page rows", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&count); err != nil {
		return model.PageListResult{}, apperror.Backend("count pages", err)
	}

	return model.PageListResult{Count: count, Results: items}, nil
}

func (s *DBStore) LoadWidgetDefinition(_ context.Context, _ string) (*model.Widget, error) {
	return nil, nil
}

func (s *DBStore) GetWidgetList(_ context.Context) (model.WidgetListResult, error) {
	return model.WidgetListResult{}, nil
}

func (s *DBStore) LoadCssClassDefinition(_ context.Context, _ string) (*model.CssClass, error) {
	return nil, nil
}

func (s *DBStore) LoadCssClasses(_ context.Context) (model.CssClassListResult, error) {
	return model.CssClassListResult{}, nil
}
