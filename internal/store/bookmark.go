package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type bookmarkRepo struct {
	db  *sql.DB
	now func() time.Time
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row rowScanner) (*Bookmark, error) {
	var b Bookmark
	var created string
	if err := row.Scan(&b.ID, &b.Word, &b.Translation, &created); err != nil {
		return nil, err
	}
	t, err := parseTime(created)
	if err != nil {
		return nil, err
	}
	b.CreatedAt = t
	return &b, nil
}

func (r *bookmarkRepo) Add(ctx context.Context, word, translation string) (*Bookmark, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO bookmarks (word, translation, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(word) DO UPDATE SET translation = excluded.translation
		 RETURNING id, word, translation, created_at`,
		word, translation, formatTime(r.now()))
	b, err := scanBookmark(row)
	if err != nil {
		return nil, fmt.Errorf("save bookmark %q: %w", word, err)
	}
	return b, nil
}

func (r *bookmarkRepo) List(ctx context.Context) ([]Bookmark, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, word, translation, created_at FROM bookmarks ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	var out []Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *bookmarkRepo) Get(ctx context.Context, id int64) (*Bookmark, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, word, translation, created_at FROM bookmarks WHERE id = ?`, id)
	b, err := scanBookmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get bookmark %d: %w", id, err)
	}
	return b, nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	return expectAffected(res, fmt.Sprintf("bookmark %d", id))
}
