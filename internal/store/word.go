package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type wordRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *wordRepo) Add(ctx context.Context, words ...Word) (added int, err error) {
	if len(words) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO words (text, level, added_at) VALUES (?, ?, ?) ON CONFLICT(text) DO NOTHING`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := formatTime(r.now())
	for _, w := range words {
		res, err := stmt.ExecContext(ctx, w.Text, w.Level, now)
		if err != nil {
			return 0, fmt.Errorf("insert word %q: %w", w.Text, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return added, nil
}

func (r *wordRepo) List(ctx context.Context, level string) ([]Word, error) {
	query := `SELECT text, level, added_at FROM words`
	var args []any
	if level != "" {
		query += ` WHERE level = ?`
		args = append(args, level)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var words []Word
	for rows.Next() {
		var w Word
		var added string
		if err := rows.Scan(&w.Text, &w.Level, &added); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		if w.AddedAt, err = parseTime(added); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (r *wordRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

func (r *wordRepo) Remove(ctx context.Context, text string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE text = ?`, text)
	if err != nil {
		return fmt.Errorf("delete word %q: %w", text, err)
	}
	return expectAffected(res, fmt.Sprintf("word %q", text))
}

func expectAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
