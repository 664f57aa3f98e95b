package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// fixedClock makes timestamps deterministic and advances one second per call.
func fixedClock(s *Store, start time.Time) {
	cur := start
	s.now = func() time.Time {
		t := cur
		cur = cur.Add(time.Second)
		return t
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationsCreateTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"words", "bookmarks", "llm_events"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.WordRepo().Add(ctx, Word{Text: "apple", Level: "A1"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	n, err := s.WordRepo().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestWordRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	added, err := repo.Add(ctx,
		Word{Text: "apple", Level: "A1"},
		Word{Text: "borrow", Level: "A2"},
		Word{Text: "cat", Level: "A1"},
		Word{Text: "apple", Level: "B2"},
	)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added != 3 {
		t.Errorf("added = %d, want 3", added)
	}

	added, err = repo.Add(ctx, Word{Text: "cat"})
	if err != nil {
		t.Fatalf("add duplicate: %v", err)
	}
	if added != 0 {
		t.Errorf("duplicate add = %d, want 0", added)
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("list len = %d, want 3", len(all))
	}
	if all[0].Text != "apple" || all[0].Level != "A1" {
		t.Errorf("first word = %+v, want apple/A1", all[0])
	}

	a1, err := repo.List(ctx, "A1")
	if err != nil {
		t.Fatalf("list A1: %v", err)
	}
	if len(a1) != 2 {
		t.Errorf("A1 words = %d, want 2", len(a1))
	}

	if err := repo.Remove(ctx, "cat"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := repo.Remove(ctx, "cat"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove err = %v, want ErrNotFound", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestBookmarkRepo(t *testing.T) {
	s := openTestStore(t)
	fixedClock(s, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	repo := s.BookmarkRepo()
	ctx := context.Background()

	first, err := repo.Add(ctx, "apple", "elma")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == 0 || first.Word != "apple" || first.Translation != "elma" {
		t.Errorf("bookmark = %+v", first)
	}

	if _, err := repo.Add(ctx, "river", "nehir"); err != nil {
		t.Fatalf("add river: %v", err)
	}

	// Re-adding updates the translation in place.
	again, err := repo.Add(ctx, "apple", "elma (meyve)")
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("re-add id = %d, want %d", again.ID, first.ID)
	}
	if !again.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("re-add created_at changed: %v -> %v", first.CreatedAt, again.CreatedAt)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list len = %d, want 2", len(list))
	}
	if list[0].Word != "river" {
		t.Errorf("newest bookmark = %q, want river", list[0].Word)
	}
	if list[1].Translation != "elma (meyve)" {
		t.Errorf("apple translation = %q", list[1].Translation)
	}

	got, err := repo.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Word != "apple" {
		t.Errorf("get = %+v, want apple", got)
	}

	missing, err := repo.Get(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("get missing = %+v, want nil", missing)
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestEventRepoAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	fixedClock(s, start)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "sentence-gen", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true, RequestBody: "[user]\nhi", ResponseBody: `{"sentence":"x"}`},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "translate", InputTokens: 40, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "translate", InputTokens: 60, OutputTokens: 7, LatencyMs: 200, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "passage-gen", InputTokens: 200, OutputTokens: 180, LatencyMs: 900, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("events = %d, want 4", len(all))
	}
	if all[0].Purpose != "passage-gen" {
		t.Errorf("newest purpose = %q, want passage-gen", all[0].Purpose)
	}
	if !all[3].Timestamp.Equal(start) {
		t.Errorf("oldest timestamp = %v, want %v", all[3].Timestamp, start)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited = %d, want 2", len(limited))
	}

	translations, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "translate"})
	if err != nil {
		t.Fatalf("query purpose: %v", err)
	}
	if len(translations) != 2 {
		t.Errorf("translate events = %d, want 2", len(translations))
	}

	windowed, err := repo.QueryLLMEvents(ctx, QueryOpts{From: start.Add(time.Second), To: start.Add(2 * time.Second)})
	if err != nil {
		t.Fatalf("query window: %v", err)
	}
	if len(windowed) != 2 {
		t.Errorf("windowed events = %d, want 2", len(windowed))
	}

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: int64(all[1].ID)})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 {
		t.Errorf("events after id %d = %d, want 1", all[1].ID, len(after))
	}

	e, err := repo.GetLLMEvent(ctx, all[3].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.RequestBody != "[user]\nhi" || e.ResponseBody != `{"sentence":"x"}` {
		t.Errorf("bodies = %q / %q", e.RequestBody, e.ResponseBody)
	}
	if !e.Success {
		t.Error("expected success")
	}

	failed, err := repo.GetLLMEvent(ctx, all[1].ID)
	if err != nil {
		t.Fatalf("get failed event: %v", err)
	}
	if failed.Success || failed.ErrorMessage != "rate limited" {
		t.Errorf("failed event = %+v", failed)
	}

	missing, err := repo.GetLLMEvent(ctx, 12345)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestEventRepoUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Model: "m1", Purpose: "translate", InputTokens: 10, OutputTokens: 1, LatencyMs: 100},
		{Model: "m1", Purpose: "translate", InputTokens: 30, OutputTokens: 3, LatencyMs: 300},
		{Model: "m2", Purpose: "sentence-gen", InputTokens: 50, OutputTokens: 20, LatencyMs: 500},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	tr := byPurpose[0]
	if tr.Purpose != "translate" || tr.Calls != 2 || tr.InputTokens != 40 || tr.OutputTokens != 4 || tr.AvgLatencyMs != 200 {
		t.Errorf("translate usage = %+v", tr)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	if byModel[1].Model != "m2" || byModel[1].Calls != 1 || byModel[1].InputTokens != 50 {
		t.Errorf("m2 usage = %+v", byModel[1])
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("LINGOZ_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if want := filepath.Join(dir, "lingoz", "lingoz.db"); p != want {
		t.Errorf("path = %q, want %q", p, want)
	}

	override := filepath.Join(dir, "custom", "x.db")
	t.Setenv("LINGOZ_DB", override)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("env path: %v", err)
	}
	if p != override {
		t.Errorf("path = %q, want %q", p, override)
	}
}
