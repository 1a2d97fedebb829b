package migrate

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRun_AppliesOnce(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	done, err := Run(ctx, db, logger)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(done) == 0 || done[0].Version != "0001" || done[0].Name != "measurements" {
		t.Fatalf("applied = %+v; want 0001_measurements first", done)
	}

	if _, err := db.Exec(
		`INSERT INTO measurements (client_id, timestamp, temp, hum) VALUES ('a', 1, 20, 40)`,
	); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}

	again, err := Run(ctx, db, logger)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second Run applied %d migrations; want 0", len(again))
	}
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)

	before, err := Status(ctx, db)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	for _, m := range before {
		if m.Applied {
			t.Errorf("%s applied before Run", m.Version)
		}
	}

	if _, err := Run(ctx, db, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	after, err := Status(ctx, db)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("Status len = %d; want %d", len(after), len(before))
	}
	for _, m := range after {
		if !m.Applied {
			t.Errorf("%s not applied after Run", m.Version)
		}
	}
}

func TestFileRe(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"0001_measurements.sql", true},
		{"1_short.sql", false},
		{"0002_x.txt", false},
	}
	for _, tt := range tests {
		if got := fileRe.MatchString(tt.name); got != tt.ok {
			t.Errorf("match(%q) = %v; want %v", tt.name, got, tt.ok)
		}
	}
}
