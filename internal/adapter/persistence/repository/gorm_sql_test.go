package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps every statement gorm renders. In dry-run mode nothing reaches the
// server, so these tests run without BOQ_TEST_DATABASE_DSN.
type sqlRecorder struct {
	logger.Interface
	mu         sync.Mutex
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statements) == 0 {
		t.Fatalf("no statement recorded")
	}
	return r.statements[len(r.statements)-1]
}

func (r *sqlRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.statements...)
}

func newDryRunStore(t *testing.T) (*GormStore, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{Interface: logger.Discard}
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=boq dbname=boq sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 rec,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return NewGormStore(db), rec
}

func TestGormStore_LockSectionSQL(t *testing.T) {
	ctx := context.Background()
	s, rec := newDryRunStore(t)

	if _, err := s.LockSection(ctx, "sec-1"); err != nil {
		t.Fatalf("lock: %v", err)
	}
	sql := rec.last(t)
	if !strings.Contains(sql, `"estimate_sections"`) || !strings.Contains(sql, "id = 'sec-1'") || !strings.HasSuffix(sql, "FOR UPDATE") {
		t.Fatalf("unexpected lock statement: %s", sql)
	}

	if _, err := s.GetSection(ctx, "sec-1"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if sql := rec.last(t); strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("plain read must not lock: %s", sql)
	}
}

func TestGormStore_TemplateListFiltersSQL(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		run     func(s *GormStore) error
		want    []string
		notWant []string
	}{
		{
			name: "work type works without filter",
			run: func(s *GormStore) error {
				_, err := s.GetWorkTypeWorks(ctx, "")
				return err
			},
			want:    []string{`FROM "work_type_works"`, "ORDER BY work_type_id, order_index, id"},
			notWant: []string{"WHERE"},
		},
		{
			name: "work type works by work type",
			run: func(s *GormStore) error {
				_, err := s.GetWorkTypeWorks(ctx, "wt-1")
				return err
			},
			want: []string{"work_type_id = 'wt-1'"},
		},
		{
			name: "work resources by work only",
			run: func(s *GormStore) error {
				_, err := s.GetWorkResources(ctx, "", "w-1")
				return err
			},
			want:    []string{`FROM "work_resources"`, "work_id = 'w-1'"},
			notWant: []string{"work_type_id ="},
		},
		{
			name: "work resources without filters",
			run: func(s *GormStore) error {
				_, err := s.GetWorkResources(ctx, "", "")
				return err
			},
			notWant: []string{"WHERE"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, rec := newDryRunStore(t)
			if err := tc.run(s); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			sql := rec.last(t)
			for _, w := range tc.want {
				if !strings.Contains(sql, w) {
					t.Fatalf("expected %q in %s", w, sql)
				}
			}
			for _, w := range tc.notWant {
				if strings.Contains(sql, w) {
					t.Fatalf("unexpected %q in %s", w, sql)
				}
			}
		})
	}
}

func TestGormStore_UpsertItemSQL(t *testing.T) {
	s, rec := newDryRunStore(t)
	if _, err := s.UpsertItem(context.Background(), "swt-1", "w-1", 12.5); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	var insert string
	for _, sql := range rec.all() {
		if strings.HasPrefix(sql, "INSERT") {
			insert = sql
		}
	}
	if !strings.Contains(insert, `ON CONFLICT ("section_work_type_id","work_id") DO UPDATE SET "volume"="excluded"."volume"`) {
		t.Fatalf("unexpected upsert statement: %s", insert)
	}
}
