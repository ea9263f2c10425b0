package view

import (
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/yudhapratama/survei-server/models"
)

func TestLikeEscape(t *testing.T) {
	cases := map[string]string{
		"ramah":     "ramah",
		"100%":      `100\%`,
		"a_b":       `a\_b`,
		`C:\folder`: `C:\\folder`,
		`50%_\`:     `50\%\_\\`,
	}
	for in, want := range cases {
		if got := likeEscape(in); got != want {
			t.Fatalf("likeEscape(%q): want %q, got %q", in, want, got)
		}
	}
}

// Kata kunci dengan metakarakter LIKE harus sampai ke query sebagai pola
// harfiah; kalau tidak, query dan Predicate bisa beda hasil.
func TestApplyKeywordLiteralPattern(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	s := ViewState{Preset: PresetToday, Keyword: "100%"}

	q, err := s.Apply(db, now)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	var rows []models.Response
	stmt := q.Find(&rows).Statement

	found := false
	for _, v := range stmt.Vars {
		if str, ok := v.(string); ok && str == `%100\%%` {
			found = true
		}
	}
	if !found {
		t.Fatalf("pola ILIKE harus meloloskan %%, vars: %v", stmt.Vars)
	}
}

// Predicate memperlakukan metakarakter yang sama secara harfiah.
func TestPredicateKeywordLiteralMetacharacters(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	s := ViewState{Preset: PresetToday, Keyword: "100%"}
	match, err := s.Predicate(now)
	if err != nil {
		t.Fatalf("Predicate error: %v", err)
	}

	ts := time.Date(2025, 10, 5, 10, 0, 0, 0, time.UTC)
	if !match(row(ts, 4, "kepuasan naik 100% bulan ini")) {
		t.Fatalf("saran yang memuat kata kunci harfiah harus lolos")
	}
	if match(row(ts, 4, "kepuasan naik 100x bulan ini")) {
		t.Fatalf("%% bukan wildcard: '100x' tidak boleh lolos untuk kata kunci '100%%'")
	}
}
