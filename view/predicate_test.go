package view

import (
	"testing"
	"time"

	"github.com/yudhapratama/survei-server/models"
)

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }

func row(ts time.Time, rating int, suggestion string) models.Response {
	r := models.Response{ID: ts.Format(time.RFC3339Nano), CreatedAt: ts, Rating: intp(rating)}
	if suggestion != "" {
		r.Suggestion = strp(suggestion)
	}
	return r
}

func TestPredicateDateBoundaries(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	s := ViewState{Preset: PresetCustom, From: "2025-10-01", To: "2025-10-10"}

	match, err := s.Predicate(now)
	if err != nil {
		t.Fatalf("Predicate error: %v", err)
	}

	inside := row(time.Date(2025, 10, 10, 23, 59, 59, 0, time.UTC), 3, "")
	outside := row(time.Date(2025, 10, 11, 0, 0, 0, 0, time.UTC), 3, "")
	before := row(time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC), 3, "")

	if !match(inside) {
		t.Fatalf("23:59:59 pada tanggal to harus masuk")
	}
	if match(outside) {
		t.Fatalf("00:00:00 hari setelah to harus keluar")
	}
	if match(before) {
		t.Fatalf("sebelum from harus keluar")
	}
}

func TestPredicateRating(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	s := ViewState{Preset: PresetToday, Rating: 4}
	match, err := s.Predicate(now)
	if err != nil {
		t.Fatalf("Predicate error: %v", err)
	}

	ts := time.Date(2025, 10, 5, 10, 0, 0, 0, time.UTC)
	if !match(row(ts, 4, "")) {
		t.Fatalf("rating 4 harus lolos filter rating=4")
	}
	if match(row(ts, 1, "")) {
		t.Fatalf("rating 1 tidak boleh lolos filter rating=4")
	}

	noRating := models.Response{ID: "x", CreatedAt: ts}
	if match(noRating) {
		t.Fatalf("baris tanpa rating tidak boleh lolos filter rating")
	}
}

func TestPredicateKeyword(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	s := ViewState{Preset: PresetToday, Keyword: "RAMAH"}
	match, err := s.Predicate(now)
	if err != nil {
		t.Fatalf("Predicate error: %v", err)
	}

	ts := time.Date(2025, 10, 5, 10, 0, 0, 0, time.UTC)
	if !match(row(ts, 4, "petugas sangat ramah")) {
		t.Fatalf("pencarian harus case-insensitive")
	}
	if match(row(ts, 4, "antrian lama")) {
		t.Fatalf("saran tanpa kata kunci tidak boleh lolos")
	}
	if match(row(ts, 4, "")) {
		t.Fatalf("saran kosong tidak boleh lolos filter kata kunci")
	}
}

// Predicate dan Apply diturunkan dari Range dan Keyword yang sama; tes ini
// mengunci kesepakatan semantiknya pada kasus gabungan.
func TestPredicateCombined(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	s := ViewState{Preset: PresetCustom, From: "2025-10-01", To: "2025-10-20", Rating: 4, Keyword: "ramah"}
	match, err := s.Predicate(now)
	if err != nil {
		t.Fatalf("Predicate error: %v", err)
	}

	ok := row(time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC), 4, "petugas sangat ramah")
	if !match(ok) {
		t.Fatalf("baris yang memenuhi semua syarat harus lolos")
	}

	wrongRating := row(time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC), 1, "petugas sangat ramah")
	if match(wrongRating) {
		t.Fatalf("rating salah harus gagal walau kata kunci cocok")
	}
}
