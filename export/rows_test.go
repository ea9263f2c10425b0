package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/yudhapratama/survei-server/models"
)

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }

func TestBuildRows(t *testing.T) {
	ts := time.Date(2025, 10, 5, 14, 30, 0, 0, time.UTC)
	rows := BuildRows([]models.Response{
		{ID: "a", CreatedAt: ts, Rating: intp(4), Suggestion: strp("petugas ramah")},
		{ID: "b", CreatedAt: ts, Rating: nil, Suggestion: strp("   ")},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Index != 1 || rows[1].Index != 2 {
		t.Fatalf("index harus urut mulai 1")
	}
	if rows[0].Timestamp != "05-10-2025 14:30" {
		t.Fatalf("unexpected timestamp: %q", rows[0].Timestamp)
	}
	if rows[0].Rating != "4 — Baik" {
		t.Fatalf("unexpected rating label: %q", rows[0].Rating)
	}
	if rows[1].Rating != "—" || rows[1].Suggestion != "—" {
		t.Fatalf("kolom kosong harus jadi placeholder: %+v", rows[1])
	}
}

func TestFilterSummary(t *testing.T) {
	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)

	f := Filter{From: &from, To: &to, Rating: 4, Keyword: "ramah"}
	got := f.Summary()
	if !strings.Contains(got, "01-10-2025 s.d. 10-10-2025") {
		t.Fatalf("periode hilang: %q", got)
	}
	if !strings.Contains(got, "Rating: 4") {
		t.Fatalf("rating hilang: %q", got)
	}
	if !strings.Contains(got, `"ramah"`) {
		t.Fatalf("kata kunci hilang: %q", got)
	}

	empty := Filter{}.Summary()
	if !strings.Contains(empty, "semua tanggal") || !strings.Contains(empty, "Rating: semua") {
		t.Fatalf("default filter: %q", empty)
	}
	if strings.Contains(empty, "Kata kunci") {
		t.Fatalf("kata kunci kosong tidak perlu dicantumkan: %q", empty)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := BuildRows([]models.Response{
		{ID: "a", CreatedAt: time.Date(2025, 10, 5, 8, 0, 0, 0, time.UTC), Rating: intp(5), Suggestion: strp("mantap, lanjutkan")},
	})
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 baris, got %d", len(lines))
	}
	if lines[0] != "No,Waktu,Rating,Saran" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], `"mantap, lanjutkan"`) {
		t.Fatalf("koma di saran harus di-quote: %q", lines[1])
	}
}

func TestWriteXLSXAndPDFProduceOutput(t *testing.T) {
	rows := BuildRows([]models.Response{
		{ID: "a", CreatedAt: time.Now(), Rating: intp(3), Suggestion: strp("antrian lama")},
	})
	f := Filter{Rating: 3}

	var xlsxBuf bytes.Buffer
	if err := WriteXLSX(&xlsxBuf, f, rows); err != nil {
		t.Fatalf("WriteXLSX error: %v", err)
	}
	if xlsxBuf.Len() == 0 {
		t.Fatalf("xlsx kosong")
	}

	var pdfBuf bytes.Buffer
	if err := WritePDF(&pdfBuf, f, rows); err != nil {
		t.Fatalf("WritePDF error: %v", err)
	}
	if !bytes.HasPrefix(pdfBuf.Bytes(), []byte("%PDF")) {
		t.Fatalf("keluaran bukan PDF")
	}
}

func TestWritePDFMultilineSuggestion(t *testing.T) {
	long := strings.Repeat("saran yang panjang sekali supaya melipat beberapa baris ", 6)
	rows := BuildRows([]models.Response{
		{ID: "a", CreatedAt: time.Now(), Rating: intp(2), Suggestion: strp(long)},
		{ID: "b", CreatedAt: time.Now(), Rating: intp(4), Suggestion: strp("singkat")},
	})

	var buf bytes.Buffer
	if err := WritePDF(&buf, Filter{}, rows); err != nil {
		t.Fatalf("WritePDF error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("keluaran bukan PDF")
	}
}
