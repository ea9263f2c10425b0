package stats

import (
	"testing"
	"time"

	"github.com/yudhapratama/survei-server/models"
)

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }

func fullRow(rating int, qv int, suggestion string) models.Response {
	r := models.Response{
		ID:        time.Now().Format(time.RFC3339Nano),
		CreatedAt: time.Now(),
		Rating:    intp(rating),
		Q1:        intp(qv), Q2: intp(qv), Q3: intp(qv),
		Q4: intp(qv), Q5: intp(qv), Q6: intp(qv),
		Q7: intp(qv), Q8: intp(qv), Q9: intp(qv),
	}
	if suggestion != "" {
		r.Suggestion = strp(suggestion)
	}
	return r
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	if s.Total != 0 || s.Rated != 0 {
		t.Fatalf("empty input: total=%d rated=%d", s.Total, s.Rated)
	}
	// rata-rata atas nol baris harus 0, bukan NaN
	if s.Average != 0 || s.SatisfiedPct != 0 {
		t.Fatalf("average/satisfied harus 0 saat kosong, got %v / %v", s.Average, s.SatisfiedPct)
	}
	for _, q := range []string{"q1", "q5", "q9"} {
		if s.QAverages[q] != 0 {
			t.Fatalf("QAverages[%s] harus 0 saat kosong", q)
		}
	}
	if len(s.Distribution) != 5 {
		t.Fatalf("distribusi harus tetap 5 entri, got %d", len(s.Distribution))
	}
	if len(s.Insights) != 1 || s.Insights[0] != "Belum ada data untuk filter ini." {
		t.Fatalf("unexpected insights: %v", s.Insights)
	}
}

func TestAggregateBasics(t *testing.T) {
	rows := []models.Response{
		fullRow(5, 4, ""),
		fullRow(4, 3, ""),
		fullRow(4, 3, ""),
		fullRow(2, 2, ""),
	}
	s := Aggregate(rows)

	if s.Total != 4 || s.Rated != 4 {
		t.Fatalf("total=%d rated=%d", s.Total, s.Rated)
	}
	if want := (5.0 + 4 + 4 + 2) / 4; s.Average != want {
		t.Fatalf("average: want %v, got %v", want, s.Average)
	}
	if s.SatisfiedPct != 75 {
		t.Fatalf("satisfied: want 75, got %v", s.SatisfiedPct)
	}
	if s.Mode != 4 || s.ModeCount != 2 {
		t.Fatalf("mode: want 4x2, got %dx%d", s.Mode, s.ModeCount)
	}

	sum := 0
	for _, d := range s.Distribution {
		sum += d.Count
	}
	if sum != s.Rated {
		t.Fatalf("jumlah distribusi (%d) harus sama dengan baris ber-rating (%d)", sum, s.Rated)
	}
	if s.Distribution[0].Rating != 1 || s.Distribution[0].Count != 0 {
		t.Fatalf("nilai tanpa data harus tetap muncul dengan count 0")
	}
}

func TestAggregateModeTieLowestWins(t *testing.T) {
	rows := []models.Response{
		fullRow(4, 3, ""),
		fullRow(2, 3, ""),
		fullRow(4, 3, ""),
		fullRow(2, 3, ""),
	}
	s := Aggregate(rows)
	if s.Mode != 2 {
		t.Fatalf("seri 2 vs 4 harus jatuh ke nilai terendah, got %d", s.Mode)
	}
}

func TestAggregateSkipsMalformedPerField(t *testing.T) {
	bad := models.Response{ID: "x", CreatedAt: time.Now()} // semua kolom angka kosong
	outOfDomain := fullRow(9, 3, "")
	rows := []models.Response{fullRow(4, 2, ""), bad, outOfDomain}

	s := Aggregate(rows)
	if s.Total != 3 {
		t.Fatalf("baris cacat tetap dihitung di total, got %d", s.Total)
	}
	if s.Rated != 1 {
		t.Fatalf("hanya rating valid yang masuk statistik, got %d", s.Rated)
	}
	if s.Average != 4 {
		t.Fatalf("rata-rata hanya dari rating valid, got %v", s.Average)
	}
	if s.QAverages["q1"] != 2.5 {
		t.Fatalf("q1 dari dua baris berisi (2 dan 3), got %v", s.QAverages["q1"])
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	rows := []models.Response{fullRow(3, 3, "antrian lama")}
	before := *rows[0].Rating
	Aggregate(rows)
	Aggregate(rows)
	if *rows[0].Rating != before {
		t.Fatalf("input tidak boleh berubah")
	}
}

func TestAggregateInsights(t *testing.T) {
	rows := []models.Response{
		fullRow(4, 3, "antrian di loket sangat lama"),
		fullRow(4, 3, ""),
	}
	s := Aggregate(rows)
	if len(s.Insights) != 3 {
		t.Fatalf("expected 3 kalimat insight, got %v", s.Insights)
	}
	if s.Insights[0] != "Mayoritas rating: 4 😊 (paling banyak)." {
		t.Fatalf("unexpected insight[0]: %q", s.Insights[0])
	}
	if s.Insights[1] != "Kepuasan (rating 4–5): 100%." {
		t.Fatalf("unexpected insight[1]: %q", s.Insights[1])
	}
	if s.Insights[2] != "Isu yang paling sering muncul: Antrian." {
		t.Fatalf("unexpected insight[2]: %q", s.Insights[2])
	}
}
