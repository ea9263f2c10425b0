package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/yudhapratama/survei-server/models"
)

// Placeholder untuk sel kosong di dokumen.
const emptyCell = "—"

const timestampLayout = "02-01-2006 15:04"

// Headers untuk semua format keluaran.
var Headers = []string{"No", "Waktu", "Rating", "Saran"}

// Row adalah satu baris tabel dokumen, sudah dalam bentuk teks jadi.
type Row struct {
	Index      int
	Timestamp  string
	Rating     string
	Suggestion string
}

// RatingLabel memformat "4 — Baik"; rating kosong jadi placeholder.
func RatingLabel(v *int) string {
	if v == nil {
		return emptyCell
	}
	label, ok := models.RatingLabels[*v]
	if !ok {
		return fmt.Sprintf("%d", *v)
	}
	return fmt.Sprintf("%d — %s", *v, label)
}

// BuildRows memetakan baris yang SUDAH dimuat ke baris dokumen. Tidak ada
// fetch atau filter ulang di sini; yang tampil itulah yang diekspor.
func BuildRows(rows []models.Response) []Row {
	out := make([]Row, 0, len(rows))
	for i := range rows {
		suggestion := rows[i].SuggestionText()
		if suggestion == "" {
			suggestion = emptyCell
		}
		out = append(out, Row{
			Index:      i + 1,
			Timestamp:  rows[i].CreatedAt.Format(timestampLayout),
			Rating:     RatingLabel(rows[i].Rating),
			Suggestion: suggestion,
		})
	}
	return out
}

// Filter adalah deskripsi filter aktif saat ekspor diminta, untuk header
// dokumen (bukan bagian data baris).
type Filter struct {
	From    *time.Time
	To      *time.Time
	Rating  int
	Keyword string
}

// Summary merangkai satu baris keterangan: periode, rating, kata kunci.
func (f Filter) Summary() string {
	period := "semua tanggal"
	if f.From != nil && f.To != nil {
		period = fmt.Sprintf("%s s.d. %s", f.From.Format("02-01-2006"), f.To.Format("02-01-2006"))
	}

	rating := "semua"
	if f.Rating != 0 {
		rating = fmt.Sprintf("%d", f.Rating)
	}

	parts := []string{
		"Periode: " + period,
		"Rating: " + rating,
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		parts = append(parts, fmt.Sprintf("Kata kunci: %q", kw))
	}
	return strings.Join(parts, " • ")
}
