package stats

import (
	"fmt"

	"github.com/yudhapratama/survei-server/models"
)

// RatingCount adalah satu batang di chart distribusi, termasuk nilai yang
// count-nya nol supaya sumbu chart selalu lengkap 1..5.
type RatingCount struct {
	Rating int    `json:"rating"`
	Count  int    `json:"count"`
	Emoji  string `json:"emoji"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// Summary adalah hasil agregasi satu jendela filter untuk halaman charts.
type Summary struct {
	Total        int                `json:"total"`
	Rated        int                `json:"rated"` // baris dengan rating valid
	Average      float64            `json:"average"`
	QAverages    map[string]float64 `json:"q_averages"`
	SatisfiedPct float64            `json:"satisfied_pct"`
	Mode         int                `json:"mode"`
	ModeCount    int                `json:"mode_count"`
	Distribution []RatingCount      `json:"distribution"`
	TopIssues    []IssueCount       `json:"top_issues"`
	Insights     []string           `json:"insights"`
}

func ratingOf(r *models.Response) (int, bool) {
	if r.Rating == nil {
		return 0, false
	}
	v := *r.Rating
	if v < models.RatingMin || v > models.RatingMax {
		return 0, false
	}
	return v, true
}

// Aggregate menghitung seluruh statistik halaman charts dari baris yang sudah
// terfilter. Fungsi murni: tidak menyentuh database, tidak mengubah input.
// Baris yang kolom angkanya bolong tetap dihitung di Total tapi dilewati oleh
// statistik yang butuh kolom itu.
func Aggregate(rows []models.Response) Summary {
	s := Summary{
		Total:     len(rows),
		QAverages: map[string]float64{},
	}

	counts := map[int]int{}
	sum := 0
	satisfied := 0
	for i := range rows {
		v, ok := ratingOf(&rows[i])
		if !ok {
			continue
		}
		counts[v]++
		sum += v
		s.Rated++
		if v >= models.SatisfiedThreshold {
			satisfied++
		}
	}

	if s.Rated > 0 {
		s.Average = float64(sum) / float64(s.Rated)
		s.SatisfiedPct = float64(satisfied) / float64(s.Rated) * 100
	}

	// Distribusi penuh 1..5; mode diambil dari enumerasi menaik sehingga seri
	// jatuh ke nilai terendah — deterministik.
	for v := models.RatingMin; v <= models.RatingMax; v++ {
		s.Distribution = append(s.Distribution, RatingCount{
			Rating: v,
			Count:  counts[v],
			Emoji:  models.RatingEmoji[v],
			Label:  models.RatingLabels[v],
			Color:  models.RatingColors[v],
		})
		if counts[v] > s.ModeCount {
			s.Mode = v
			s.ModeCount = counts[v]
		}
	}

	for qi := 1; qi <= 9; qi++ {
		key := fmt.Sprintf("q%d", qi)
		qsum, qn := 0, 0
		for i := range rows {
			v, ok := rows[i].QValue(qi)
			if !ok || v < models.QMin || v > models.QMax {
				continue
			}
			qsum += v
			qn++
		}
		if qn > 0 {
			s.QAverages[key] = float64(qsum) / float64(qn)
		} else {
			s.QAverages[key] = 0
		}
	}

	s.TopIssues = TopIssues(rows, TopIssuesLimit)
	s.Insights = insights(s)
	return s
}

// insights merangkai kalimat dari angka yang sudah dihitung; tidak ada
// perhitungan baru di sini.
func insights(s Summary) []string {
	if s.Rated == 0 {
		return []string{"Belum ada data untuk filter ini."}
	}
	out := []string{
		fmt.Sprintf("Mayoritas rating: %d %s (paling banyak).", s.Mode, models.RatingEmoji[s.Mode]),
		fmt.Sprintf("Kepuasan (rating 4–5): %.0f%%.", s.SatisfiedPct),
	}
	if len(s.TopIssues) > 0 {
		out = append(out, fmt.Sprintf("Isu yang paling sering muncul: %s.", s.TopIssues[0].Name))
	}
	return out
}
