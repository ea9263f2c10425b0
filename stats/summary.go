package stats

import (
	"fmt"
	"time"

	"github.com/yudhapratama/survei-server/models"
)

// Jumlah saran terbaru yang ikut di halaman results.
const latestSuggestionLimit = 6

type QuestionAverage struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Average float64 `json:"average"`
}

type SuggestionItem struct {
	CreatedAt   time.Time `json:"created_at"`
	ServiceType string    `json:"service_type"`
	Text        string    `json:"text"`
}

// ResultSummary adalah rekap halaman results: baris lengkap saja yang masuk
// hitungan rata-rata, plus saran terbaru apa adanya.
type ResultSummary struct {
	Complete          int               `json:"complete"`
	Average           float64           `json:"average"`
	Verdict           string            `json:"verdict"`
	PerQuestion       []QuestionAverage `json:"per_question"`
	Distribution      []RatingCount     `json:"distribution"`
	LatestSuggestions []SuggestionItem  `json:"latest_suggestions"`
}

func isComplete(r *models.Response) bool {
	if _, ok := ratingOf(r); !ok {
		return false
	}
	for qi := 1; qi <= 9; qi++ {
		v, ok := r.QValue(qi)
		if !ok || v < models.QMin || v > models.QMax {
			return false
		}
	}
	return true
}

func verdict(avg float64) string {
	switch {
	case avg >= 4.5:
		return "😍 Sangat puas"
	case avg >= 3.5:
		return "😊 Puas"
	case avg >= 2.5:
		return "🙂 Cukup puas"
	case avg >= 1.5:
		return "😕 Kurang puas"
	default:
		return "😡 Tidak puas"
	}
}

// Summarize menghitung rekap results dari baris yang sudah diurutkan terbaru
// dulu. Seperti Aggregate, fungsi ini murni dan tahan baris bolong.
func Summarize(rows []models.Response) ResultSummary {
	s := ResultSummary{}

	qsum := [10]int{}
	ratingSum := 0
	counts := map[int]int{}

	for i := range rows {
		r := &rows[i]
		if !isComplete(r) {
			continue
		}
		s.Complete++
		v, _ := ratingOf(r)
		ratingSum += v
		counts[v]++
		for qi := 1; qi <= 9; qi++ {
			qv, _ := r.QValue(qi)
			qsum[qi] += qv
		}
	}

	s.Verdict = "-"
	if s.Complete > 0 {
		s.Average = float64(ratingSum) / float64(s.Complete)
		s.Verdict = verdict(s.Average)
	}

	for qi := 1; qi <= 9; qi++ {
		key := fmt.Sprintf("q%d", qi)
		avg := 0.0
		if s.Complete > 0 {
			avg = float64(qsum[qi]) / float64(s.Complete)
		}
		s.PerQuestion = append(s.PerQuestion, QuestionAverage{
			Key:     key,
			Label:   models.QuestionLabels[key],
			Average: avg,
		})
	}

	for v := models.RatingMin; v <= models.RatingMax; v++ {
		s.Distribution = append(s.Distribution, RatingCount{
			Rating: v,
			Count:  counts[v],
			Emoji:  models.RatingEmoji[v],
			Label:  models.RatingLabels[v],
			Color:  models.RatingColors[v],
		})
	}

	for i := range rows {
		if len(s.LatestSuggestions) >= latestSuggestionLimit {
			break
		}
		text := rows[i].SuggestionText()
		if text == "" {
			continue
		}
		s.LatestSuggestions = append(s.LatestSuggestions, SuggestionItem{
			CreatedAt:   rows[i].CreatedAt,
			ServiceType: rows[i].ServiceType,
			Text:        text,
		})
	}

	return s
}
