package stats

import (
	"sort"
	"strings"

	"github.com/yudhapratama/survei-server/models"
)

// Jumlah kategori maksimal yang ditampilkan di chart "Top Issues".
const TopIssuesLimit = 8

// IssueOther menampung saran yang tidak kena kata kunci mana pun.
const IssueOther = "Lainnya"

type issueCategory struct {
	name     string
	keywords []string
}

// Deteksi ringan tanpa AI: cukup pencocokan substring kata-kata yang sering
// muncul di saran puskesmas. Urutan kategori di sini menentukan urutan cek.
var issueCategories = []issueCategory{
	{"Antrian", []string{"antri", "antrian", "lama", "nunggu", "menunggu", "queue", "mengantri"}},
	{"Keramahan", []string{"ramah", "senyum", "sopan", "jutek", "galak"}},
	{"Kebersihan", []string{"bersih", "kotor", "bau", "toilet", "wc", "sampah"}},
	{"Fasilitas", []string{"kursi", "ac", "ruang", "parkir", "fasilitas", "kipas", "tv"}},
	{"Kecepatan", []string{"cepat", "lama", "lambat", "respons", "respon"}},
	{"Administrasi", []string{"bpjs", "berkas", "admin", "pendaftaran", "nomor", "loket"}},
}

type IssueCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DetectIssues mengembalikan kategori yang kata kuncinya muncul di teks
// (huruf besar-kecil diabaikan). Satu saran boleh kena beberapa kategori;
// kalau tidak kena satu pun, masuk "Lainnya".
func DetectIssues(text string) []string {
	t := strings.ToLower(text)
	var hits []string
	for _, cat := range issueCategories {
		for _, w := range cat.keywords {
			if strings.Contains(t, w) {
				hits = append(hits, cat.name)
				break
			}
		}
	}
	if len(hits) == 0 {
		return []string{IssueOther}
	}
	return hits
}

// TopIssues menghitung kategori per saran non-kosong, urut count menurun.
// Seri dipecah dengan urutan kemunculan pertama kategori (stabil), lalu
// dipotong ke n teratas.
func TopIssues(rows []models.Response, n int) []IssueCount {
	counts := map[string]int{}
	firstSeen := map[string]int{}

	for i := range rows {
		text := rows[i].SuggestionText()
		if text == "" {
			continue
		}
		for _, issue := range DetectIssues(text) {
			if _, ok := firstSeen[issue]; !ok {
				firstSeen[issue] = len(firstSeen)
			}
			counts[issue]++
		}
	}

	out := make([]IssueCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, IssueCount{Name: name, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Name] < firstSeen[out[j].Name]
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
