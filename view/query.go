package view

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yudhapratama/survei-server/models"
)

// likeEscape meloloskan metakarakter LIKE supaya kata kunci selalu dicocokkan
// harfiah, sama seperti strings.Contains di Predicate.
func likeEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Apply menempelkan kondisi filter ke query gorm: rentang waktu half-open,
// rating persis (kalau dipilih), substring saran case-insensitive, urut
// created_at menurun. Paging ditambahkan terpisah lewat Paginate.
func (s ViewState) Apply(db *gorm.DB, now time.Time) (*gorm.DB, error) {
	from, toEx, err := s.Range(now)
	if err != nil {
		return nil, err
	}

	q := db.Model(&models.Response{}).
		Where("created_at >= ? AND created_at < ?", from, toEx)

	if s.Rating != 0 {
		q = q.Where("rating = ?", s.Rating)
	}
	if kw := strings.TrimSpace(s.Keyword); kw != "" {
		q = q.Where("suggestion ILIKE ?", "%"+likeEscape(kw)+"%")
	}

	return q.Order("created_at DESC"), nil
}

// Paginate menambahkan jendela halaman (offset, limit) untuk "load more".
func (s ViewState) Paginate(db *gorm.DB) *gorm.DB {
	page := s.Page
	if page < 0 {
		page = 0
	}
	return db.Limit(PageSize).Offset(page * PageSize)
}

// Predicate mengembalikan padanan lokal dari query di atas, untuk memutuskan
// apakah baris yang datang lewat push realtime termasuk tampilan sekarang.
// Batas waktu dihitung sekali di sini supaya satu koneksi stream konsisten.
func (s ViewState) Predicate(now time.Time) (func(models.Response) bool, error) {
	from, toEx, err := s.Range(now)
	if err != nil {
		return nil, err
	}
	kw := strings.ToLower(strings.TrimSpace(s.Keyword))

	return func(r models.Response) bool {
		if r.CreatedAt.Before(from) || !r.CreatedAt.Before(toEx) {
			return false
		}
		if s.Rating != 0 && (r.Rating == nil || *r.Rating != s.Rating) {
			return false
		}
		if kw != "" {
			if r.Suggestion == nil {
				return false
			}
			if !strings.Contains(strings.ToLower(*r.Suggestion), kw) {
				return false
			}
		}
		return true
	}, nil
}
