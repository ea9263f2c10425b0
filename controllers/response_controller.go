package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yudhapratama/survei-server/config"
	"github.com/yudhapratama/survei-server/models"
	"github.com/yudhapratama/survei-server/view"
)

var validGender = map[string]bool{"L": true, "P": true}
var validTimeSlot = map[string]bool{"": true, "08-12": true, "13-17": true}
var validEducation = map[string]bool{"": true, "SD": true, "SMP": true, "SMA": true, "S1": true, "S2": true, "S3": true}
var validJob = map[string]bool{"": true, "PNS": true, "TNI": true, "Polri": true, "Swasta": true, "Wirausaha": true, "Lainnya": true}

type SubmitResponseReq struct {
	VisitDate   string `json:"visit_date"`
	TimeSlot    string `json:"time_slot"`
	ServiceType string `json:"service_type"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	Education   string `json:"education"`
	Job         string `json:"job"`

	Q1 *int `json:"q1"`
	Q2 *int `json:"q2"`
	Q3 *int `json:"q3"`
	Q4 *int `json:"q4"`
	Q5 *int `json:"q5"`
	Q6 *int `json:"q6"`
	Q7 *int `json:"q7"`
	Q8 *int `json:"q8"`
	Q9 *int `json:"q9"`

	Rating     *int   `json:"rating"`
	Suggestion string `json:"suggestion"`

	// Kunci draft identitas yang dipakai selama pengisian; dihapus saat sukses.
	DraftKey string `json:"draft_key"`
}

func (req *SubmitResponseReq) validate() string {
	if strings.TrimSpace(req.ServiceType) == "" {
		return "Jenis layanan wajib diisi"
	}
	if !validGender[req.Gender] {
		return "Jenis kelamin wajib dipilih (L/P)"
	}
	if req.Age <= 0 {
		return "Usia wajib diisi"
	}
	if !validTimeSlot[req.TimeSlot] {
		return "Slot waktu tidak dikenal"
	}
	if !validEducation[req.Education] {
		return "Pendidikan tidak dikenal"
	}
	if !validJob[req.Job] {
		return "Pekerjaan tidak dikenal"
	}
	if req.VisitDate != "" {
		if _, err := time.Parse("2006-01-02", req.VisitDate); err != nil {
			return "Tanggal kunjungan harus YYYY-MM-DD"
		}
	}

	answers := []*int{req.Q1, req.Q2, req.Q3, req.Q4, req.Q5, req.Q6, req.Q7, req.Q8, req.Q9}
	for i, a := range answers {
		if a == nil {
			return fmt.Sprintf("Pertanyaan %d belum dijawab", i+1)
		}
		if *a < models.QMin || *a > models.QMax {
			return fmt.Sprintf("Jawaban pertanyaan %d di luar skala 1-4", i+1)
		}
	}

	if req.Rating == nil {
		return "Rating keseluruhan wajib diisi"
	}
	if *req.Rating < models.RatingMin || *req.Rating > models.RatingMax {
		return "Rating keseluruhan di luar skala 1-5"
	}

	if len([]rune(req.Suggestion)) > models.SuggestionMaxLen {
		return fmt.Sprintf("Saran maksimal %d karakter", models.SuggestionMaxLen)
	}
	return ""
}

// POST /api/responses
// Satu lembar survei masuk: validasi penuh, simpan, siarkan ke stream live.
// Tidak ada jalur update/delete; lembar yang sudah masuk tidak berubah.
func SubmitResponse(c *gin.Context) {
	var req SubmitResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data kiriman tidak valid: " + err.Error()})
		return
	}

	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	r := models.Response{
		VisitDate:   req.VisitDate,
		TimeSlot:    req.TimeSlot,
		ServiceType: strings.TrimSpace(req.ServiceType),
		Gender:      req.Gender,
		Age:         req.Age,
		Education:   req.Education,
		Job:         req.Job,
		Q1:          req.Q1, Q2: req.Q2, Q3: req.Q3,
		Q4: req.Q4, Q5: req.Q5, Q6: req.Q6,
		Q7: req.Q7, Q8: req.Q8, Q9: req.Q9,
		Rating: req.Rating,
	}
	if s := strings.TrimSpace(req.Suggestion); s != "" {
		r.Suggestion = &s
	}

	if err := config.DB.Create(&r).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa menyimpan survei"})
		return
	}

	LiveHub.Publish(r)
	if req.DraftKey != "" {
		drafts.Delete(req.DraftKey)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Terima kasih, survei sudah terkirim",
		"id":         r.ID,
		"created_at": r.CreatedAt,
	})
}

// parseViewState membaca filter dari query params. "rating=all" dan rating
// kosong sama-sama berarti semua rating.
func parseViewState(c *gin.Context) (view.ViewState, error) {
	vs := view.ViewState{
		Preset:  view.Preset(c.Query("preset")),
		From:    c.Query("from"),
		To:      c.Query("to"),
		Keyword: c.Query("q"),
	}

	if vs.Preset == "" {
		if vs.From != "" || vs.To != "" {
			vs.Preset = view.PresetCustom
		} else {
			vs.Preset = view.Preset7Days
		}
	}

	if s := c.Query("rating"); s != "" && s != "all" {
		v, err := strconv.Atoi(s)
		if err != nil || v < models.RatingMin || v > models.RatingMax {
			return vs, fmt.Errorf("filter rating harus 1-%d atau \"all\"", models.RatingMax)
		}
		vs.Rating = v
	}

	if s := c.Query("page"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil || p < 0 {
			return vs, fmt.Errorf("page tidak valid")
		}
		vs.Page = p
	}

	return vs, nil
}

// GET /api/responses?preset=7d&rating=4&q=ramah&page=0
// Tabel rekap: terbaru dulu, per halaman view.PageSize baris.
func ListResponses(c *gin.Context) {
	vs, err := parseViewState(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := vs.Apply(config.DB, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa menghitung data"})
		return
	}

	var rows []models.Response
	if err := vs.Paginate(q).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa mengambil data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filter":    vs,
		"page":      vs.Page,
		"limit":     view.PageSize,
		"total":     total,
		"has_more":  len(rows) == view.PageSize,
		"responses": rows,
	})
}
