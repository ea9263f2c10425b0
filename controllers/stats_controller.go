package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yudhapratama/survei-server/config"
	"github.com/yudhapratama/survei-server/models"
	"github.com/yudhapratama/survei-server/stats"
	"github.com/yudhapratama/survei-server/view"
)

// GET /api/responses/stats?preset=7d&rating=all&q=antri
// Halaman charts: KPI, distribusi, top issues, insight. Agregasi dihitung
// dari satu jendela filter yang diambil sekali jalan.
func GetStats(c *gin.Context) {
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

	var rows []models.Response
	if err := q.Limit(view.StatsLimit).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa mengambil data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filter": vs,
		"stats":  stats.Aggregate(rows),
	})
}

// Batas baris halaman results, mengikuti klien lama.
const summaryLimit = 5000

// GET /api/responses/summary
// Halaman results: rekap seluruh data tanpa filter.
func GetSummary(c *gin.Context) {
	var rows []models.Response
	if err := config.DB.Model(&models.Response{}).
		Order("created_at DESC").
		Limit(summaryLimit).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa mengambil data"})
		return
	}

	c.JSON(http.StatusOK, stats.Summarize(rows))
}

// GET /api/questions
// Kuesioner tetap: 9 unsur + skala emoji + skala rating keseluruhan.
func GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions":          models.Questions,
		"overall_scale":      models.OverallScale,
		"rating_emoji":       models.RatingEmoji,
		"rating_labels":      models.RatingLabels,
		"rating_colors":      models.RatingColors,
		"suggestion_max_len": models.SuggestionMaxLen,
	})
}
