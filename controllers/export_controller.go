package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yudhapratama/survei-server/config"
	"github.com/yudhapratama/survei-server/export"
	"github.com/yudhapratama/survei-server/models"
	"github.com/yudhapratama/survei-server/utils"
	"github.com/yudhapratama/survei-server/view"
)

type ExportRequest struct {
	Format string         `json:"format"` // pdf, xlsx, csv
	Filter view.ViewState `json:"filter"`
}

var exportContentTypes = map[string]string{
	"pdf":  "application/pdf",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"csv":  "text/csv",
}

// POST /api/responses/export
// Ekspor berjalan async: job dicatat, file dibuat di background, status
// dipantau lewat GET /api/exports/:job_id.
func CreateExport(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid"})
		return
	}
	if req.Format == "" {
		req.Format = "pdf"
	}
	if _, ok := exportContentTypes[req.Format]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Format harus pdf, xlsx, atau csv"})
		return
	}

	vs := req.Filter
	if vs.Preset == "" {
		vs.Preset = view.Preset7Days
	}
	if vs.Rating < 0 || vs.Rating > models.RatingMax {
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Filter rating harus 1-%d, atau 0 untuk semua", models.RatingMax)})
		return
	}
	from, toEx, err := vs.Range(time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	// RangeTo disimpan sebagai awal hari terakhir yang masih termasuk
	to := toEx.AddDate(0, 0, -1)

	jobID := uuid.New().String()
	job := models.ExportJob{
		JobID:     jobID,
		Format:    req.Format,
		RangeFrom: &from,
		RangeTo:   &to,
		Rating:    vs.Rating,
		Keyword:   vs.Keyword,
		Status:    "queued",
	}
	if err := config.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Tidak bisa membuat job ekspor"})
		return
	}

	go processExportJob(jobID)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": jobID,
		"status": "queued",
	})
}

// GET /api/exports/:job_id
func GetExport(c *gin.Context) {
	jobID := c.Param("job_id")
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gangguan database"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id":     job.JobID,
		"status":     job.Status,
		"public_url": job.PublicURL,
		"error":      job.ErrorMsg,
	})
}

func failExportJob(job *models.ExportJob, err error) {
	em := err.Error()
	config.DB.Model(job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
}

func processExportJob(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	// Filter direkonstruksi sebagai ViewState supaya query ekspor tidak punya
	// terjemahan filter sendiri yang bisa menyimpang.
	vs := view.ViewState{
		Preset:  view.PresetCustom,
		Rating:  job.Rating,
		Keyword: job.Keyword,
	}
	if job.RangeFrom != nil {
		vs.From = job.RangeFrom.Format("2006-01-02")
	}
	if job.RangeTo != nil {
		vs.To = job.RangeTo.Format("2006-01-02")
	}

	q, err := vs.Apply(config.DB, time.Now())
	if err != nil {
		failExportJob(&job, err)
		return
	}

	var responses []models.Response
	if err := q.Limit(view.StatsLimit).Find(&responses).Error; err != nil {
		failExportJob(&job, err)
		return
	}

	rows := export.BuildRows(responses)
	filter := export.Filter{
		From:    job.RangeFrom,
		To:      job.RangeTo,
		Rating:  job.Rating,
		Keyword: job.Keyword,
	}

	var buf bytes.Buffer
	switch job.Format {
	case "pdf":
		err = export.WritePDF(&buf, filter, rows)
	case "xlsx":
		err = export.WriteXLSX(&buf, filter, rows)
	default:
		err = export.WriteCSV(&buf, rows)
	}
	if err != nil {
		failExportJob(&job, err)
		return
	}

	outDir := "./exports"
	os.MkdirAll(outDir, 0755)
	outPath := path.Join(outDir, fmt.Sprintf("rekap_%s.%s", job.JobID, job.Format))
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		failExportJob(&job, err)
		return
	}

	updates := map[string]interface{}{"status": "done", "file_path": outPath}

	// Kalau Supabase Storage dikonfigurasi, unggah juga supaya petugas bisa
	// bagikan link tanpa akses server.
	if utils.SupabaseConfigured() {
		if url, upErr := utils.UploadExportArtifact(buf.Bytes(), path.Base(outPath), exportContentTypes[job.Format]); upErr == nil {
			updates["public_url"] = url
		}
	}

	config.DB.Model(&job).Updates(updates)
}
