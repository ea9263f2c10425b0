package models

import "time"

// ExportJob melacak satu permintaan ekspor rekap (pdf/xlsx/csv) yang diproses
// di background. Filter yang dipakai saat itu disimpan supaya hasil bisa
// direproduksi dan dicantumkan di header dokumen.
type ExportJob struct {
	JobID     string     `gorm:"column:job_id;primaryKey;size:36" json:"job_id"`
	Format    string     `gorm:"column:format;size:10" json:"format"` // pdf, xlsx, csv
	RangeFrom *time.Time `gorm:"column:range_from" json:"range_from,omitempty"`
	RangeTo   *time.Time `gorm:"column:range_to" json:"range_to,omitempty"`
	Rating    int        `gorm:"column:rating" json:"rating"` // 0 = semua
	Keyword   string     `gorm:"column:keyword;size:100" json:"keyword"`
	Status    string     `gorm:"column:status;size:20;default:'queued'" json:"status"`
	FilePath  *string    `gorm:"column:file_path;type:text" json:"file_path,omitempty"`
	PublicURL *string    `gorm:"column:public_url;type:text" json:"public_url,omitempty"`
	ErrorMsg  *string    `gorm:"column:error_msg;type:text" json:"error_msg,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ExportJob) TableName() string {
	return "export_jobs"
}
