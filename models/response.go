package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Response adalah satu lembar survei yang sudah dikirim. Satu baris = satu responden.
// Nama kolom mengikuti skema survey_responses yang sudah dipakai klien lama,
// jadi jangan diubah.
type Response struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	// Identitas responden (tanpa nama)
	VisitDate   string `gorm:"column:visit_date;size:10" json:"visit_date"`
	TimeSlot    string `gorm:"column:time_slot;size:5" json:"time_slot"`
	ServiceType string `gorm:"column:service_type;size:100;not null" json:"service_type"`
	Gender      string `gorm:"column:gender;size:1;not null" json:"gender"`
	Age         int    `gorm:"column:age;not null" json:"age"`
	Education   string `gorm:"column:education;size:10" json:"education"`
	Job         string `gorm:"column:job;size:20" json:"job"`

	// Jawaban per unsur (1-4). Pointer supaya baris lama yang bolong tetap bisa
	// di-scan; statistik per kolom yang butuh nilai akan melewatinya.
	Q1 *int `gorm:"column:q1" json:"q1"`
	Q2 *int `gorm:"column:q2" json:"q2"`
	Q3 *int `gorm:"column:q3" json:"q3"`
	Q4 *int `gorm:"column:q4" json:"q4"`
	Q5 *int `gorm:"column:q5" json:"q5"`
	Q6 *int `gorm:"column:q6" json:"q6"`
	Q7 *int `gorm:"column:q7" json:"q7"`
	Q8 *int `gorm:"column:q8" json:"q8"`
	Q9 *int `gorm:"column:q9" json:"q9"`

	// Rating keseluruhan (1-5, skala emoji)
	Rating *int `gorm:"column:rating;index" json:"rating"`

	// Saran bebas, opsional, maks 300 karakter
	Suggestion *string `gorm:"column:suggestion;type:text" json:"suggestion"`
}

func (Response) TableName() string {
	return "survey_responses"
}

func (r *Response) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// QValue mengembalikan jawaban unsur ke-i (1..9); ok=false kalau kosong.
func (r *Response) QValue(i int) (int, bool) {
	var p *int
	switch i {
	case 1:
		p = r.Q1
	case 2:
		p = r.Q2
	case 3:
		p = r.Q3
	case 4:
		p = r.Q4
	case 5:
		p = r.Q5
	case 6:
		p = r.Q6
	case 7:
		p = r.Q7
	case 8:
		p = r.Q8
	case 9:
		p = r.Q9
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// SuggestionText mengembalikan saran yang sudah di-trim, "" kalau kosong.
func (r *Response) SuggestionText() string {
	if r.Suggestion == nil {
		return ""
	}
	return strings.TrimSpace(*r.Suggestion)
}
