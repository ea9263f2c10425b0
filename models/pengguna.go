package models

import "time"

// Pengguna adalah akun petugas/admin yang boleh melihat rekap dan ekspor.
// Responden tidak punya akun.
type Pengguna struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nama      string    `gorm:"size:100;not null" json:"nama"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Sandi     string    `gorm:"size:255;not null" json:"-"` // hash bcrypt, jangan keluar di JSON
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Pengguna) TableName() string {
	return "pengguna"
}
