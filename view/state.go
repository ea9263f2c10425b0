package view

import (
	"errors"
	"time"
)

// Ukuran satu halaman "load more" di tabel rekap.
const PageSize = 20

// Batas baris yang ditahan di memori untuk tampilan live (prepend realtime).
// Baris di luar batas hilang dari tampilan saja, bukan dari database.
const LiveCap = 500

// Batas baris yang diambil sekali jalan untuk statistik/ekspor.
const StatsLimit = 2000

type Preset string

const (
	PresetToday  Preset = "today"
	Preset7Days  Preset = "7d"
	Preset30Days Preset = "30d"
	PresetCustom Preset = "custom"
)

// ViewState adalah seluruh keadaan filter dalam satu struct yang bisa
// diserialisasi. Query ke database dan predicate lokal untuk push realtime
// diturunkan dari struct yang sama supaya tidak pernah beda arti.
type ViewState struct {
	Preset  Preset `json:"preset" form:"preset"`
	From    string `json:"from" form:"from"` // YYYY-MM-DD, dipakai saat preset=custom
	To      string `json:"to" form:"to"`     // YYYY-MM-DD, inklusif sepanjang harinya
	Rating  int    `json:"rating" form:"rating"` // 0 = semua
	Keyword string `json:"q" form:"q"`
	Page    int    `json:"page" form:"page"`
}

var ErrBadDate = errors.New("format tanggal harus YYYY-MM-DD")

func parseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Range menghitung batas waktu half-open [from, toExclusive) dalam hari
// kalender lokal pada saat dievaluasi. Preset bernama menang atas From/To;
// "to" selalu inklusif sepanjang hari itu, diwujudkan sebagai batas atas
// eksklusif to+1 hari.
func (s ViewState) Range(now time.Time) (time.Time, time.Time, error) {
	today := startOfDay(now)

	switch s.Preset {
	case PresetToday, "":
		return today, today.AddDate(0, 0, 1), nil
	case Preset7Days:
		return today.AddDate(0, 0, -6), today.AddDate(0, 0, 1), nil
	case Preset30Days:
		return today.AddDate(0, 0, -29), today.AddDate(0, 0, 1), nil
	case PresetCustom:
		from, err := parseDay(s.From, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to, err := parseDay(s.To, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return from, to.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, time.Time{}, errors.New("preset tidak dikenal")
	}
}

// WithPage mengembalikan salinan state di halaman lain. Ganti filter apa pun
// harus lewat state baru (Page kembali 0), bukan mutasi.
func (s ViewState) WithPage(page int) ViewState {
	s.Page = page
	return s
}

// SameFilter membandingkan bagian filter saja; Page boleh beda (load more tidak
// membatalkan hasil halaman sebelumnya).
func (s ViewState) SameFilter(o ViewState) bool {
	return s.Preset == o.Preset && s.From == o.From && s.To == o.To &&
		s.Rating == o.Rating && s.Keyword == o.Keyword
}
