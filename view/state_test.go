package view

import (
	"testing"
	"time"
)

func TestRangePresets(t *testing.T) {
	now := time.Date(2025, 10, 20, 14, 30, 0, 0, time.UTC)
	today := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	from, toEx, err := ViewState{Preset: PresetToday}.Range(now)
	if err != nil {
		t.Fatalf("Range error: %v", err)
	}
	if !from.Equal(today) || !toEx.Equal(today.AddDate(0, 0, 1)) {
		t.Fatalf("today: got [%v, %v)", from, toEx)
	}

	from, toEx, err = ViewState{Preset: Preset7Days}.Range(now)
	if err != nil {
		t.Fatalf("Range error: %v", err)
	}
	if !from.Equal(today.AddDate(0, 0, -6)) {
		t.Fatalf("7d from: got %v", from)
	}
	if !toEx.Equal(today.AddDate(0, 0, 1)) {
		t.Fatalf("7d toEx: got %v", toEx)
	}

	from, _, err = ViewState{Preset: Preset30Days}.Range(now)
	if err != nil {
		t.Fatalf("Range error: %v", err)
	}
	if !from.Equal(today.AddDate(0, 0, -29)) {
		t.Fatalf("30d from: got %v", from)
	}
}

func TestRangeCustomInclusiveEndDay(t *testing.T) {
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	s := ViewState{Preset: PresetCustom, From: "2025-10-01", To: "2025-10-10"}

	from, toEx, err := s.Range(now)
	if err != nil {
		t.Fatalf("Range error: %v", err)
	}
	if !from.Equal(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from: got %v", from)
	}
	// 23:59:59 tanggal "to" masih masuk, 00:00:00 hari berikutnya tidak
	lastSecond := time.Date(2025, 10, 10, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2025, 10, 11, 0, 0, 0, 0, time.UTC)
	if !lastSecond.Before(toEx) {
		t.Fatalf("akhir hari to harus inklusif")
	}
	if nextDay.Before(toEx) {
		t.Fatalf("hari setelah to harus eksklusif")
	}
}

func TestRangeCustomBadDate(t *testing.T) {
	now := time.Now()
	if _, _, err := (ViewState{Preset: PresetCustom, From: "20-10-2025", To: "2025-10-10"}).Range(now); err == nil {
		t.Fatalf("expected error for bad from date")
	}
	if _, _, err := (ViewState{Preset: PresetCustom, From: "2025-10-01", To: ""}).Range(now); err == nil {
		t.Fatalf("expected error for empty to date")
	}
}

func TestSameFilterIgnoresPage(t *testing.T) {
	a := ViewState{Preset: Preset7Days, Rating: 4, Keyword: "antri", Page: 0}
	b := a.WithPage(3)
	if !a.SameFilter(b) {
		t.Fatalf("page berbeda bukan perubahan filter")
	}
	c := a
	c.Rating = 1
	if a.SameFilter(c) {
		t.Fatalf("rating berbeda harus terdeteksi")
	}
}
