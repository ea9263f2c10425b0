package view

import (
	"sync"
	"time"

	"github.com/yudhapratama/survei-server/models"
)

// Session adalah cangkang stateful di batas I/O: memegang ViewState aktif,
// menampung hasil query, dan menyisipkan baris realtime. Semua keputusan
// (cocok/tidak, duplikat/tidak, basi/tidak) diambil di sini supaya handler
// tinggal memanggil.
type Session struct {
	mu    sync.Mutex
	state ViewState
	seq   uint64

	rows   []models.Response
	seen   map[string]struct{}
	noMore bool
}

func NewSession(state ViewState) *Session {
	return &Session{
		state: state,
		seq:   1,
		seen:  map[string]struct{}{},
	}
}

// SetState mengganti filter aktif: hasil lama dibuang, halaman kembali ke 0,
// dan seq naik sehingga balasan query yang masih terbang jadi basi.
func (s *Session) SetState(state ViewState) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SameFilter(state) {
		s.state.Page = state.Page
		return s.seq
	}
	s.state = state.WithPage(0)
	s.seq++
	s.rows = nil
	s.seen = map[string]struct{}{}
	s.noMore = false
	return s.seq
}

// State mengembalikan salinan state aktif plus seq untuk menandai request.
func (s *Session) State() (ViewState, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.seq
}

// ApplySnapshot memasukkan hasil satu halaman query. Balasan yang datang
// membawa seq lama (filter sudah ganti) dibuang; state yang tampil tidak
// boleh ditimpa balasan basi. Baris yang id-nya sudah ada dilewati.
func (s *Session) ApplySnapshot(seq uint64, rows []models.Response) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}
	for _, r := range rows {
		if _, dup := s.seen[r.ID]; dup {
			continue
		}
		s.seen[r.ID] = struct{}{}
		s.rows = append(s.rows, r)
	}
	if len(rows) < PageSize {
		s.noMore = true
	}
	return true
}

// MergeInserted menyisipkan baris dari push realtime. Notifikasi bisa datang
// dua kali untuk insert yang sama (at-least-once), jadi merge harus idempoten:
// id yang sudah ada tidak mengubah apa-apa. Baris yang tidak lolos predicate
// filter aktif diabaikan.
func (s *Session) MergeInserted(r models.Response, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.state.Predicate(now)
	if err != nil {
		return false
	}
	if !match(r) {
		return false
	}
	if _, dup := s.seen[r.ID]; dup {
		return false
	}

	s.seen[r.ID] = struct{}{}
	s.rows = append([]models.Response{r}, s.rows...)

	// Batasi pertumbuhan memori dari prepend realtime; yang terlempar hanya
	// hilang dari tampilan live, bukan dari database.
	if len(s.rows) > LiveCap {
		for _, drop := range s.rows[LiveCap:] {
			delete(s.seen, drop.ID)
		}
		s.rows = s.rows[:LiveCap]
	}
	return true
}

// Rows mengembalikan salinan baris yang sedang tampil, terbaru dulu.
func (s *Session) Rows() []models.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Response, len(s.rows))
	copy(out, s.rows)
	return out
}

// HasMore false setelah satu fetch mengembalikan kurang dari PageSize baris.
func (s *Session) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.noMore
}
