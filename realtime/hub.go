package realtime

import (
	"sync"

	"github.com/yudhapratama/survei-server/models"
)

// Ruang buffer per pelanggan sebelum notifikasi mulai dibuang.
const subscriberBuffer = 32

// Hub menyiarkan Response yang baru masuk ke semua pelanggan (koneksi SSE).
// Satu kanal masuk, banyak kanal keluar; pelanggan yang lambat kehilangan
// notifikasi, bukan memblokir jalur insert.
type Hub struct {
	mu   sync.Mutex
	subs map[uint64]chan models.Response
	next uint64
}

func NewHub() *Hub {
	return &Hub{subs: map[uint64]chan models.Response{}}
}

// Subscribe mendaftarkan satu pelanggan; kembalikan kanalnya lewat
// Unsubscribe dengan id yang sama saat koneksi putus.
func (h *Hub) Subscribe() (uint64, <-chan models.Response) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan models.Response, subscriberBuffer)
	h.subs[id] = ch
	return id, ch
}

func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Publish mengirim baris baru ke semua pelanggan tanpa menunggu siapa pun.
func (h *Hub) Publish(r models.Response) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- r:
		default:
			// buffer penuh: pelanggan ini ketinggalan satu notifikasi
		}
	}
}

// Subscribers untuk health/debug.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
