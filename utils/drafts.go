package utils

import (
	"encoding/json"
	"sync"
	"time"
)

// DraftStore menyimpan identitas responden yang sedang mengisi survei dua
// langkah: disimpan setelah langkah identitas, dibaca di langkah jawaban,
// dihapus saat submit berhasil. Umurnya pendek, jadi cukup map di memori;
// entri basi dibersihkan berkala.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]draftEntry
	ttl    time.Duration
}

type draftEntry struct {
	data    json.RawMessage
	savedAt time.Time
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	ds := &DraftStore{
		drafts: make(map[string]draftEntry),
		ttl:    ttl,
	}
	go ds.cleanup()
	return ds
}

func (ds *DraftStore) Put(key string, data json.RawMessage) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.drafts[key] = draftEntry{data: data, savedAt: time.Now()}
}

func (ds *DraftStore) Get(key string) (json.RawMessage, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	e, ok := ds.drafts[key]
	if !ok || time.Since(e.savedAt) > ds.ttl {
		return nil, false
	}
	return e.data, true
}

func (ds *DraftStore) Delete(key string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.drafts, key)
}

func (ds *DraftStore) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ds.mu.Lock()
		for key, e := range ds.drafts {
			if time.Since(e.savedAt) > ds.ttl {
				delete(ds.drafts, key)
			}
		}
		ds.mu.Unlock()
	}
}
