// file: internals/features/templates/service/template_cache.go
package service

import (
	"sync"

	model "iflow_backend/internals/features/templates/model"
)

// TemplateCache menahan seluruh isi content_templates di memori.
// Template dibaca di hampir tiap page load tapi jarang berubah, jadi
// satu snapshot + invalidasi saat tulis sudah cukup. Aman dipakai
// konkuren.
//
// Dibangun dengan RWMutex stdlib, bukan lib cache eksternal: datanya
// satu snapshot kecil yang diganti utuh saat invalidasi, tanpa TTL dan
// tanpa eviction per entry.
type TemplateCache struct {
	mu     sync.RWMutex
	loaded bool
	rows   []model.ContentTemplateModel
}

// GetOrPopulate mengembalikan snapshot dari cache, atau memanggil loader
// sekali untuk mengisinya kalau kosong.
func (c *TemplateCache) GetOrPopulate(loader func() ([]model.ContentTemplateModel, error)) ([]model.ContentTemplateModel, error) {
	c.mu.RLock()
	if c.loaded {
		rows := c.rows
		c.mu.RUnlock()
		return rows, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// cek ulang: goroutine lain bisa sudah mengisi saat kita menunggu lock
	if c.loaded {
		return c.rows, nil
	}
	rows, err := loader()
	if err != nil {
		return nil, err
	}
	c.rows = rows
	c.loaded = true
	return rows, nil
}

// Invalidate membuang snapshot; pembaca berikutnya memuat ulang dari DB.
// Dipanggil setiap ada tulisan ke content_templates.
func (c *TemplateCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.rows = nil
	c.mu.Unlock()
}
