// file: internals/features/templates/service/template_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	templateDto "iflow_backend/internals/features/templates/dto"
	model "iflow_backend/internals/features/templates/model"
)

var ErrTemplateNotFound = errors.New("template not found")

// cache tunggal untuk seluruh proses; semua pembacaan lewat sini.
var cache TemplateCache

func loadAll(ctx context.Context, db *gorm.DB) func() ([]model.ContentTemplateModel, error) {
	return func() ([]model.ContentTemplateModel, error) {
		var rows []model.ContentTemplateModel
		if err := db.WithContext(ctx).
			Order("template_category, template_key").
			Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	}
}

// ListTemplates: map key→content untuk lookup cepat di frontend, plus
// baris lengkapnya. Dibaca dari cache.
func ListTemplates(ctx context.Context, db *gorm.DB) (map[string]string, []model.ContentTemplateModel, error) {
	rows, err := cache.GetOrPopulate(loadAll(ctx, db))
	if err != nil {
		return nil, nil, err
	}
	kv := make(map[string]string, len(rows))
	for _, r := range rows {
		kv[r.TemplateKey] = r.TemplateContent
	}
	return kv, rows, nil
}

// GetTemplate: satu template by key, dari cache.
func GetTemplate(ctx context.Context, db *gorm.DB, key string) (*model.ContentTemplateModel, error) {
	rows, err := cache.GetOrPopulate(loadAll(ctx, db))
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].TemplateKey == key {
			return &rows[i], nil
		}
	}
	return nil, ErrTemplateNotFound
}

// UpdateTemplate mengganti content sebuah key dan meng-invalidasi cache.
func UpdateTemplate(ctx context.Context, db *gorm.DB, key, content string) (*model.ContentTemplateModel, error) {
	res := db.WithContext(ctx).
		Model(&model.ContentTemplateModel{}).
		Where("template_key = ?", key).
		Update("template_content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrTemplateNotFound
	}
	cache.Invalidate()

	var row model.ContentTemplateModel
	if err := db.WithContext(ctx).
		First(&row, "template_key = ?", key).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// BulkUpdateTemplates meng-update banyak key sekaligus; key yang tidak
// dikenal dilewati. Cache di-invalidasi sekali di akhir.
func BulkUpdateTemplates(ctx context.Context, db *gorm.DB, updates []templateDto.BulkUpdateItem) ([]model.ContentTemplateModel, error) {
	var out []model.ContentTemplateModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&model.ContentTemplateModel{}).
				Where("template_key = ?", u.Key).
				Update("template_content", u.Content)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue
			}
			var row model.ContentTemplateModel
			if err := tx.First(&row, "template_key = ?", u.Key).Error; err != nil {
				return err
			}
			out = append(out, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	cache.Invalidate()
	if out == nil {
		out = []model.ContentTemplateModel{}
	}
	return out, nil
}
