// file: internals/features/templates/model/template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentTemplateModel: copy/teks UI yang bisa diedit tanpa deploy,
// diidentifikasi lewat key unik.
type ContentTemplateModel struct {
	TemplateID        uuid.UUID `gorm:"type:uuid;primaryKey;column:template_id" json:"template_id"`
	TemplateKey       string    `gorm:"size:100;not null;uniqueIndex;column:template_key" json:"template_key"`
	TemplateCategory  string    `gorm:"size:50;not null;default:'general';column:template_category" json:"template_category"`
	TemplateContent   string    `gorm:"type:text;not null;column:template_content" json:"template_content"`
	TemplateCreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:template_created_at" json:"template_created_at"`
	TemplateUpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime;column:template_updated_at" json:"template_updated_at"`
}

func (ContentTemplateModel) TableName() string { return "content_templates" }

func (m *ContentTemplateModel) BeforeCreate(tx *gorm.DB) error {
	if m.TemplateID == uuid.Nil {
		m.TemplateID = uuid.New()
	}
	return nil
}
