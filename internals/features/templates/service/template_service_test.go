package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	templateDto "iflow_backend/internals/features/templates/dto"
	model "iflow_backend/internals/features/templates/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.ContentTemplateModel{}))

	// cache global, buang snapshot sisa test sebelumnya
	cache.Invalidate()
	return db
}

func seedTemplate(t *testing.T, db *gorm.DB, key, category, content string) {
	t.Helper()
	require.NoError(t, db.Create(&model.ContentTemplateModel{
		TemplateKey:      key,
		TemplateCategory: category,
		TemplateContent:  content,
	}).Error)
}

func TestListTemplatesReadsThroughCache(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	seedTemplate(t, db, "welcome_message", "onboarding", "Welcome to iFlow!")
	seedTemplate(t, db, "footer_text", "general", "See you on the water")

	kv, rows, err := ListTemplates(ctx, db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Welcome to iFlow!", kv["welcome_message"])

	// Tulis langsung ke DB tanpa lewat service: cache masih menahan
	// snapshot lama sampai ada invalidasi.
	require.NoError(t, db.Model(&model.ContentTemplateModel{}).
		Where("template_key = ?", "footer_text").
		Update("template_content", "changed behind the cache").Error)

	kv, _, err = ListTemplates(ctx, db)
	require.NoError(t, err)
	require.Equal(t, "See you on the water", kv["footer_text"])
}

func TestUpdateTemplateInvalidatesCache(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	seedTemplate(t, db, "welcome_message", "onboarding", "Welcome!")

	_, _, err := ListTemplates(ctx, db) // isi cache
	require.NoError(t, err)

	row, err := UpdateTemplate(ctx, db, "welcome_message", "Hi there!")
	require.NoError(t, err)
	require.Equal(t, "Hi there!", row.TemplateContent)

	kv, _, err := ListTemplates(ctx, db)
	require.NoError(t, err)
	require.Equal(t, "Hi there!", kv["welcome_message"])
}

func TestUpdateUnknownTemplate(t *testing.T) {
	db := setupDB(t)

	_, err := UpdateTemplate(context.Background(), db, "no_such_key", "x")
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestGetTemplate(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	seedTemplate(t, db, "faq_intro", "help", "Frequently asked questions")

	row, err := GetTemplate(ctx, db, "faq_intro")
	require.NoError(t, err)
	require.Equal(t, "Frequently asked questions", row.TemplateContent)

	_, err = GetTemplate(ctx, db, "missing")
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestBulkUpdateSkipsUnknownKeys(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	seedTemplate(t, db, "a", "general", "old a")
	seedTemplate(t, db, "b", "general", "old b")

	rows, err := BulkUpdateTemplates(ctx, db, []templateDto.BulkUpdateItem{
		{Key: "a", Content: "new a"},
		{Key: "missing", Content: "ignored"},
		{Key: "b", Content: "new b"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	kv, _, err := ListTemplates(ctx, db)
	require.NoError(t, err)
	require.Equal(t, "new a", kv["a"])
	require.Equal(t, "new b", kv["b"])
}

func TestTemplateCachePopulatesOnce(t *testing.T) {
	var (
		c     TemplateCache
		calls int
	)
	loader := func() ([]model.ContentTemplateModel, error) {
		calls++
		return []model.ContentTemplateModel{{TemplateKey: "k", TemplateContent: "v"}}, nil
	}

	for i := 0; i < 5; i++ {
		rows, err := c.GetOrPopulate(loader)
		require.NoError(t, err)
		require.Len(t, rows, 1)
	}
	require.Equal(t, 1, calls)

	c.Invalidate()
	_, err := c.GetOrPopulate(loader)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestTemplateCacheLoaderErrorNotCached(t *testing.T) {
	var c TemplateCache
	boom := errors.New("db down")

	_, err := c.GetOrPopulate(func() ([]model.ContentTemplateModel, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	rows, err := c.GetOrPopulate(func() ([]model.ContentTemplateModel, error) {
		return []model.ContentTemplateModel{{TemplateKey: "k"}}, nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestTemplateCacheConcurrentReads(t *testing.T) {
	var (
		c  TemplateCache
		mu sync.Mutex

		calls int
	)
	loader := func() ([]model.ContentTemplateModel, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return []model.ContentTemplateModel{{TemplateKey: "k"}}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows, err := c.GetOrPopulate(loader)
			require.NoError(t, err)
			require.Len(t, rows, 1)
		}()
	}
	wg.Wait()
	require.Equal(t, 1, calls)
}
