package database

import (
	"fmt"

	"gorm.io/gorm"

	"go-gin-gorm-inventory/internal/domain"
)

type flagColumn struct {
	model  any
	column string
}

// 历史库里这些布尔列允许 NULL，收紧为 NOT NULL 前先补 false
var legacyFlags = []flagColumn{
	{&domain.Category{}, "is_deleted"},
	{&domain.Item{}, "is_deleted"},
	{&domain.Item{}, "is_draft"},
	{&domain.Supplier{}, "is_deleted"},
	{&domain.User{}, "is_deleted"},
	{&domain.User{}, "is_active"},
	{&domain.User{}, "is_deactivated"},
}

// BackfillFlags 表或列不存在时跳过，返回补写的行数
func BackfillFlags(db *gorm.DB) (int64, error) {
	m := db.Migrator()
	var total int64
	for _, f := range legacyFlags {
		if !m.HasTable(f.model) || !m.HasColumn(f.model, f.column) {
			continue
		}
		res := db.Model(f.model).
			Where(f.column + " IS NULL").
			UpdateColumn(f.column, false)
		if res.Error != nil {
			return total, fmt.Errorf("backfill %s: %w", f.column, res.Error)
		}
		total += res.RowsAffected
	}
	return total, nil
}

// Migrate 先回填再建表/改列
func Migrate(db *gorm.DB) error {
	if _, err := BackfillFlags(db); err != nil {
		return err
	}
	return db.AutoMigrate(domain.Models()...)
}
