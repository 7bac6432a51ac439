package repo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-gin-gorm-inventory/internal/domain"
)

type ItemRepo struct{ db *gorm.DB }

func NewItemRepo(db *gorm.DB) *ItemRepo { return &ItemRepo{db: db} }

var _ domain.ItemRepository = (*ItemRepo)(nil)

func (r *ItemRepo) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Category").Preload("Price")
}

func (r *ItemRepo) List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error) {
	var out []domain.Item
	err := r.withRefs(ctx).Model(&domain.Item{}).
		Scopes(
			active,
			eq("is_draft", f.IsDraft),
			contains(f.SearchString, "name", "description"),
			paginate(f.PageList),
		).
		Find(&out).Error
	if err != nil {
		return nil, wrap("list items", err)
	}
	return out, nil
}

func (r *ItemRepo) FindByUUID(ctx context.Context, uuid string) (*domain.Item, error) {
	var it domain.Item
	err := r.withRefs(ctx).Scopes(active).First(&it, "uuid = ?", uuid).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find item", err)
	}
	return &it, nil
}

// Create 价格由其他系统维护，这里只写 items 表
func (r *ItemRepo) Create(ctx context.Context, it *domain.Item) error {
	return wrap("create item", r.db.WithContext(ctx).Omit(clause.Associations).Create(it).Error)
}

func (r *ItemRepo) Update(ctx context.Context, it *domain.Item, columns ...string) error {
	q := r.db.WithContext(ctx).Model(it).Omit(clause.Associations)
	if len(columns) > 0 {
		q = q.Select(columns)
	}
	return wrap("update item", q.Updates(it).Error)
}

func (r *ItemRepo) SoftDelete(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"is_deleted": true, "deleted_at": at, "updated_at": at})
	if res.Error != nil {
		return wrap("delete item", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
