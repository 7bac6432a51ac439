package repo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"go-gin-gorm-inventory/internal/domain"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

var _ domain.CategoryRepository = (*CategoryRepo)(nil)

func (r *CategoryRepo) List(ctx context.Context, f domain.PageList) ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.WithContext(ctx).Model(&domain.Category{}).
		Scopes(active, contains(f.SearchString, "name", "description"), paginate(f)).
		Find(&out).Error
	if err != nil {
		return nil, wrap("list categories", err)
	}
	return out, nil
}

func (r *CategoryRepo) FindByUUID(ctx context.Context, uuid string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.WithContext(ctx).Scopes(active).First(&c, "uuid = ?", uuid).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find category", err)
	}
	return &c, nil
}

func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.WithContext(ctx).First(&c, "name = ?", name).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find category by name", err)
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	return wrap("create category", r.db.WithContext(ctx).Create(c).Error)
}

func (r *CategoryRepo) Update(ctx context.Context, c *domain.Category, columns ...string) error {
	q := r.db.WithContext(ctx).Model(c)
	if len(columns) > 0 {
		q = q.Select(columns)
	}
	return wrap("update category", q.Updates(c).Error)
}

func (r *CategoryRepo) SoftDelete(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"is_deleted": true, "deleted_at": at, "updated_at": at})
	if res.Error != nil {
		return wrap("delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete category %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
