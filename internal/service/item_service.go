package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"go-gin-gorm-inventory/internal/domain"
)

type ItemInput struct {
	Name        string `json:"name"        binding:"required,max=500"`
	Description string `json:"description" binding:"required,max=2500"`
	CategoryID  string `json:"categoryId"  binding:"required"`
	IsDraft     bool   `json:"isDraft"`
}

type ItemService struct {
	items      domain.ItemRepository
	categories domain.CategoryRepository
	log        *zap.Logger
}

func NewItemService(items domain.ItemRepository, categories domain.CategoryRepository, l *zap.Logger) *ItemService {
	return &ItemService{items: items, categories: categories, log: l.Named("item")}
}

func (s *ItemService) List(ctx context.Context, f domain.ItemFilter) ([]ItemView, error) {
	rows, err := s.items.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapViews(rows, itemView), nil
}

func (s *ItemService) GetOne(ctx context.Context, id string) (*ItemView, error) {
	it, err := s.items.FindByUUID(ctx, id)
	if err != nil || it == nil {
		return nil, err
	}
	v := itemView(it)
	return &v, nil
}

func (s *ItemService) Create(ctx context.Context, in ItemInput) error {
	cat, err := s.category(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	it := &domain.Item{
		Name:        in.Name,
		Description: in.Description,
		IsDraft:     in.IsDraft,
		CategoryID:  cat.ID,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return err
	}
	s.log.Info("item created", zap.String("uuid", it.UUID), zap.String("category", cat.UUID))
	return nil
}

func (s *ItemService) Update(ctx context.Context, id string, in ItemInput) error {
	it, err := s.mustFind(ctx, id)
	if err != nil {
		return err
	}
	cat, err := s.category(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	it.Name, it.Description, it.IsDraft = in.Name, in.Description, in.IsDraft
	it.CategoryID = cat.ID
	if err := s.items.Update(ctx, it, "name", "description", "is_draft", "category_id"); err != nil {
		return err
	}
	s.log.Info("item updated", zap.String("uuid", id))
	return nil
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	it, err := s.mustFind(ctx, id)
	if err != nil {
		return err
	}
	if err := s.items.SoftDelete(ctx, it.ID, time.Now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("%s id is not an existing item", id)
		}
		return err
	}
	s.log.Info("item deleted", zap.String("uuid", id))
	return nil
}

func (s *ItemService) mustFind(ctx context.Context, id string) (*domain.Item, error) {
	it, err := s.items.FindByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.NotFound("%s id is not an existing item", id)
	}
	return it, nil
}

// category 外部 uuid → 内部主键；已删除分类视为不存在
func (s *ItemService) category(ctx context.Context, id string) (*domain.Category, error) {
	c, err := s.categories.FindByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("%s id is not an existing category", id)
	}
	return c, nil
}
