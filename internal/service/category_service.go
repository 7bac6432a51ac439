package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"go-gin-gorm-inventory/internal/core/cache"
	"go-gin-gorm-inventory/internal/domain"
)

type CategoryInput struct {
	Name        string `json:"name"        binding:"required,max=250"`
	Description string `json:"description" binding:"required,max=1000"`
}

type CategoryService struct {
	repo domain.CategoryRepository
	log  *zap.Logger

	cache *cache.Cache
	ttl   time.Duration
}

func NewCategoryService(repo domain.CategoryRepository, l *zap.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: l.Named("category")}
}

// WithCache getOne 走 redis 读穿，写操作后失效
func (s *CategoryService) WithCache(c *cache.Cache, ttl time.Duration) *CategoryService {
	s.cache, s.ttl = c, ttl
	return s
}

func categoryKey(id string) string { return "category:" + id }

func (s *CategoryService) List(ctx context.Context, f domain.PageList) ([]CategoryView, error) {
	rows, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapViews(rows, categoryView), nil
}

// GetOne 不存在返回 (nil, nil)
func (s *CategoryService) GetOne(ctx context.Context, id string) (*CategoryView, error) {
	load := func(ctx context.Context) (*CategoryView, error) {
		c, err := s.repo.FindByUUID(ctx, id)
		if err != nil || c == nil {
			return nil, err
		}
		v := categoryView(c)
		return &v, nil
	}
	if s.cache == nil {
		return load(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, categoryKey(id), s.ttl, load)
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) error {
	exist, err := s.repo.FindByName(ctx, in.Name)
	if err != nil {
		return err
	}
	if exist != nil {
		return domain.AlreadyExists("Category name %s already exist.", in.Name)
	}
	c := &domain.Category{Name: in.Name, Description: in.Description}
	if err := s.repo.Create(ctx, c); err != nil {
		// 并发创建时由唯一索引兜底
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.AlreadyExists("Category name %s already exist.", in.Name)
		}
		return err
	}
	s.log.Info("category created", zap.String("uuid", c.UUID), zap.String("name", c.Name))
	return nil
}

func (s *CategoryService) Update(ctx context.Context, id string, in CategoryInput) error {
	c, err := s.mustFind(ctx, id)
	if err != nil {
		return err
	}
	if err := s.evict(ctx, id); err != nil {
		return err
	}
	c.Name, c.Description = in.Name, in.Description
	if err := s.repo.Update(ctx, c, "name", "description"); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.AlreadyExists("Category name %s already exist.", in.Name)
		}
		return err
	}
	s.evictAgain(ctx, id)
	s.log.Info("category updated", zap.String("uuid", id))
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	c, err := s.mustFind(ctx, id)
	if err != nil {
		return err
	}
	if err := s.evict(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, c.ID, time.Now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("%s id is not an existing category", id)
		}
		return err
	}
	s.evictAgain(ctx, id)
	s.log.Info("category deleted", zap.String("uuid", id))
	return nil
}

func (s *CategoryService) mustFind(ctx context.Context, id string) (*domain.Category, error) {
	c, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("%s id is not an existing category", id)
	}
	return c, nil
}

// evict 写库前删缓存；删不掉就不写，否则缓存会一直停在旧值直到 TTL
func (s *CategoryService) evict(ctx context.Context, id string) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx, categoryKey(id)); err != nil {
		return fmt.Errorf("evict category %s: %w", id, err)
	}
	return nil
}

// evictAgain 写库后再删一次，清掉写期间被并发读回填的旧值
func (s *CategoryService) evictAgain(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, categoryKey(id)); err != nil {
		s.log.Error("cache evict after write failed", zap.String("uuid", id), zap.Error(err))
	}
}
