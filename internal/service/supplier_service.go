package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"go-gin-gorm-inventory/internal/domain"
)

type SupplierInput struct {
	Name            string `json:"name"            binding:"required,max=250"`
	Description     string `json:"description"     binding:"required,max=1000"`
	MobileNumber    string `json:"mobileNumber"    binding:"max=20"`
	TelephoneNumber string `json:"telephoneNumber" binding:"max=20"`
	Country         string `json:"country"         binding:"max=50"`
	City            string `json:"city"            binding:"max=100"`
	ZipCode         string `json:"zipCode"         binding:"max=10"`
	Street          string `json:"street"          binding:"max=200"`
	Building        string `json:"building"        binding:"max=200"`
}

func (in SupplierInput) apply(s *domain.Supplier) {
	s.Name, s.Description = in.Name, in.Description
	s.Address.Country = in.Country
	s.Address.City = in.City
	s.Address.ZipCode = in.ZipCode
	s.Address.Street = in.Street
	s.Address.Building = in.Building
	s.Contact.MobileNumber = in.MobileNumber
	s.Contact.TelephoneNumber = in.TelephoneNumber
}

type SupplierService struct {
	repo domain.SupplierRepository
	log  *zap.Logger
}

func NewSupplierService(repo domain.SupplierRepository, l *zap.Logger) *SupplierService {
	return &SupplierService{repo: repo, log: l.Named("supplier")}
}

func (s *SupplierService) List(ctx context.Context, f domain.PageList) ([]SupplierView, error) {
	rows, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapViews(rows, supplierView), nil
}

func (s *SupplierService) GetOne(ctx context.Context, id string) (*SupplierView, error) {
	sp, err := s.repo.FindByUUID(ctx, id)
	if err != nil || sp == nil {
		return nil, err
	}
	v := supplierView(sp)
	return &v, nil
}

func (s *SupplierService) Create(ctx context.Context, in SupplierInput) error {
	sp := &domain.Supplier{}
	in.apply(sp)
	if err := s.repo.Create(ctx, sp); err != nil {
		return err
	}
	s.log.Info("supplier created", zap.String("uuid", sp.UUID))
	return nil
}

func (s *SupplierService) Update(ctx context.Context, id string, in SupplierInput) error {
	sp, err := s.mustFind(ctx, id)
	if err != nil {
		return err
	}
	in.apply(sp)
	if err := s.repo.Update(ctx, sp); err != nil {
		return err
	}
	s.log.Info("supplier updated", zap.String("uuid", id))
	return nil
}

func (s *SupplierService) Delete(ctx context.Context, id string) error {
	sp, err := s.mustFind(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, sp.ID, time.Now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("%s uuid is not an existing supplier", id)
		}
		return err
	}
	s.log.Info("supplier deleted", zap.String("uuid", id))
	return nil
}

func (s *SupplierService) mustFind(ctx context.Context, id string) (*domain.Supplier, error) {
	sp, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.NotFound("%s uuid is not an existing supplier", id)
	}
	return sp, nil
}
