package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-gin-gorm-inventory/internal/core/auth"
	"go-gin-gorm-inventory/internal/domain"
	"go-gin-gorm-inventory/pkg/utils"
)

// UserUpdateInput PUT /user/:id 的请求体，不含密码（密码只走管理端）
type UserUpdateInput struct {
	FirstName  string      `json:"firstName"  binding:"required,max=750"`
	MiddleName string      `json:"middleName" binding:"required,max=750"`
	LastName   string      `json:"lastName"   binding:"required,max=750"`
	Email      string      `json:"email"      binding:"required,email"`
	Sex        domain.Sex  `json:"sex"        binding:"required,oneof=M F"`
	BirthDate  *Date       `json:"birthDate"  binding:"required"`
	UserRole   domain.Role `json:"userRole"   binding:"omitempty,oneof=SYSTEMADMIN SYSTEMUSER"`
}

// UserInput 创建用户，可带初始密码
type UserInput struct {
	UserUpdateInput
	Password string `json:"password" binding:"omitempty,min=6,max=72"`
}

func (in UserUpdateInput) profile(p *domain.Profile, by *string) {
	p.FirstName = in.FirstName
	p.MiddleName = in.MiddleName
	p.LastName = in.LastName
	p.Sex = in.Sex
	if in.BirthDate != nil {
		p.BirthDate = in.BirthDate.Time
	}
	p.UpdatedBy = by
}

type UserService struct {
	repo domain.UserRepository
	log  *zap.Logger
}

func NewUserService(repo domain.UserRepository, l *zap.Logger) *UserService {
	return &UserService{repo: repo, log: l.Named("user")}
}

func (s *UserService) List(ctx context.Context, f domain.UserFilter) ([]UserView, error) {
	rows, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapViews(rows, userView), nil
}

// GetOne 已删除用户视为不存在
func (s *UserService) GetOne(ctx context.Context, id string) (*UserView, error) {
	u, err := s.repo.FindByUUID(ctx, id)
	if err != nil || u == nil || u.IsDeleted {
		return nil, err
	}
	v := userView(u)
	return &v, nil
}

func isAdmin(ctx context.Context) bool {
	a, ok := auth.ActorFrom(ctx)
	return ok && a.Role == string(domain.RoleSystemAdmin)
}

// roleFor 只有管理员能指定角色，其余一律 SYSTEMUSER
func roleFor(ctx context.Context, want domain.Role) domain.Role {
	if want != "" && isAdmin(ctx) {
		return want
	}
	return domain.RoleSystemUser
}

func (s *UserService) Create(ctx context.Context, in UserInput) error {
	email := strings.TrimSpace(in.Email)
	exist, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exist != nil {
		return domain.AlreadyExists("%s is an existing user", email)
	}

	by := auth.ActorEmail(ctx)
	u := &domain.User{
		Email:     email,
		UserRole:  roleFor(ctx, in.UserRole),
		CreatedBy: by,
	}
	in.profile(&u.Profile, by)
	u.Profile.CreatedBy = by
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return err
		}
		u.Secret = &domain.UserSecret{PasswordHash: hash}
		u.IsActive = true
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.AlreadyExists("%s is an existing user", email)
		}
		return err
	}
	s.log.Info("user created", zap.String("uuid", u.UUID), zap.String("email", u.Email))
	return nil
}

// Update 只改资料与邮箱；角色仅管理员可改，非管理员传入的 userRole 忽略
func (s *UserService) Update(ctx context.Context, id string, in UserUpdateInput) error {
	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if u.IsDeleted {
		return domain.InvalidState("unable to update %s, already a deleted user", u.Email)
	}

	email := strings.TrimSpace(in.Email)
	if email != u.Email {
		other, err := s.repo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if other != nil {
			return domain.AlreadyExists("%s is an existing user", email)
		}
	}

	by := auth.ActorEmail(ctx)
	u.Email = email
	u.UpdatedBy = by
	columns := []string{"email", "updated_by"}
	if in.UserRole != "" && isAdmin(ctx) {
		u.UserRole = in.UserRole
		columns = append(columns, "user_role")
	}
	in.profile(&u.Profile, by)
	if err := s.repo.Update(ctx, u, columns...); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.AlreadyExists("%s is an existing user", email)
		}
		return err
	}
	s.log.Info("user updated", zap.String("uuid", id))
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if u.IsDeleted {
		return domain.InvalidState("unable to delete %s, user is already deleted", id)
	}
	now := time.Now()
	if err := s.repo.SetState(ctx, u.ID, map[string]any{
		"is_deleted": true,
		"deleted_at": now,
		"deleted_by": auth.ActorEmail(ctx),
		"updated_at": now,
	}); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("uuid", id))
	return nil
}

func (s *UserService) Deactivate(ctx context.Context, id string) error {
	u, err := s.findLive(ctx, id)
	if err != nil {
		return err
	}
	if u.IsDeactivated {
		return domain.InvalidState("unable to deactivate %s, user is already deactivated", id)
	}
	now := time.Now()
	by := auth.ActorEmail(ctx)
	if err := s.repo.SetState(ctx, u.ID, map[string]any{
		"is_deactivated": true,
		"deactivated_at": now,
		"deactivated_by": by,
		"updated_by":     by,
		"updated_at":     now,
	}); err != nil {
		return err
	}
	s.log.Info("user deactivated", zap.String("uuid", id))
	return nil
}

func (s *UserService) Activate(ctx context.Context, id string) error {
	u, err := s.findLive(ctx, id)
	if err != nil {
		return err
	}
	if !u.IsDeactivated {
		return domain.InvalidState("unable to activate %s, user is already activated", id)
	}
	now := time.Now()
	by := auth.ActorEmail(ctx)
	if err := s.repo.SetState(ctx, u.ID, map[string]any{
		"is_deactivated": false,
		"activated_at":   now,
		"activated_by":   by,
		"updated_by":     by,
		"updated_at":     now,
	}); err != nil {
		return err
	}
	s.log.Info("user activated", zap.String("uuid", id))
	return nil
}

// SetPassword 管理端重置密码，同时标记为已激活
func (s *UserService) SetPassword(ctx context.Context, id, password string) error {
	u, err := s.findLive(ctx, id)
	if err != nil {
		return err
	}
	if err := s.setSecret(ctx, u, password); err != nil {
		return err
	}
	s.log.Info("user password set", zap.String("uuid", id))
	return nil
}

// Bootstrap 邮箱不存在时创建管理员；已存在返回 false
func (s *UserService) Bootstrap(ctx context.Context, email, password string) (bool, error) {
	exist, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if exist != nil {
		return false, nil
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, err
	}
	u := &domain.User{
		Email:    email,
		UserRole: domain.RoleSystemAdmin,
		IsActive: true,
		Profile: domain.Profile{
			FirstName: "System",
			LastName:  "Administrator",
			Sex:       domain.SexMale,
			BirthDate: time.Unix(0, 0).UTC(),
		},
		Secret: &domain.UserSecret{PasswordHash: hash},
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return false, err
	}
	s.log.Info("bootstrap admin created", zap.String("email", email))
	return true, nil
}

func (s *UserService) setSecret(ctx context.Context, u *domain.User, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.SetSecret(ctx, u.ID, hash)
}

func (s *UserService) find(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("%s uuid is not an existing user", id)
	}
	return u, nil
}

// findLive 已删除用户与不存在同等处理
func (s *UserService) findLive(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsDeleted {
		return nil, domain.NotFound("%s uuid is not an existing user", id)
	}
	return u, nil
}
