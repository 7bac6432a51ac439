package domain

import (
	"time"

	"gorm.io/gorm"

	"go-gin-gorm-inventory/pkg/utils"
)

type Role string

const (
	RoleSystemAdmin Role = "SYSTEMADMIN"
	RoleSystemUser  Role = "SYSTEMUSER"
)

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

type User struct {
	ID       uint   `gorm:"primaryKey"`
	UUID     string `gorm:"column:uuid;uniqueIndex;size:36;not null"`
	Email    string `gorm:"uniqueIndex;size:191;not null"`
	UserRole Role   `gorm:"size:16;not null;default:'SYSTEMUSER'"`

	IsActive      bool `gorm:"not null;default:false"`
	IsDeactivated bool `gorm:"not null;default:false"`
	ActivatedAt   *time.Time
	ActivatedBy   *string `gorm:"size:191"`
	DeactivatedAt *time.Time
	DeactivatedBy *string `gorm:"size:191"`

	CreatedBy *string `gorm:"size:191"`
	UpdatedBy *string `gorm:"size:191"`
	DeletedBy *string `gorm:"size:191"`

	Profile Profile     `gorm:"foreignKey:UserID"`
	Secret  *UserSecret `gorm:"foreignKey:UserID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	SoftDelete
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.UUID == "" {
		u.UUID = utils.NewID()
	}
	if u.UserRole == "" {
		u.UserRole = RoleSystemUser
	}
	return nil
}

type Profile struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"uniqueIndex;not null"`
	FirstName  string    `gorm:"size:750;not null"`
	MiddleName string    `gorm:"size:750"`
	LastName   string    `gorm:"size:750;not null"`
	Sex        Sex       `gorm:"size:1;not null"`
	BirthDate  time.Time `gorm:"not null"`

	CreatedBy *string `gorm:"size:191"`
	UpdatedBy *string `gorm:"size:191"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Profile) TableName() string { return "profiles" }

// UserSecret 仅用于登录校验
type UserSecret struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"size:100;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserSecret) TableName() string { return "user_secrets" }

// Models AutoMigrate 顺序（被引用表在前）
func Models() []any {
	return []any{
		&Category{}, &Item{}, &ItemPrice{},
		&Supplier{}, &SupplierAddress{}, &SupplierContact{},
		&User{}, &Profile{}, &UserSecret{},
	}
}
