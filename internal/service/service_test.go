package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-gin-gorm-inventory/internal/core/auth"
	"go-gin-gorm-inventory/internal/repo"
	"go-gin-gorm-inventory/internal/testutil"
)

type fixture struct {
	db         *gorm.DB
	categories *CategoryService
	items      *ItemService
	suppliers  *SupplierService
	users      *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SQLite(t)
	l := zap.NewNop()
	catRepo := repo.NewCategoryRepo(db)
	userRepo := repo.NewUserRepo(db)
	return &fixture{
		db:         db,
		categories: NewCategoryService(catRepo, l),
		items:      NewItemService(repo.NewItemRepo(db), catRepo, l),
		suppliers:  NewSupplierService(repo.NewSupplierRepo(db), l),
		users:      NewUserService(userRepo, l),
	}
}

func adminCtx() context.Context {
	return auth.WithActor(context.Background(), auth.Actor{Email: "admin@x.io", Role: "SYSTEMADMIN"})
}

func userInput(email string) UserInput {
	return UserInput{UserUpdateInput: UserUpdateInput{
		FirstName:  "Juan",
		MiddleName: "Dela",
		LastName:   "Cruz",
		Email:      email,
		Sex:        "M",
		BirthDate:  &Date{time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)},
	}}
}

// uuidOfCategory 服务层 Create 不返回 id，测试里按名字取
func (f *fixture) uuidOfCategory(t *testing.T, name string) string {
	t.Helper()
	rows, err := f.categories.List(context.Background(), pageSearch(name))
	require.NoError(t, err)
	for _, r := range rows {
		if r.Name == name {
			return r.UUID
		}
	}
	t.Fatalf("category %q not found", name)
	return ""
}

func (f *fixture) uuidOfUser(t *testing.T, email string) string {
	t.Helper()
	var id string
	require.NoError(t, f.db.Table("users").Select("uuid").Where("email = ?", email).Scan(&id).Error)
	require.NotEmpty(t, id)
	return id
}
