package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-gorm-inventory/internal/domain"
	"go-gin-gorm-inventory/internal/testutil"
)

func seedUser(t *testing.T, r *UserRepo, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email: email,
		Profile: domain.Profile{
			FirstName: "Juan", LastName: "Cruz", Sex: domain.SexMale,
			BirthDate: time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, r.Create(context.Background(), u))
	return u
}

func emails(rows []domain.User) []string {
	out := make([]string, 0, len(rows))
	for _, u := range rows {
		out = append(out, u.Email)
	}
	return out
}

func TestUserRepo_CreateDefaults(t *testing.T) {
	r := NewUserRepo(testutil.SQLite(t))
	u := seedUser(t, r, "a@x.io")

	got, err := r.FindByUUID(context.Background(), u.UUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.RoleSystemUser, got.UserRole)
	assert.False(t, got.IsActive)
	assert.False(t, got.IsDeactivated)
	assert.Equal(t, "Juan", got.Profile.FirstName)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	r := NewUserRepo(testutil.SQLite(t))
	seedUser(t, r, "a@x.io")

	err := r.Create(context.Background(), &domain.User{Email: "a@x.io"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestUserRepo_ListFilters(t *testing.T) {
	r := NewUserRepo(testutil.SQLite(t))
	ctx := context.Background()

	seedUser(t, r, "live@x.io")
	off := seedUser(t, r, "off@x.io")
	gone := seedUser(t, r, "gone@x.io")
	require.NoError(t, r.SetState(ctx, off.ID, map[string]any{"is_deactivated": true}))
	require.NoError(t, r.SetState(ctx, gone.ID, map[string]any{"is_deleted": true, "deleted_at": time.Now()}))

	rows, err := r.List(ctx, domain.UserFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"live@x.io", "off@x.io"}, emails(rows))

	yes, no := true, false
	rows, err = r.List(ctx, domain.UserFilter{IsDeleted: &yes})
	require.NoError(t, err)
	assert.Equal(t, []string{"gone@x.io"}, emails(rows))

	rows, err = r.List(ctx, domain.UserFilter{IsDeactivated: &yes})
	require.NoError(t, err)
	assert.Equal(t, []string{"off@x.io"}, emails(rows))

	rows, err = r.List(ctx, domain.UserFilter{IsDeactivated: &no})
	require.NoError(t, err)
	assert.Equal(t, []string{"live@x.io"}, emails(rows))

	rows, err = r.List(ctx, domain.UserFilter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rows, err = r.List(ctx, domain.UserFilter{PageList: domain.PageList{SearchString: "off@"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"off@x.io"}, emails(rows))
}

func TestUserRepo_SetSecretUpserts(t *testing.T) {
	db := testutil.SQLite(t)
	r := NewUserRepo(db)
	ctx := context.Background()
	u := seedUser(t, r, "a@x.io")

	require.NoError(t, r.SetSecret(ctx, u.ID, "hash-1"))
	require.NoError(t, r.SetSecret(ctx, u.ID, "hash-2"))

	got, err := r.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	require.NotNil(t, got.Secret)
	assert.Equal(t, "hash-2", got.Secret.PasswordHash)
	assert.True(t, got.IsActive)

	var n int64
	require.NoError(t, db.Model(&domain.UserSecret{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestUserRepo_UpdateWritesProfile(t *testing.T) {
	r := NewUserRepo(testutil.SQLite(t))
	ctx := context.Background()
	u := seedUser(t, r, "a@x.io")

	loaded, err := r.FindByUUID(ctx, u.UUID)
	require.NoError(t, err)
	by := "admin@x.io"
	loaded.Email = "b@x.io"
	loaded.UpdatedBy = &by
	loaded.Profile.LastName = "Santos"
	require.NoError(t, r.Update(ctx, loaded, "email", "updated_by"))

	got, err := r.FindByEmail(ctx, "b@x.io")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Santos", got.Profile.LastName)
	require.NotNil(t, got.UpdatedBy)
	assert.Equal(t, by, *got.UpdatedBy)
	assert.Nil(t, got.Secret)
}

func TestUserRepo_SetStateMissing(t *testing.T) {
	r := NewUserRepo(testutil.SQLite(t))
	err := r.SetState(context.Background(), 999, map[string]any{"is_deleted": true})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
