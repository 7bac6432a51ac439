package repo

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-gorm-inventory/internal/domain"
	"go-gin-gorm-inventory/internal/testutil"
)

func TestItemRepo_ListFiltersAndPreloads(t *testing.T) {
	db := testutil.SQLite(t)
	cats := NewCategoryRepo(db)
	r := NewItemRepo(db)
	ctx := context.Background()

	cat := seedCategory(t, cats, "Widgets", "d")
	published := &domain.Item{Name: "A", Description: "alpha", CategoryID: cat.ID}
	draft := &domain.Item{Name: "B", Description: "beta", CategoryID: cat.ID, IsDraft: true}
	require.NoError(t, r.Create(ctx, published))
	require.NoError(t, r.Create(ctx, draft))
	require.NoError(t, db.Create(&domain.ItemPrice{
		ItemID:               published.ID,
		SuggestedRetailPrice: decimal.RequireFromString("19.99"),
		OriginalPrice:        decimal.RequireFromString("24.50"),
		DiscountedPrice:      decimal.RequireFromString("17.00"),
	}).Error)

	no := false
	rows, err := r.List(ctx, domain.ItemFilter{IsDraft: &no})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Name)
	assert.Equal(t, "Widgets", rows[0].Category.Name)
	require.NotNil(t, rows[0].Price)
	assert.True(t, decimal.RequireFromString("19.99").Equal(rows[0].Price.SuggestedRetailPrice))

	all, err := r.List(ctx, domain.ItemFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := r.List(ctx, domain.ItemFilter{PageList: domain.PageList{SearchString: "bet"}})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "B", found[0].Name)
	assert.Nil(t, found[0].Price)
}

func TestItemRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.SQLite(t)
	cats := NewCategoryRepo(db)
	r := NewItemRepo(db)
	ctx := context.Background()

	c1 := seedCategory(t, cats, "One", "d")
	c2 := seedCategory(t, cats, "Two", "d")
	it := &domain.Item{Name: "A", Description: "d", CategoryID: c1.ID}
	require.NoError(t, r.Create(ctx, it))

	loaded, err := r.FindByUUID(ctx, it.UUID)
	require.NoError(t, err)
	loaded.CategoryID = c2.ID
	loaded.IsDraft = true
	require.NoError(t, r.Update(ctx, loaded, "is_draft", "category_id"))

	got, err := r.FindByUUID(ctx, it.UUID)
	require.NoError(t, err)
	assert.True(t, got.IsDraft)
	assert.Equal(t, "Two", got.Category.Name)

	require.NoError(t, r.SoftDelete(ctx, it.ID, time.Now()))
	gone, err := r.FindByUUID(ctx, it.UUID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.ErrorIs(t, r.SoftDelete(ctx, it.ID, time.Now()), domain.ErrNotFound)
}
