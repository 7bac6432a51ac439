package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-gorm-inventory/internal/domain"
)

func TestItem_DraftFilterScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.categories.Create(ctx, CategoryInput{Name: "Widgets", Description: "d"}))
	catID := f.uuidOfCategory(t, "Widgets")
	require.NoError(t, f.items.Create(ctx, ItemInput{Name: "A", Description: "first", CategoryID: catID, IsDraft: false}))
	require.NoError(t, f.items.Create(ctx, ItemInput{Name: "B", Description: "draft", CategoryID: catID, IsDraft: true}))

	no := false
	rows, err := f.items.List(ctx, domain.ItemFilter{IsDraft: &no})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Name)
	assert.Equal(t, catID, rows[0].Category.UUID)
	assert.Nil(t, rows[0].ItemPrice)
}

func TestItem_CreateWithUnknownCategory(t *testing.T) {
	f := newFixture(t)
	err := f.items.Create(context.Background(), ItemInput{Name: "A", Description: "d", CategoryID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "ghost id is not an existing category")
}

func TestItem_CreateWithDeletedCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.categories.Create(ctx, CategoryInput{Name: "Old", Description: "d"}))
	catID := f.uuidOfCategory(t, "Old")
	require.NoError(t, f.categories.Delete(ctx, catID))

	err := f.items.Create(ctx, ItemInput{Name: "A", Description: "d", CategoryID: catID})
	assert.EqualError(t, err, catID+" id is not an existing category")
}

func TestItem_UpdateMovesCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.categories.Create(ctx, CategoryInput{Name: "One", Description: "d"}))
	require.NoError(t, f.categories.Create(ctx, CategoryInput{Name: "Two", Description: "d"}))
	one, two := f.uuidOfCategory(t, "One"), f.uuidOfCategory(t, "Two")
	require.NoError(t, f.items.Create(ctx, ItemInput{Name: "A", Description: "d", CategoryID: one}))

	rows, err := f.items.List(ctx, domain.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	id := rows[0].UUID

	require.NoError(t, f.items.Update(ctx, id, ItemInput{Name: "A2", Description: "d2", CategoryID: two, IsDraft: true}))
	got, err := f.items.GetOne(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A2", got.Name)
	assert.True(t, got.IsDraft)
	assert.Equal(t, "Two", got.Category.Name)

	err = f.items.Update(ctx, id, ItemInput{Name: "A3", Description: "d", CategoryID: "ghost"})
	assert.EqualError(t, err, "ghost id is not an existing category")
}

func TestItem_DeleteLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.categories.Create(ctx, CategoryInput{Name: "Widgets", Description: "d"}))
	require.NoError(t, f.items.Create(ctx, ItemInput{Name: "A", Description: "d", CategoryID: f.uuidOfCategory(t, "Widgets")}))
	rows, err := f.items.List(ctx, domain.ItemFilter{})
	require.NoError(t, err)
	id := rows[0].UUID

	require.NoError(t, f.items.Delete(ctx, id))
	got, err := f.items.GetOne(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.EqualError(t, f.items.Delete(ctx, id), id+" id is not an existing item")
	assert.EqualError(t, f.items.Update(ctx, "nope", ItemInput{CategoryID: "x"}), "nope id is not an existing item")
}
