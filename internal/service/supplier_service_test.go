package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-gorm-inventory/internal/domain"
)

func supplierInput(name string) SupplierInput {
	return SupplierInput{
		Name:            name,
		Description:     "parts",
		MobileNumber:    "09170000000",
		TelephoneNumber: "021234567",
		Country:         "PH",
		City:            "Makati",
		ZipCode:         "1200",
		Street:          "Ayala Ave",
		Building:        "Tower 1",
	}
}

func TestSupplier_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.suppliers.Create(ctx, supplierInput("Acme")))
	rows, err := f.suppliers.List(ctx, domain.PageList{SearchString: "Acme"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	id := rows[0].UUID
	assert.Equal(t, "Makati", rows[0].SupplierAddress.City)
	assert.Equal(t, "021234567", rows[0].SupplierContact.TelephoneNumber)

	in := supplierInput("Acme Corp")
	in.City = "Taguig"
	require.NoError(t, f.suppliers.Update(ctx, id, in))
	got, err := f.suppliers.GetOne(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, "Taguig", got.SupplierAddress.City)

	require.NoError(t, f.suppliers.Delete(ctx, id))
	got, err = f.suppliers.GetOne(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.EqualError(t, f.suppliers.Delete(ctx, id), id+" uuid is not an existing supplier")
}

func TestSupplier_UpdateMissing(t *testing.T) {
	f := newFixture(t)
	err := f.suppliers.Update(context.Background(), "ghost", supplierInput("x"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "ghost uuid is not an existing supplier")
}
