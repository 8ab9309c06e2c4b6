package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shopping-service/internal/domain"
)

var itemCols = []string{"id", "name", "description", "image_url", "default_unit_type"}

func strPtr(s string) *string { return &s }

func TestItemRepository_Search(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery(`FROM shopping_item WHERE name ILIKE \$1 ORDER BY id DESC`).
		WithArgs("%milk%").
		WillReturnRows(pgxmock.NewRows(itemCols).
			AddRow(int32(7), "Oat milk", strPtr("barista"), (*string)(nil), "Capacity"))

	items, err := repo.Search(context.Background(), "milk")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.UnitTypeCapacity, items[0].DefaultUnitType)
	require.NotNil(t, items[0].Description)
	assert.Equal(t, "barista", *items[0].Description)
	assert.Nil(t, items[0].ImageURL)
}

func TestItemRepository_List(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery(`SELECT id, name, description, image_url, default_unit_type FROM shopping_item ORDER BY id DESC`).
		WillReturnRows(pgxmock.NewRows(itemCols))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestItemRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery(`INSERT INTO shopping_item`).
		WithArgs("Eggs", (*string)(nil), (*string)(nil), "Count").
		WillReturnRows(pgxmock.NewRows(itemCols).
			AddRow(int32(1), "Eggs", (*string)(nil), (*string)(nil), "Count"))

	item, err := repo.Create(context.Background(), domain.NewItem{Name: "Eggs", DefaultUnitType: domain.UnitTypeCount})
	require.NoError(t, err)
	assert.Equal(t, int32(1), item.ID)
}

func TestItemRepository_GetByIDAndDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery(`FROM shopping_item WHERE id=\$1`).
		WithArgs(int32(2)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec(`DELETE FROM shopping_item WHERE id=\$1`).
		WithArgs(int32(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	_, err := repo.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), pgx.ErrNoRows)
}
