package repo

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoque-api/internal/models"
)

func TestPostgresProductRepository_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostgresProductRepository(db)

	newer := time.Now().UTC()
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "quantity", "cost_value", "sale_value", "created_at"}).
		AddRow(uuid.NewString(), 7, "Notebook", "Dell 15\"", 3, 3500.0, 4999.0, newer).
		AddRow(uuid.NewString(), 7, "Mouse", nil, 10, 40.0, 89.9, older)

	mock.ExpectQuery("SELECT id, owner_id, name, description, quantity, cost_value, sale_value, created_at").
		WithArgs(7).
		WillReturnRows(rows)

	products, err := r.ListByOwner(7)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Notebook", products[0].Name)
	assert.Equal(t, "", products[1].Description) // NULL description scans to empty string
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostgresProductRepository(db)

	createdAt := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO products").
		WithArgs(sqlmock.AnyArg(), 7, "Notebook", sqlmock.AnyArg(), 3, 3500.0, 4999.0).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	created, err := r.Create(models.Product{
		OwnerID:   7,
		Name:      "Notebook",
		Quantity:  3,
		CostValue: 3500.0,
		SaleValue: 4999.0,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.Equal(t, 7, created.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostgresProductRepository(db)

	id := uuid.NewString()
	mock.ExpectExec("UPDATE products SET").
		WithArgs("Mouse", sqlmock.AnyArg(), 1, 40.0, 89.9, id, 8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = r.Update(models.Product{ID: id, OwnerID: 8, Name: "Mouse", Quantity: 1, CostValue: 40.0, SaleValue: 89.9})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostgresProductRepository(db)

	id := uuid.NewString()
	mock.ExpectExec("DELETE FROM products").
		WithArgs(id, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, r.Delete(id, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_Delete_OtherOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostgresProductRepository(db)

	id := uuid.NewString()
	mock.ExpectExec("DELETE FROM products").
		WithArgs(id, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, r.Delete(id, 9), ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
